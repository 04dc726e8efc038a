package interval

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer; intervals bind as their SQL literal text.
func (i *Interval) Value() (driver.Value, error) {
	return i.String(), nil
}

// Scan implements sql.Scanner. String forms must be full SQL literals,
// qualifier included. The receiver must be a caller-owned variable, never a
// pointer returned by New or FromAbsolute: those are shared canonical
// instances and scanning over one would rewrite it for every holder.
func (i *Interval) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParseLiteral(v)
		if err != nil {
			return err
		}
		*i = *parsed
		return nil
	case []byte:
		parsed, err := ParseLiteral(string(v))
		if err != nil {
			return err
		}
		*i = *parsed
		return nil
	case *Interval:
		*i = *v
		return nil
	case Interval:
		*i = v
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Interval", value)
	}
}
