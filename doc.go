// Package interval implements the SQL INTERVAL data type as an exact,
// overflow-aware value object.
//
// An Interval keeps its sign separate from two unsigned magnitude fields
// (the leading field and the packed remaining fields), tagged with one of
// the twelve standard qualifiers such as YEAR or DAY TO SECOND. Arithmetic
// goes through a single signed magnitude in the family's finest unit, so
// addition and subtraction are exact and overflow is detected once, at
// decomposition.
//
// Usage:
//
//	v, err := interval.ParseLiteral("INTERVAL '-11 23:59:59.999999' DAY TO SECOND")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sum, err := v.Add(v)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sum)
package interval

// Version is the version of the interval library.
const Version = "0.1.0"
