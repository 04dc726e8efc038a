package interval

import "sync"

// The canonicalization cache deduplicates equal instances across the
// process. It is an optimization only: losing a LoadOrStore race costs a
// duplicate allocation, never correctness.

type cacheKey struct {
	qualifier Qualifier
	negative  bool
	leading   uint64
	remaining uint64
}

var cache sync.Map // cacheKey -> *Interval

func cached(v Interval) *Interval {
	got, _ := cache.LoadOrStore(cacheKey{v.qualifier, v.negative, v.leading, v.remaining}, &v)
	return got.(*Interval)
}
