package toon

import "github.com/zeebo/xxh3"

// CacheKey returns a fast, non-cryptographic hash of v's normalized tree
// rendered under opts, for callers who want to memoize Marshal results
// keyed by input identity. The core encoder itself caches nothing
// (spec.md §5); this is a pure function exposed for that purpose.
func CacheKey(v interface{}, opts ...EncodeOption) uint64 {
	e := &Encoder{opts: defaultEncodeOptions()}
	for _, opt := range opts {
		opt(e)
	}
	tree := normalizeValue(v)
	return xxh3.HashString(encodeValue(tree, e.opts))
}
