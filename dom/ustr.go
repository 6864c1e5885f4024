package dom

import (
	"strings"

	"github.com/cespare/xxhash"
	"github.com/puzpuzpuz/xsync/v3"
)

// Ustr is an interned string, used for class names and property keys. An
// instance tree holds thousands of instances spread over a couple hundred
// distinct class names, so every Ustr with the same contents shares one
// backing allocation.
type Ustr string

// Intern table, bucketed by the xxhash of the contents. A bucket holds more
// than one string only on a hash collision.
var ustrTable = xsync.NewMapOf[uint64, []string]()

// Intern returns the canonical Ustr for s. Safe for concurrent use.
func Intern(s string) Ustr {
	h := xxhash.Sum64String(s)
	if bucket, ok := ustrTable.Load(h); ok {
		for _, c := range bucket {
			if c == s {
				return Ustr(c)
			}
		}
	}

	canonical := s
	ustrTable.Compute(h, func(bucket []string, loaded bool) ([]string, bool) {
		for _, c := range bucket {
			if c == s {
				canonical = c
				return bucket, false
			}
		}
		// Clone so the table never pins a larger buffer the caller sliced
		// this string out of.
		canonical = strings.Clone(s)
		return append(bucket, canonical), false
	})
	return Ustr(canonical)
}

func (u Ustr) String() string {
	return string(u)
}
