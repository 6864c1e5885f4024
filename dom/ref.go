package dom

import "github.com/google/uuid"

// Ref is the identity of a single instance inside a Dom. Refs are random
// 128-bit values, so a destroyed instance's Ref is never handed out again.
// Equality and map keying are by value; a Ref says nothing about the
// instance's contents.
type Ref uuid.UUID

// RefNone is the null ref. It is the parent of a root instance and is never
// the identity of a live instance.
var RefNone = Ref{}

func NewRef() Ref {
	return Ref(uuid.New())
}

func (r Ref) IsNone() bool {
	return r == RefNone
}

func (r Ref) String() string {
	return uuid.UUID(r).String()
}
