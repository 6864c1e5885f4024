package dom

// Variant is an opaque property value. The tree stores and hands these back
// without interpreting them; what a value means is the serializer's business.
type Variant any

// Instance is one node of a Dom: a name, a class, a property bag, and links
// to its parent and children. Instances are owned by their Dom and are only
// created through Dom.Insert or NewDom.
type Instance struct {
	Name       string
	Properties map[Ustr]Variant

	class    Ustr
	ref      Ref
	parent   Ref
	children []Ref
}

func (inst *Instance) Ref() Ref {
	return inst.ref
}

// Parent returns RefNone for the root instance.
func (inst *Instance) Parent() Ref {
	return inst.parent
}

// Children returns the instance's children in order. The returned slice is
// the Dom's own bookkeeping; callers must not mutate it.
func (inst *Instance) Children() []Ref {
	return inst.children
}

func (inst *Instance) Class() Ustr {
	return inst.class
}

func (inst *Instance) SetClass(class string) {
	inst.class = Intern(class)
}
