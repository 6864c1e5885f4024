// Package dom is an arena-style instance graph: a tree of named, classed,
// property-carrying instances addressed by opaque Refs. It knows nothing
// about filesystems or projects; it only guarantees structural consistency
// (every non-root instance's parent link agrees with that parent's child
// list) and that Refs are never reused.
package dom

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrRefNotLive  = errors.New("dom: ref does not identify a live instance")
	ErrDestroyRoot = errors.New("dom: cannot destroy the root instance")
)

type Dom struct {
	instances map[Ref]*Instance
	root      Ref
}

// NewDom creates a Dom whose root (and the subtree below it, if the builder
// has children) is built from the given builder.
func NewDom(builder *InstanceBuilder) *Dom {
	dom := &Dom{instances: make(map[Ref]*Instance)}
	dom.root = dom.create(RefNone, builder)
	return dom
}

func (d *Dom) Root() Ref {
	return d.root
}

func (d *Dom) Get(ref Ref) (*Instance, bool) {
	inst, ok := d.instances[ref]
	return inst, ok
}

// Len reports the number of live instances, the root included.
func (d *Dom) Len() int {
	return len(d.instances)
}

// Insert creates the builder's instance (and its subtree) under parent and
// returns the new instance's Ref. Panics if parent is not live; inserting
// under a destroyed instance means the caller lost track of the tree.
func (d *Dom) Insert(parent Ref, builder *InstanceBuilder) Ref {
	if _, ok := d.instances[parent]; !ok {
		panic(fmt.Errorf("%w: insert under %v", ErrRefNotLive, parent))
	}
	ref := d.create(parent, builder)
	d.instances[parent].children = append(d.instances[parent].children, ref)
	return ref
}

// Destroy removes the instance and every descendant from the Dom and
// detaches it from its parent. Panics if ref is not live or is the root.
func (d *Dom) Destroy(ref Ref) {
	inst, ok := d.instances[ref]
	if !ok {
		panic(fmt.Errorf("%w: destroy %v", ErrRefNotLive, ref))
	}
	if ref == d.root {
		panic(ErrDestroyRoot)
	}

	parent := d.instances[inst.parent]
	parent.children = slices.DeleteFunc(parent.children, func(child Ref) bool {
		return child == ref
	})

	queue := []Ref{ref}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		queue = append(queue, d.instances[next].children...)
		delete(d.instances, next)
	}
}

func (d *Dom) create(parent Ref, builder *InstanceBuilder) Ref {
	ref := NewRef()
	inst := &Instance{
		Name:       builder.name,
		Properties: builder.properties,
		class:      builder.class,
		ref:        ref,
		parent:     parent,
	}
	if inst.Properties == nil {
		inst.Properties = make(map[Ustr]Variant)
	}
	d.instances[ref] = inst

	for _, child := range builder.children {
		inst.children = append(inst.children, d.create(ref, child))
	}
	return ref
}
