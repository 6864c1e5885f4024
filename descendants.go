package rojo

import (
	"fmt"
	"iter"
	"slices"

	"github.com/memothelemo/rojo/dom"
)

// Descendants yields every descendant of ref in breadth-first order, the
// instance at ref itself excluded. The sequence is lazy: a node's children
// join the frontier only when that node is yielded, so stopping early never
// visits the rest. The worklist holds refs, not instance pointers, and the
// tree must not be structurally mutated while the sequence is consumed.
func (t *Tree) Descendants(ref dom.Ref) iter.Seq[InstanceWithMeta] {
	root, ok := t.inner.Get(ref)
	if !ok {
		panic(fmt.Errorf("%w: descendants of %v", ErrInstanceNotLive, ref))
	}

	queue := slices.Clone(root.Children())
	return func(yield func(InstanceWithMeta) bool) {
		for len(queue) > 0 {
			next := queue[0]
			queue = queue[1:]

			inst, ok := t.GetInstance(next)
			if !ok {
				panic(fmt.Errorf("%w: queued descendant %v", ErrInstanceNotLive, next))
			}
			queue = append(queue, inst.Children()...)

			if !yield(inst) {
				return
			}
		}
	}
}
