// Package rojo holds the live instance tree a synchronized project is
// mirrored into: a dom.Dom plus per-instance metadata and two reverse
// indices, one from source paths to the instance roots built from them and
// one from user-specified refs to their claimants. All structural updates go
// through Tree so the indices never drift from the instances.
package rojo

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/memothelemo/rojo/dom"
	"github.com/memothelemo/rojo/utils"
)

var ErrInstanceNotLive = errors.New("rojo: instance is not in the tree")

type Options struct {
	Logger utils.Logger
}

func (o *Options) SetDefaults() {
	if o.Logger == nil {
		o.Logger = utils.NewDefaultLogger(slog.LevelInfo)
	}
}

// Tree is optimized for fast incremental updates: inserting or removing a
// subtree touches only that subtree's metadata and index entries, never the
// whole tree.
type Tree struct {
	inner *dom.Dom

	// Kept equal, as key sets, to the Dom's live instances. An instance
	// exists iff its metadata exists.
	metadata map[dom.Ref]*InstanceMetadata

	// Source path to the roots of the subtrees built from it. Descendants of
	// those roots are not in here; reconciling a root covers its subtree.
	// Several roots may share one path ("path aliasing").
	pathToRefs *utils.MultiMap[string, dom.Ref]

	// User-specified ref to its claimants. More than one claimant is a user
	// error, reported but tolerated; lookups for that ref stay unresolved
	// until the duplicate goes away.
	specifiedToRefs *utils.MultiMap[SpecifiedID, dom.Ref]

	log utils.Logger
}

// NewTree builds a tree from a root snapshot: the root instance first, its
// metadata attached, then every child snapshot inserted below it.
func NewTree(snapshot InstanceSnapshot, opts Options) *Tree {
	opts.SetDefaults()

	builder := dom.NewInstanceBuilder(snapshot.ClassName).
		WithName(snapshot.Name).
		WithProperties(snapshot.Properties)

	tree := &Tree{
		inner:           dom.NewDom(builder),
		metadata:        make(map[dom.Ref]*InstanceMetadata),
		pathToRefs:      utils.NewMultiMap[string, dom.Ref](),
		specifiedToRefs: utils.NewMultiMap[SpecifiedID, dom.Ref](),
		log:             opts.Logger,
	}

	rootRef := tree.inner.Root()
	tree.insertMetadata(rootRef, snapshot.Metadata)

	for _, child := range snapshot.Children {
		tree.InsertInstance(rootRef, child)
	}
	return tree
}

// Inner exposes the underlying Dom for read access. Structural mutation must
// go through the Tree.
func (t *Tree) Inner() *dom.Dom {
	return t.inner
}

func (t *Tree) RootRef() dom.Ref {
	return t.inner.Root()
}

// GetInstance returns the combined instance+metadata view, or false if ref
// is not live. The two are never handed out separately; they exist together
// or not at all.
func (t *Tree) GetInstance(ref dom.Ref) (InstanceWithMeta, bool) {
	inst, ok := t.inner.Get(ref)
	if !ok {
		return InstanceWithMeta{}, false
	}
	meta, ok := t.metadata[ref]
	if !ok {
		panic(fmt.Errorf("%w: live instance %v has no metadata", ErrInstanceNotLive, ref))
	}
	return InstanceWithMeta{instance: inst, metadata: meta}, true
}

// InsertInstance creates one instance per snapshot node under parent,
// parent-first, attaching and indexing each node's metadata, and returns the
// ref of the subtree root it created.
func (t *Tree) InsertInstance(parent dom.Ref, snapshot InstanceSnapshot) dom.Ref {
	builder := dom.NewInstanceBuilder(snapshot.ClassName).
		WithName(snapshot.Name).
		WithProperties(pivotMigrationDefaults(snapshot.ClassName, snapshot.Properties)).
		WithProperties(snapshot.Properties)

	ref := t.inner.Insert(parent, builder)
	t.insertMetadata(ref, snapshot.Metadata)
	TreeMutations.WithLabelValues("insert").Inc()

	for _, child := range snapshot.Children {
		t.InsertInstance(ref, child)
	}
	return ref
}

// Remove destroys the instance and its whole subtree. Metadata comes out of
// the indices for every descendant first, while the child links still exist
// to walk, and only then is the subtree destroyed in one go. Panics if ref
// is not live.
func (t *Tree) Remove(ref dom.Ref) {
	queue := []dom.Ref{ref}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		t.removeMetadata(next)
		if inst, ok := t.inner.Get(next); ok {
			queue = append(queue, inst.Children()...)
		}
	}

	t.inner.Destroy(ref)
	TreeMutations.WithLabelValues("remove").Inc()
}

// UpdateMetadata replaces the metadata of a live instance and reconciles
// both indices against the old values. A first-time set (no prior metadata)
// inserts without diffing.
func (t *Tree) UpdateMetadata(ref dom.Ref, meta InstanceMetadata) {
	existing, ok := t.metadata[ref]
	if !ok {
		t.metadata[ref] = &meta
		TreeMutations.WithLabelValues("update_metadata").Inc()
		return
	}

	// If the instance's source paths changed, rebuild its path associations
	// so file changes keep routing to it. Recomputed as a full diff; the
	// sets are tiny and a delta would be easy to get wrong.
	if !slices.Equal(existing.RelevantPaths, meta.RelevantPaths) {
		for _, path := range existing.RelevantPaths {
			t.pathToRefs.Remove(path, ref)
		}
		for _, path := range meta.RelevantPaths {
			t.pathToRefs.Insert(path, ref)
		}
	}

	if existing.SpecifiedID != meta.SpecifiedID {
		// Add before remove: while a specified ref moves between two live
		// instances it may briefly look duplicated, but never absent.
		if meta.SpecifiedID != "" {
			t.addSpecifiedRef(ref, meta.SpecifiedID)
		}
		if existing.SpecifiedID != "" {
			t.specifiedToRefs.Remove(existing.SpecifiedID, ref)
		}
	}

	t.metadata[ref] = &meta
	TreeMutations.WithLabelValues("update_metadata").Inc()
}

// RefsAtPath returns the roots whose metadata lists path as relevant, in
// index insertion order. Empty when the path is unknown.
func (t *Tree) RefsAtPath(path string) []dom.Ref {
	return t.pathToRefs.Get(path)
}

func (t *Tree) GetMetadata(ref dom.Ref) (*InstanceMetadata, bool) {
	meta, ok := t.metadata[ref]
	return meta, ok
}

// SpecifiedRef resolves a user-specified ref to its instance. It reports
// false both when the ref was never declared and when several instances
// claim it; either way there is no unambiguous owner.
func (t *Tree) SpecifiedRef(id SpecifiedID) (dom.Ref, bool) {
	refs := t.specifiedToRefs.Get(id)
	if len(refs) == 1 {
		return refs[0], true
	}
	return dom.RefNone, false
}

// SetSpecifiedID declares id on the instance, dropping the instance's old
// declaration first if it had one. Duplicate claims are reported, not
// rejected.
func (t *Tree) SetSpecifiedID(ref dom.Ref, id SpecifiedID) {
	if meta, ok := t.metadata[ref]; ok {
		if old := meta.SpecifiedID; old != "" {
			t.specifiedToRefs.Remove(old, ref)
		}
		meta.SpecifiedID = id
	}
	t.addSpecifiedRef(ref, id)
}

func (t *Tree) insertMetadata(ref dom.Ref, meta InstanceMetadata) {
	for _, path := range meta.RelevantPaths {
		t.pathToRefs.Insert(path, ref)
	}
	if meta.SpecifiedID != "" {
		t.addSpecifiedRef(ref, meta.SpecifiedID)
	}
	t.metadata[ref] = &meta
	LiveInstances.Inc()
}

func (t *Tree) removeMetadata(ref dom.Ref) {
	meta, ok := t.metadata[ref]
	if !ok {
		panic(fmt.Errorf("%w: remove metadata for %v", ErrInstanceNotLive, ref))
	}
	delete(t.metadata, ref)

	if meta.SpecifiedID != "" {
		t.specifiedToRefs.Remove(meta.SpecifiedID, ref)
	}
	for _, path := range meta.RelevantPaths {
		t.pathToRefs.Remove(path, ref)
	}
	LiveInstances.Dec()
}

// addSpecifiedRef inserts the claim, reporting a conflict when the ref
// already has a claimant. The insert happens regardless; lookups just stop
// resolving until one claimant goes away.
func (t *Tree) addSpecifiedRef(ref dom.Ref, id SpecifiedID) {
	if len(t.specifiedToRefs.Get(id)) > 0 {
		t.log.Error("duplicate user-specified ref", "id", string(id))
		SpecifiedRefConflicts.Inc()
	}
	t.specifiedToRefs.Insert(id, ref)
}

// InstanceWithMeta pairs an instance with its metadata. It is a borrowed
// view into the tree; it stays valid until the next structural mutation.
type InstanceWithMeta struct {
	instance *dom.Instance
	metadata *InstanceMetadata
}

func (i InstanceWithMeta) Ref() dom.Ref {
	return i.instance.Ref()
}

func (i InstanceWithMeta) Parent() dom.Ref {
	return i.instance.Parent()
}

func (i InstanceWithMeta) Name() string {
	return i.instance.Name
}

func (i InstanceWithMeta) SetName(name string) {
	i.instance.Name = name
}

func (i InstanceWithMeta) ClassName() dom.Ustr {
	return i.instance.Class()
}

func (i InstanceWithMeta) SetClassName(class string) {
	i.instance.SetClass(class)
}

func (i InstanceWithMeta) Properties() map[dom.Ustr]dom.Variant {
	return i.instance.Properties
}

func (i InstanceWithMeta) Children() []dom.Ref {
	return i.instance.Children()
}

func (i InstanceWithMeta) Metadata() *InstanceMetadata {
	return i.metadata
}
