package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParentChildConsistency(t *testing.T) {
	dom := NewDom(NewInstanceBuilder("DataModel").WithName("Root"))
	root := dom.Root()

	a := dom.Insert(root, NewInstanceBuilder("Folder").WithName("A"))
	b := dom.Insert(root, NewInstanceBuilder("Folder").WithName("B"))
	c := dom.Insert(a, NewInstanceBuilder("ModuleScript").WithName("C"))

	rootInst, ok := dom.Get(root)
	require.True(t, ok)
	assert.Equal(t, []Ref{a, b}, rootInst.Children())
	assert.True(t, rootInst.Parent().IsNone())

	aInst, ok := dom.Get(a)
	require.True(t, ok)
	assert.Equal(t, root, aInst.Parent())
	assert.Equal(t, []Ref{c}, aInst.Children())

	cInst, ok := dom.Get(c)
	require.True(t, ok)
	assert.Equal(t, a, cInst.Parent())
	assert.Equal(t, 4, dom.Len())
}

func TestBuilderSubtree(t *testing.T) {
	dom := NewDom(
		NewInstanceBuilder("DataModel").WithChild(
			NewInstanceBuilder("Folder").WithName("Child").WithChild(
				NewInstanceBuilder("Folder").WithName("Grandchild"),
			),
		),
	)
	assert.Equal(t, 3, dom.Len())

	rootInst, _ := dom.Get(dom.Root())
	require.Len(t, rootInst.Children(), 1)
	child, ok := dom.Get(rootInst.Children()[0])
	require.True(t, ok)
	assert.Equal(t, "Child", child.Name)
	require.Len(t, child.Children(), 1)
}

func TestDestroyDetachesAndRemovesSubtree(t *testing.T) {
	dom := NewDom(NewInstanceBuilder("DataModel"))
	root := dom.Root()
	a := dom.Insert(root, NewInstanceBuilder("Folder").WithName("A"))
	b := dom.Insert(a, NewInstanceBuilder("Folder").WithName("B"))
	keep := dom.Insert(root, NewInstanceBuilder("Folder").WithName("Keep"))

	dom.Destroy(a)

	_, ok := dom.Get(a)
	assert.False(t, ok)
	_, ok = dom.Get(b)
	assert.False(t, ok, "descendants die with their ancestor")
	_, ok = dom.Get(keep)
	assert.True(t, ok)

	rootInst, _ := dom.Get(root)
	assert.Equal(t, []Ref{keep}, rootInst.Children())
	assert.Equal(t, 2, dom.Len())
}

func TestRefsAreNotReused(t *testing.T) {
	dom := NewDom(NewInstanceBuilder("DataModel"))
	a := dom.Insert(dom.Root(), NewInstanceBuilder("Folder"))
	dom.Destroy(a)

	again := dom.Insert(dom.Root(), NewInstanceBuilder("Folder"))
	assert.NotEqual(t, a, again)
	_, ok := dom.Get(a)
	assert.False(t, ok)
}

func TestPreconditionPanics(t *testing.T) {
	dom := NewDom(NewInstanceBuilder("DataModel"))

	assert.Panics(t, func() { dom.Destroy(dom.Root()) })
	assert.Panics(t, func() { dom.Destroy(NewRef()) })
	assert.Panics(t, func() { dom.Insert(NewRef(), NewInstanceBuilder("Folder")) })
}

func TestBuilderProperties(t *testing.T) {
	dom := NewDom(
		NewInstanceBuilder("Model").
			WithProperty("Archivable", true).
			WithProperties(map[string]Variant{"Name2": "x"}),
	)
	inst, _ := dom.Get(dom.Root())
	assert.Equal(t, Variant(true), inst.Properties[Intern("Archivable")])
	assert.Equal(t, Variant("x"), inst.Properties[Intern("Name2")])
}
