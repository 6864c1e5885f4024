package rojo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("return {}\n"), 0o644))
	return path
}

func TestSourcemapPrunesFilelessTree(t *testing.T) {
	tree := NewTree(
		NewSnapshot().WithName("Root").WithChildren(
			NewSnapshot().WithName("Empty").WithChildren(
				NewSnapshot().WithName("AlsoEmpty"),
			),
		),
		Options{Logger: &recordingLogger{}},
	)

	node := ProjectSubtree(tree, tree.RootRef(), t.TempDir())
	assert.Nil(t, node, "nothing file-backed, nothing to map")
}

func TestSourcemapKeepsChainToFileBackedLeaf(t *testing.T) {
	projectDir := t.TempDir()
	scriptPath := writeFile(t, projectDir, filepath.Join("src", "module.lua"))

	tree := NewTree(
		NewSnapshot().WithName("Root").WithChildren(
			NewSnapshot().WithName("Src").WithChildren(
				NewSnapshot().WithName("Module").
					WithClassName("ModuleScript").
					WithMetadata(InstanceMetadata{}.WithRelevantPaths(scriptPath)),
			),
			NewSnapshot().WithName("Fileless"),
		),
		Options{Logger: &recordingLogger{}},
	)

	node := ProjectSubtree(tree, tree.RootRef(), projectDir)
	require.NotNil(t, node)
	assert.Equal(t, "Root", node.Name)
	require.Len(t, node.Children, 1, "the fileless sibling is pruned")

	src := node.Children[0]
	assert.Equal(t, "Src", src.Name)
	require.Len(t, src.Children, 1)

	module := src.Children[0]
	assert.Equal(t, "Module", module.Name)
	assert.Equal(t, "ModuleScript", module.ClassName)
	assert.Equal(t, []string{filepath.Join("src", "module.lua")}, module.FilePaths)
}

func TestSourcemapSkipsMissingAndForeignPaths(t *testing.T) {
	projectDir := t.TempDir()
	otherDir := t.TempDir()
	inside := writeFile(t, projectDir, "init.lua")
	outside := writeFile(t, otherDir, "outside.lua")
	missing := filepath.Join(projectDir, "not-there.lua")

	tree := NewTree(
		NewSnapshot().WithName("Root").WithChildren(
			NewSnapshot().WithName("Thing").
				WithMetadata(InstanceMetadata{}.WithRelevantPaths(missing, outside, inside)),
		),
		Options{Logger: &recordingLogger{}},
	)

	node := ProjectSubtree(tree, tree.RootRef(), projectDir)
	require.NotNil(t, node)
	require.Len(t, node.Children, 1)
	assert.Equal(t, []string{"init.lua"}, node.Children[0].FilePaths)
}

func TestSourcemapperRegenerates(t *testing.T) {
	projectDir := t.TempDir()
	scriptPath := writeFile(t, projectDir, "thing.lua")

	tree := NewTree(
		NewSnapshot().WithName("Root").WithChildren(
			NewSnapshot().WithName("Thing").
				WithMetadata(InstanceMetadata{}.WithRelevantPaths(scriptPath)),
		),
		Options{Logger: &recordingLogger{}},
	)

	mapper := NewSourcemapper(projectDir)
	first := mapper.Generate(tree)
	require.NotNil(t, first)

	// Second generation hits the stat cache and must agree with the first.
	second := mapper.Generate(tree)
	require.NotNil(t, second)
	assert.Equal(t, first, second)
}

func TestSourcemapJSONShape(t *testing.T) {
	node := &SourcemapNode{
		Name:      "Thing",
		ClassName: "ModuleScript",
		FilePaths: []string{"thing.lua"},
	}
	raw, err := json.Marshal(node)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Thing","className":"ModuleScript","filePaths":["thing.lua"]}`, string(raw))

	// Empty file and child lists are omitted, not emitted as [].
	raw, err = json.Marshal(&SourcemapNode{Name: "Empty", ClassName: "Folder"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Empty","className":"Folder"}`, string(raw))
}
