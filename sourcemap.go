package rojo

import (
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"

	"github.com/memothelemo/rojo/dom"
)

// SourcemapNode is the external sourcemap format: a pared-down mirror of the
// tree that keeps only names, classes, and the project-relative files each
// instance came from. Editor tooling consumes it as JSON.
type SourcemapNode struct {
	Name      string           `json:"name"`
	ClassName string           `json:"className"`
	FilePaths []string         `json:"filePaths,omitempty"`
	Children  []*SourcemapNode `json:"children,omitempty"`
}

const (
	statCacheSize = 4096
	statCacheTTL  = time.Second
)

// Sourcemapper generates sourcemaps for one project directory. A serve
// session regenerates the sourcemap after every applied patch, so stat
// results for relevant paths are kept in a small expiring cache instead of
// hitting the filesystem for every path every time. The TTL bounds how stale
// the file filter can get; the filter is best-effort to begin with.
type Sourcemapper struct {
	projectDir string
	stats      *expirable.LRU[string, bool]
}

func NewSourcemapper(projectDir string) *Sourcemapper {
	return &Sourcemapper{
		projectDir: projectDir,
		stats:      expirable.NewLRU[string, bool](statCacheSize, nil, statCacheTTL),
	}
}

// Generate projects the whole tree. Nil when nothing in the tree is
// file-backed.
func (s *Sourcemapper) Generate(tree *Tree) *SourcemapNode {
	return s.project(tree, tree.RootRef())
}

// ProjectSubtree projects the subtree at ref into a sourcemap with file
// paths relative to projectDir, without any stat caching. Nil when the
// subtree has no file-backed content anywhere.
func ProjectSubtree(tree *Tree, ref dom.Ref, projectDir string) *SourcemapNode {
	s := Sourcemapper{projectDir: projectDir}
	return s.project(tree, ref)
}

func (s *Sourcemapper) project(tree *Tree, ref dom.Ref) *SourcemapNode {
	inst, ok := tree.GetInstance(ref)
	if !ok {
		panic(ErrInstanceNotLive)
	}

	// Children project independently and only read the tree, so fan out.
	// Order is restored by writing each result at its child's slot.
	childRefs := inst.Children()
	projected := make([]*SourcemapNode, len(childRefs))
	var group errgroup.Group
	for i, childRef := range childRefs {
		group.Go(func() error {
			projected[i] = s.project(tree, childRef)
			return nil
		})
	}
	_ = group.Wait()

	children := make([]*SourcemapNode, 0, len(projected))
	for _, child := range projected {
		if child != nil {
			children = append(children, child)
		}
	}

	// Relevant paths are not guaranteed to exist, and paths outside the
	// project directory cannot be expressed in the map; both are skipped,
	// not errors.
	var filePaths []string
	for _, path := range inst.Metadata().RelevantPaths {
		if !s.isFile(path) {
			continue
		}
		rel, err := filepath.Rel(s.projectDir, path)
		if err != nil || !filepath.IsLocal(rel) {
			continue
		}
		filePaths = append(filePaths, rel)
	}

	// A branch with no file-backed content anywhere below it carries no
	// information for tooling; it collapses out of the map entirely.
	if len(children) == 0 && len(filePaths) == 0 {
		return nil
	}

	return &SourcemapNode{
		Name:      inst.Name(),
		ClassName: inst.ClassName().String(),
		FilePaths: filePaths,
		Children:  children,
	}
}

func (s *Sourcemapper) isFile(path string) bool {
	if s.stats != nil {
		if isFile, ok := s.stats.Get(path); ok {
			return isFile
		}
	}
	info, err := os.Stat(path)
	isFile := err == nil && info.Mode().IsRegular()
	if s.stats != nil {
		s.stats.Add(path, isFile)
	}
	return isFile
}
