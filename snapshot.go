package rojo

import "github.com/memothelemo/rojo/dom"

// InstanceSnapshot is an immutable description of an instance subtree as some
// source (usually the filesystem) says it should look. Snapshots are produced
// outside the tree and consumed by NewTree and Tree.InsertInstance.
type InstanceSnapshot struct {
	ClassName  string
	Name       string
	Properties map[string]dom.Variant
	Children   []InstanceSnapshot
	Metadata   InstanceMetadata
}

// NewSnapshot returns a blank snapshot, a Folder named "Folder". Tests and
// callers refine it through the With methods.
func NewSnapshot() InstanceSnapshot {
	return InstanceSnapshot{
		ClassName: "Folder",
		Name:      "Folder",
	}
}

func (s InstanceSnapshot) WithClassName(class string) InstanceSnapshot {
	s.ClassName = class
	return s
}

func (s InstanceSnapshot) WithName(name string) InstanceSnapshot {
	s.Name = name
	return s
}

func (s InstanceSnapshot) WithProperties(props map[string]dom.Variant) InstanceSnapshot {
	s.Properties = props
	return s
}

func (s InstanceSnapshot) WithChildren(children ...InstanceSnapshot) InstanceSnapshot {
	s.Children = children
	return s
}

func (s InstanceSnapshot) WithMetadata(meta InstanceMetadata) InstanceSnapshot {
	s.Metadata = meta
	return s
}
