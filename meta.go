package rojo

// SpecifiedID is a user-declared label for an instance, meant to stay valid
// across tree rebuilds while the instance's dom.Ref does not. The empty
// string means "not declared".
type SpecifiedID string

// InstanceMetadata is the per-instance data the sync engine layers on top of
// a dom.Instance. It lives in the Tree, not the Dom, and exists for exactly
// as long as its instance does.
type InstanceMetadata struct {
	// RelevantPaths lists the filesystem paths whose changes should trigger
	// reconciliation of this instance's subtree. Only the root of a
	// source-derived subtree carries paths here; its descendants are covered
	// by reconciling that root.
	RelevantPaths []string

	// SpecifiedID is the user-declared stable label, if any.
	SpecifiedID SpecifiedID
}

func (m InstanceMetadata) WithRelevantPaths(paths ...string) InstanceMetadata {
	m.RelevantPaths = paths
	return m
}

func (m InstanceMetadata) WithSpecifiedID(id SpecifiedID) InstanceMetadata {
	m.SpecifiedID = id
	return m
}
