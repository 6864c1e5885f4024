package dom

// InstanceBuilder accumulates everything needed to create one instance (and
// optionally a subtree below it) before it gets a Ref assigned by a Dom.
type InstanceBuilder struct {
	name       string
	class      Ustr
	properties map[Ustr]Variant
	children   []*InstanceBuilder
}

// NewInstanceBuilder starts a builder for an instance of the given class.
// The name defaults to the class name.
func NewInstanceBuilder(class string) *InstanceBuilder {
	return &InstanceBuilder{
		name:       class,
		class:      Intern(class),
		properties: make(map[Ustr]Variant),
	}
}

func (b *InstanceBuilder) WithName(name string) *InstanceBuilder {
	b.name = name
	return b
}

func (b *InstanceBuilder) WithProperty(name string, value Variant) *InstanceBuilder {
	b.properties[Intern(name)] = value
	return b
}

// WithProperties copies all entries of props into the builder, overwriting
// any keys already set.
func (b *InstanceBuilder) WithProperties(props map[string]Variant) *InstanceBuilder {
	for name, value := range props {
		b.properties[Intern(name)] = value
	}
	return b
}

func (b *InstanceBuilder) WithChild(child *InstanceBuilder) *InstanceBuilder {
	b.children = append(b.children, child)
	return b
}
