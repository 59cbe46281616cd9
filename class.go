package qif

// Class is a QIF class: an orthogonal label attached to categories, written
// "category/class" on transaction lines.
type Class struct {
	Name string
	Desc string
	// Extra holds unrecognized record lines, re-emitted verbatim on encode.
	Extra []string

	categories []*Category
}

// NewClass returns a class with the given name.
func NewClass(name string) *Class {
	return &Class{Name: name}
}

// Categories returns the categories attached to the class, in the order
// they were attached.
func (c *Class) Categories() []*Category { return c.categories }

// AddCategory attaches a category to the class. Attaching the same
// hierarchy twice is a no-op.
func (c *Class) AddCategory(cat *Category) {
	for _, known := range c.categories {
		if known == cat || known.Hierarchy() == cat.Hierarchy() {
			return
		}
	}
	c.categories = append(c.categories, cat)
}

// Contains reports whether a category with the given leaf name is attached
// to the class.
func (c *Class) Contains(name string) bool {
	for _, cat := range c.categories {
		if cat.Name == name {
			return true
		}
	}
	return false
}

// Merge folds another declaration of the same class into this one.
func (c *Class) Merge(other *Class) {
	if c.Desc == "" {
		c.Desc = other.Desc
	}
	if len(c.Extra) == 0 {
		c.Extra = other.Extra
	}
	for _, cat := range other.categories {
		c.AddCategory(cat)
	}
}
