package qif

import (
	"fmt"
	"strings"
)

// CategoryType tells whether a category classifies income or expenses.
type CategoryType string

const (
	Expense CategoryType = "Expense"
	Income  CategoryType = "Income"
)

// Category is a node in a category tree. Categories form hierarchies
// written "Parent:Child:Grandchild" in QIF files; each node keeps a link to
// its parent and its children.
type Category struct {
	Name            string
	Desc            string
	TaxRelated      bool
	Type            CategoryType
	BudgetAmount    *Amount
	TaxScheduleInfo string
	// Extra holds unrecognized record lines, re-emitted verbatim on encode.
	Extra []string

	parent   *Category
	children []*Category
}

// NewCategory returns a leaf expense category with the given name.
func NewCategory(name string) *Category {
	return &Category{Name: name, Type: Expense}
}

// Parent returns the parent node, nil for a root.
func (c *Category) Parent() *Category { return c.parent }

// Children returns the direct children in declaration order.
func (c *Category) Children() []*Category { return c.children }

// Hierarchy returns the colon-joined path from the root to this node,
// e.g. "Bills:Utilities:Water".
func (c *Category) Hierarchy() string {
	names := []string{}
	for n := c; n != nil; n = n.parent {
		names = append(names, n.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, ":")
}

// Root returns the root of the tree this node belongs to.
func (c *Category) Root() *Category {
	n := c
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Ancestors returns the chain of parents, nearest first.
func (c *Category) Ancestors() []*Category {
	var out []*Category
	for n := c.parent; n != nil; n = n.parent {
		out = append(out, n)
	}
	return out
}

// Descendants returns all nodes below this one, parents before children.
func (c *Category) Descendants() []*Category {
	var out []*Category
	for _, child := range c.children {
		out = append(out, child)
		out = append(out, child.Descendants()...)
	}
	return out
}

// FindChild searches the subtree for a node with the given leaf name.
func (c *Category) FindChild(name string) *Category {
	for _, child := range c.children {
		if child.Name == name {
			return child
		}
		if found := child.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// SetParent attaches the category under a new parent, detaching it from
// the old one. It refuses to create a cycle.
func (c *Category) SetParent(parent *Category) error {
	if parent == c {
		return fmt.Errorf("category %q cannot be its own parent", c.Name)
	}
	for n := parent; n != nil; n = n.parent {
		if n == c {
			return fmt.Errorf("category %q is an ancestor of %q", c.Name, parent.Name)
		}
	}
	if c.parent != nil {
		siblings := c.parent.children
		for i, s := range siblings {
			if s == c {
				c.parent.children = append(siblings[:i:i], siblings[i+1:]...)
				break
			}
		}
	}
	c.parent = parent
	if parent != nil {
		parent.children = append(parent.children, c)
	}
	return nil
}

// AddChild attaches child under c. If a direct child with the same name
// already exists, the two are merged and the canonical stored node is
// returned.
func (c *Category) AddChild(child *Category) *Category {
	if existing := c.directChild(child.Name); existing != nil {
		existing.merge(child, nil)
		return existing
	}
	child.parent = c
	c.children = append(c.children, child)
	return child
}

// NewChild creates (or finds) a direct child with the given name.
func (c *Category) NewChild(name string) *Category {
	if existing := c.directChild(name); existing != nil {
		return existing
	}
	return c.AddChild(NewCategory(name))
}

// RemoveChild removes the direct child with the given name. When
// keepChildren is true the grandchildren are re-attached to c.
func (c *Category) RemoveChild(name string, keepChildren bool) bool {
	for i, child := range c.children {
		if child.Name != name {
			continue
		}
		c.children = append(c.children[:i:i], c.children[i+1:]...)
		child.parent = nil
		if keepChildren {
			for _, grand := range child.children {
				grand.parent = c
				c.children = append(c.children, grand)
			}
			child.children = nil
		}
		return true
	}
	return false
}

// Merge folds another declaration of the same category into this one:
// attributes are reconciled and the children trees are merged by name.
// warn, if non-nil, receives a message for each conflicting attribute.
func (c *Category) Merge(other *Category, warn func(format string, args ...any)) {
	c.merge(other, warn)
}

func (c *Category) merge(other *Category, warn func(format string, args ...any)) {
	c.mergeAttributes(other, warn)
	for _, oc := range other.children {
		if mine := c.directChild(oc.Name); mine != nil {
			mine.merge(oc, warn)
		} else {
			oc.parent = c
			c.children = append(c.children, oc)
		}
	}
}

func (c *Category) directChild(name string) *Category {
	for _, child := range c.children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// mergeAttributes reconciles two declarations of the same category.
// Non-default values win: Income beats the Expense default, a set
// description or budget fills an empty one. Conflicting non-default
// values keep the existing one and warn.
func (c *Category) mergeAttributes(other *Category, warn func(format string, args ...any)) {
	if other.Type == Income {
		c.Type = Income
	}
	if other.TaxRelated {
		c.TaxRelated = true
	}
	if c.Desc == "" {
		c.Desc = other.Desc
	} else if other.Desc != "" && other.Desc != c.Desc && warn != nil {
		warn("category %q declared twice with different descriptions (%q kept, %q dropped)", c.Hierarchy(), c.Desc, other.Desc)
	}
	if c.BudgetAmount == nil {
		c.BudgetAmount = other.BudgetAmount
	} else if other.BudgetAmount != nil && !c.BudgetAmount.Equal(*other.BudgetAmount) && warn != nil {
		warn("category %q declared twice with different budgets (%s kept, %s dropped)", c.Hierarchy(), c.BudgetAmount, other.BudgetAmount)
	}
	if c.TaxScheduleInfo == "" {
		c.TaxScheduleInfo = other.TaxScheduleInfo
	}
	if len(c.Extra) == 0 {
		c.Extra = other.Extra
	}
}

// RenderTree returns a human-readable view of the subtree, the receiver
// marked as root:
//
//	Bills (root)
//	└─ Utilities
//	   └─ Water
func (c *Category) RenderTree() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (root)", c.Name)
	c.renderTree(&b, 0)
	return b.String()
}

func (c *Category) renderTree(b *strings.Builder, level int) {
	for _, child := range c.children {
		fmt.Fprintf(b, "\n%s└─ %s", strings.Repeat("   ", level), child.Name)
		child.renderTree(b, level+1)
	}
}

// CategoryHierarchy builds (or completes) a category chain from a
// colon-separated hierarchy name and returns the leaf node.
func CategoryHierarchy(hierarchy string) *Category {
	names := strings.Split(hierarchy, ":")
	node := NewCategory(names[0])
	for _, name := range names[1:] {
		node = node.NewChild(name)
	}
	return node
}
