package qif

import (
	"fmt"
	"reflect"
	"strings"
)

// Qif is a parsed QIF file: accounts with their transactions, the category
// forest, classes and securities. Entity maps remember insertion order so
// encoding is deterministic.
//
// A Qif is not safe for concurrent mutation; callers serialize access.
type Qif struct {
	accounts     map[string]*Account
	accountOrder []string

	categories    map[string]*Category
	categoryOrder []string

	classes    map[string]*Class
	classOrder []string

	securities    map[string]*Security
	securityOrder []string

	warnings []string
}

// New returns an empty Qif aggregate.
func New() *Qif {
	return &Qif{
		accounts:   make(map[string]*Account),
		categories: make(map[string]*Category),
		classes:    make(map[string]*Class),
		securities: make(map[string]*Security),
	}
}

// Warnings returns the semantic diagnostics collected while building the
// aggregate (split sum mismatches, conflicting re-declarations, skipped
// records in lenient parses).
func (q *Qif) Warnings() []string { return q.warnings }

func (q *Qif) warnf(format string, args ...any) {
	q.warnings = append(q.warnings, fmt.Sprintf(format, args...))
}

// AddAccount upserts an account by name. A new name stores the account as
// is; a known name merges into the stored one. The canonical stored
// account is returned.
func (q *Qif) AddAccount(a *Account) *Account {
	if existing, ok := q.accounts[a.Name]; ok {
		existing.Merge(a)
		return existing
	}
	q.accounts[a.Name] = a
	q.accountOrder = append(q.accountOrder, a.Name)
	return a
}

// Account returns the account with the given name, nil if unknown.
func (q *Qif) Account(name string) *Account { return q.accounts[name] }

// Accounts returns all accounts in insertion order.
func (q *Qif) Accounts() []*Account {
	out := make([]*Account, 0, len(q.accountOrder))
	for _, name := range q.accountOrder {
		out = append(out, q.accounts[name])
	}
	return out
}

// RemoveAccount deletes the account with the given name, reporting whether
// it existed.
func (q *Qif) RemoveAccount(name string) bool {
	if _, ok := q.accounts[name]; !ok {
		return false
	}
	delete(q.accounts, name)
	q.accountOrder = remove(q.accountOrder, name)
	return true
}

// AddCategory upserts a category tree. The tree containing cat is merged
// into the known forest by root name; the canonical node at cat's
// hierarchy is returned.
func (q *Qif) AddCategory(cat *Category) *Category {
	path := strings.Split(cat.Hierarchy(), ":")
	root := cat.Root()
	canonical, ok := q.categories[root.Name]
	if !ok {
		q.categories[root.Name] = root
		q.categoryOrder = append(q.categoryOrder, root.Name)
		return cat
	}
	canonical.Merge(root, q.warnf)
	node := canonical
	for _, name := range path[1:] {
		node = node.NewChild(name)
	}
	return node
}

// addHierarchy finds or creates the category chain for a colon-separated
// hierarchy name and returns the canonical leaf.
func (q *Qif) addHierarchy(hierarchy string) *Category {
	return q.AddCategory(CategoryHierarchy(hierarchy))
}

// Categories returns the category tree roots in insertion order.
func (q *Qif) Categories() []*Category {
	out := make([]*Category, 0, len(q.categoryOrder))
	for _, name := range q.categoryOrder {
		out = append(out, q.categories[name])
	}
	return out
}

// Category finds a category by its colon-separated hierarchy name, nil if
// unknown.
func (q *Qif) Category(hierarchy string) *Category {
	path := strings.Split(hierarchy, ":")
	node, ok := q.categories[path[0]]
	if !ok {
		return nil
	}
	for _, name := range path[1:] {
		next := (*Category)(nil)
		for _, child := range node.Children() {
			if child.Name == name {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		node = next
	}
	return node
}

// RemoveCategory deletes the category at the given hierarchy. For a root,
// the whole tree goes; below a root, the parent detaches the child, keeping
// grandchildren when keepChildren is true.
func (q *Qif) RemoveCategory(hierarchy string, keepChildren bool) bool {
	node := q.Category(hierarchy)
	if node == nil {
		return false
	}
	if node.Parent() == nil {
		delete(q.categories, node.Name)
		q.categoryOrder = remove(q.categoryOrder, node.Name)
		return true
	}
	return node.Parent().RemoveChild(node.Name, keepChildren)
}

// AddClass upserts a class by name and returns the canonical instance.
func (q *Qif) AddClass(c *Class) *Class {
	if existing, ok := q.classes[c.Name]; ok {
		existing.Merge(c)
		return existing
	}
	q.classes[c.Name] = c
	q.classOrder = append(q.classOrder, c.Name)
	return c
}

// Class returns the class with the given name, nil if unknown.
func (q *Qif) Class(name string) *Class { return q.classes[name] }

// Classes returns all classes in insertion order.
func (q *Qif) Classes() []*Class {
	out := make([]*Class, 0, len(q.classOrder))
	for _, name := range q.classOrder {
		out = append(out, q.classes[name])
	}
	return out
}

// RemoveClass deletes the class with the given name, reporting whether it
// existed.
func (q *Qif) RemoveClass(name string) bool {
	if _, ok := q.classes[name]; !ok {
		return false
	}
	delete(q.classes, name)
	q.classOrder = remove(q.classOrder, name)
	return true
}

// AddSecurity upserts a security by symbol (name when no symbol) and
// returns the canonical instance.
func (q *Qif) AddSecurity(s *Security) *Security {
	key := s.Key()
	if existing, ok := q.securities[key]; ok {
		existing.Merge(s)
		return existing
	}
	q.securities[key] = s
	q.securityOrder = append(q.securityOrder, key)
	return s
}

// Security returns the security with the given symbol or name, nil if
// unknown.
func (q *Qif) Security(key string) *Security { return q.securities[key] }

// Securities returns all securities in insertion order.
func (q *Qif) Securities() []*Security {
	out := make([]*Security, 0, len(q.securityOrder))
	for _, key := range q.securityOrder {
		out = append(out, q.securities[key])
	}
	return out
}

// RemoveSecurity deletes the security with the given symbol or name,
// reporting whether it existed.
func (q *Qif) RemoveSecurity(key string) bool {
	if _, ok := q.securities[key]; !ok {
		return false
	}
	delete(q.securities, key)
	q.securityOrder = remove(q.securityOrder, key)
	return true
}

// Equal reports whether two aggregates hold the same data. Warnings are a
// side channel and do not take part in equality.
func (q *Qif) Equal(other *Qif) bool {
	return reflect.DeepEqual(q.accounts, other.accounts) &&
		reflect.DeepEqual(q.accountOrder, other.accountOrder) &&
		reflect.DeepEqual(q.categories, other.categories) &&
		reflect.DeepEqual(q.categoryOrder, other.categoryOrder) &&
		reflect.DeepEqual(q.classes, other.classes) &&
		reflect.DeepEqual(q.classOrder, other.classOrder) &&
		reflect.DeepEqual(q.securities, other.securities) &&
		reflect.DeepEqual(q.securityOrder, other.securityOrder)
}

func remove(order []string, name string) []string {
	for i, n := range order {
		if n == name {
			return append(order[:i:i], order[i+1:]...)
		}
	}
	return order
}
