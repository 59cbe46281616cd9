package qif

import (
	"strings"
	"testing"
)

func TestCategoryHierarchy(t *testing.T) {
	leaf := CategoryHierarchy("Bills:Utilities:Water")
	if leaf.Name != "Water" {
		t.Fatalf("leaf = %q", leaf.Name)
	}
	if got := leaf.Hierarchy(); got != "Bills:Utilities:Water" {
		t.Errorf("Hierarchy = %q", got)
	}
	if got := leaf.Root().Name; got != "Bills" {
		t.Errorf("Root = %q", got)
	}
	if got := len(leaf.Ancestors()); got != 2 {
		t.Errorf("got %d ancestors, want 2", got)
	}
}

func TestCategoryChildren(t *testing.T) {
	bills := NewCategory("Bills")
	utilities := bills.NewChild("Utilities")
	water := utilities.NewChild("Water")

	if utilities.Parent() != bills || water.Parent() != utilities {
		t.Fatal("parent links wrong")
	}
	// NewChild with a known name returns the existing node.
	if bills.NewChild("Utilities") != utilities {
		t.Error("NewChild duplicated a child")
	}
	if bills.FindChild("Water") != water {
		t.Error("FindChild missed a grandchild")
	}
	if got := len(bills.Descendants()); got != 2 {
		t.Errorf("got %d descendants, want 2", got)
	}
}

func TestCategoryAddChildMerges(t *testing.T) {
	bills := NewCategory("Bills")
	bills.NewChild("Utilities")

	dup := NewCategory("Utilities")
	dup.Desc = "Gas, water, power"
	got := bills.AddChild(dup)
	if got != bills.Children()[0] {
		t.Fatal("AddChild did not return the canonical child")
	}
	if got.Desc != "Gas, water, power" {
		t.Errorf("merge lost description: %q", got.Desc)
	}
	if len(bills.Children()) != 1 {
		t.Errorf("got %d children, want 1", len(bills.Children()))
	}
}

func TestCategorySetParent(t *testing.T) {
	a := NewCategory("A")
	b := a.NewChild("B")
	c := NewCategory("C")

	if err := b.SetParent(c); err != nil {
		t.Fatal(err)
	}
	if b.Parent() != c || len(a.Children()) != 0 {
		t.Error("SetParent did not move the node")
	}
	if err := b.SetParent(b); err == nil {
		t.Error("self-parenting accepted")
	}
	if err := c.SetParent(b); err == nil {
		t.Error("cycle accepted")
	}
}

func TestCategoryRemoveChild(t *testing.T) {
	bills := NewCategory("Bills")
	utilities := bills.NewChild("Utilities")
	utilities.NewChild("Water")

	if !bills.RemoveChild("Utilities", true) {
		t.Fatal("RemoveChild reported false")
	}
	// the grandchild survives, re-attached to Bills.
	if bills.FindChild("Water") == nil {
		t.Error("grandchild lost")
	}
	if bills.FindChild("Utilities") != nil {
		t.Error("removed child still present")
	}
	if bills.RemoveChild("Utilities", false) {
		t.Error("RemoveChild reported true for an unknown name")
	}
}

func TestCategoryMergeWarnsOnConflicts(t *testing.T) {
	a := CategoryHierarchy("Bills:Utilities").Root()
	a.Desc = "first"

	other := NewCategory("Bills")
	other.Desc = "second"
	other.Type = Income
	other.NewChild("Insurance")

	var warnings []string
	a.Merge(other, func(format string, args ...any) {
		warnings = append(warnings, format)
	})
	if a.Desc != "first" {
		t.Errorf("existing description overwritten: %q", a.Desc)
	}
	if a.Type != Income {
		t.Error("Income did not win over the Expense default")
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(warnings))
	}
	if len(a.Children()) != 2 {
		t.Errorf("got %d children, want 2 (Utilities and Insurance)", len(a.Children()))
	}
}

func TestCategoryRenderTree(t *testing.T) {
	bills := NewCategory("Bills")
	bills.NewChild("Utilities").NewChild("Water")
	bills.NewChild("Insurance")

	want := strings.Join([]string{
		"Bills (root)",
		"└─ Utilities",
		"   └─ Water",
		"└─ Insurance",
	}, "\n")
	if got := bills.RenderTree(); got != want {
		t.Errorf("RenderTree:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
