package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/qif"
)

// TransactionMarkdown renders one transaction as a markdown block.
func TransactionMarkdown(t *qif.Transaction, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** %s", t.Date, t.Amount.Display(currency))
	if t.Payee != "" {
		fmt.Fprintf(&b, " %s", t.Payee)
	}
	if t.CheckNumber != "" {
		fmt.Fprintf(&b, " (check %s)", t.CheckNumber)
	}
	b.WriteString("\n")
	if t.Memo != "" {
		fmt.Fprintf(&b, "  - memo: %s\n", t.Memo)
	}
	switch {
	case t.ToAccount != "":
		fmt.Fprintf(&b, "  - transfer to: %s\n", t.ToAccount)
	case t.Category != nil:
		label := t.Category.Hierarchy()
		if t.Class != "" {
			label += "/" + t.Class
		}
		fmt.Fprintf(&b, "  - category: %s\n", label)
	}
	for _, s := range t.Splits {
		var parts []string
		switch {
		case s.ToAccount != "":
			parts = append(parts, "to "+s.ToAccount)
		case s.Category != nil:
			parts = append(parts, s.Category.Hierarchy())
		}
		if s.Memo != "" {
			parts = append(parts, s.Memo)
		}
		if s.Amount != nil {
			parts = append(parts, s.Amount.Display(currency))
		}
		fmt.Fprintf(&b, "  - split: %s\n", strings.Join(parts, ", "))
	}
	return b.String()
}

// InvestmentMarkdown renders one investment transaction as a markdown
// block.
func InvestmentMarkdown(t *qif.InvestmentTransaction, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** %s %s", t.Date, t.Action, t.Security)
	fmt.Fprintf(&b, " %s", t.Amount.Display(currency))
	b.WriteString("\n")
	if t.Quantity != nil && t.Price != nil {
		fmt.Fprintf(&b, "  - %s units at %s\n", t.Quantity, t.Price.Display(currency))
	}
	if t.Commission != nil {
		fmt.Fprintf(&b, "  - commission: %s\n", t.Commission.Display(currency))
	}
	if t.Memo != "" {
		fmt.Fprintf(&b, "  - memo: %s\n", t.Memo)
	}
	return b.String()
}
