package qif

import (
	"fmt"
	"strings"
)

// Split is one leg of a split transaction. A run of S/E/$/% lines in a
// record describes consecutive splits; a new S line starts the next one.
type Split struct {
	// Category is the split's category, nil for a transfer split.
	Category *Category
	// Class is the "/class" suffix of the S line, if any.
	Class string
	// ToAccount is set instead of Category for "S[Account]" transfer splits.
	ToAccount string
	Memo      string
	// Amount and Percent are optional: a file may declare either or both.
	Amount  *Amount
	Percent *Amount
}

func (s *Split) qifLines() []string {
	var lines []string
	switch {
	case s.ToAccount != "":
		lines = append(lines, "S["+s.ToAccount+"]")
	case s.Category != nil:
		l := "S" + s.Category.Hierarchy()
		if s.Class != "" {
			l += "/" + s.Class
		}
		lines = append(lines, l)
	}
	if s.Memo != "" {
		lines = append(lines, "E"+s.Memo)
	}
	if s.Amount != nil {
		lines = append(lines, "$"+s.Amount.String())
	}
	if s.Percent != nil {
		lines = append(lines, "%"+s.Percent.String()+"%")
	}
	return lines
}

// Transaction is a bank-style transaction: one record under a Bank, Cash,
// CCard, Oth A, Oth L or Invoice section.
type Transaction struct {
	Date    Date
	Amount  Amount
	Memo    string
	Cleared string
	Payee   string
	// AddressLines keeps the A lines in order.
	AddressLines []string
	// Category is nil for transfers; then ToAccount names the other side.
	Category  *Category
	Class     string
	ToAccount string
	// CheckNumber is kept verbatim: files carry both "1021" and "1021A".
	CheckNumber         string
	ReimbursableExpense bool

	// Loan fields, codes 1 through 7.
	FirstPaymentDate   Date
	LoanLength         *Amount
	NumPayments        *Amount
	PeriodsPerAnnum    *Amount
	InterestRate       *Amount
	CurrentLoanBalance *Amount
	OriginalLoanAmount *Amount

	Splits []*Split
	// Extra holds unrecognized record lines, re-emitted verbatim on encode.
	Extra []string
}

// When returns the transaction date.
func (t *Transaction) When() Date { return t.Date }

func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction %s %s %q", t.Date, t.Amount.String(), t.Payee)
}

// SplitSum returns the sum of the split amounts and whether every split
// declared one.
func (t *Transaction) SplitSum() (Amount, bool) {
	var sum Amount
	for _, s := range t.Splits {
		if s.Amount == nil {
			return sum, false
		}
		sum = sum.Add(*s.Amount)
	}
	return sum, true
}

// reconcileSplits derives missing split percents from amounts and reports
// declared values that disagree with each other. Diagnostics only: the
// record is kept as written.
func (t *Transaction) reconcileSplits(warn func(format string, args ...any)) {
	if len(t.Splits) == 0 {
		return
	}
	sum, complete := t.SplitSum()
	if complete && !sum.Equal(t.Amount) && warn != nil {
		warn("transaction %s %q: split amounts sum to %s, transaction total is %s", t.Date, t.Payee, sum.String(), t.Amount.String())
	}
	if t.Amount.IsZero() {
		return
	}
	hundred := A(100)
	for _, s := range t.Splits {
		if s.Amount == nil {
			continue
		}
		pct := s.Amount.Div(t.Amount).Mul(hundred).Round(9)
		if s.Percent == nil {
			p := pct
			s.Percent = &p
		} else if !s.Percent.Round(2).Equal(pct.Round(2)) && warn != nil {
			warn("transaction %s %q: split declares %s%% but its amount works out to %s%%", t.Date, t.Payee, s.Percent.String(), pct.Round(2).String())
		}
	}
}

func (t *Transaction) qifLines() []string {
	lines := []string{"D" + t.Date.String()}
	lines = append(lines, "T"+t.Amount.String())
	if t.Memo != "" {
		lines = append(lines, "M"+t.Memo)
	}
	if t.Cleared != "" {
		lines = append(lines, "C"+t.Cleared)
	}
	if t.Payee != "" {
		lines = append(lines, "P"+t.Payee)
	}
	for _, a := range t.AddressLines {
		lines = append(lines, "A"+a)
	}
	switch {
	case t.ToAccount != "":
		lines = append(lines, "L["+t.ToAccount+"]")
	case t.Category != nil:
		l := "L" + t.Category.Hierarchy()
		if t.Class != "" {
			l += "/" + t.Class
		}
		lines = append(lines, l)
	}
	if t.CheckNumber != "" {
		lines = append(lines, "N"+t.CheckNumber)
	}
	if t.ReimbursableExpense {
		lines = append(lines, "F")
	}
	if !t.FirstPaymentDate.IsZero() {
		lines = append(lines, "1"+t.FirstPaymentDate.String())
	}
	for _, f := range []struct {
		code  string
		value *Amount
	}{
		{"2", t.LoanLength},
		{"3", t.NumPayments},
		{"4", t.PeriodsPerAnnum},
		{"5", t.InterestRate},
		{"6", t.CurrentLoanBalance},
		{"7", t.OriginalLoanAmount},
	} {
		if f.value != nil {
			lines = append(lines, f.code+f.value.String())
		}
	}
	for _, s := range t.Splits {
		lines = append(lines, s.qifLines()...)
	}
	return append(lines, t.Extra...)
}

// splitCategoryClass separates the "/class" suffix of an L or S line.
// Hierarchies never contain '/', so the last slash is the class separator.
func splitCategoryClass(s string) (category, class string) {
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}
