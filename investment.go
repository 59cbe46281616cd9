package qif

import "fmt"

// InvestmentTransaction is one record under a !Type:Invst section. Tag
// codes overlap with bank-style records but mean different things here
// (N is the action, not a check number).
type InvestmentTransaction struct {
	Date     Date
	Action   string
	Security string
	Price    *Amount
	Quantity *Amount
	Cleared  string
	Amount   Amount
	Memo     string
	// FirstLine is the P line, a free-form description.
	FirstLine string
	// ToAccount is the account on the other side of a transfer action.
	ToAccount      string
	TransferAmount *Amount
	Commission     *Amount
	// Extra holds unrecognized record lines, re-emitted verbatim on encode.
	Extra []string
}

// When returns the transaction date.
func (t *InvestmentTransaction) When() Date { return t.Date }

func (t *InvestmentTransaction) String() string {
	return fmt.Sprintf("Investment %s %s %q", t.Date, t.Action, t.Security)
}

func (t *InvestmentTransaction) qifLines() []string {
	lines := []string{"D" + t.Date.String()}
	if t.Action != "" {
		lines = append(lines, "N"+t.Action)
	}
	if t.Security != "" {
		lines = append(lines, "Y"+t.Security)
	}
	if t.Price != nil {
		lines = append(lines, "I"+t.Price.String())
	}
	if t.Quantity != nil {
		lines = append(lines, "Q"+t.Quantity.String())
	}
	if t.Cleared != "" {
		lines = append(lines, "C"+t.Cleared)
	}
	lines = append(lines, "T"+t.Amount.String())
	if t.Memo != "" {
		lines = append(lines, "M"+t.Memo)
	}
	if t.FirstLine != "" {
		lines = append(lines, "P"+t.FirstLine)
	}
	if t.ToAccount != "" {
		lines = append(lines, "L["+t.ToAccount+"]")
	}
	if t.TransferAmount != nil {
		lines = append(lines, "$"+t.TransferAmount.String())
	}
	if t.Commission != nil {
		lines = append(lines, "O"+t.Commission.String())
	}
	return append(lines, t.Extra...)
}
