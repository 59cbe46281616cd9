package qif

import (
	"bytes"
	"encoding/json"
)

// jsonObjectWriter builds a JSON object whose keys appear in the order
// they were appended. encoding/json sorts map keys; exports want the
// document to read the way the model is declared.
type jsonObjectWriter struct {
	buf bytes.Buffer
	err error
	n   int
}

// Append adds a key/value pair, marshaling the value with encoding/json.
func (w *jsonObjectWriter) Append(key string, value any) {
	if w.err != nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		w.err = err
		return
	}
	w.appendRaw(key, data)
}

// Optional adds a key/value pair unless the value is a zero of its kind
// (empty string, nil, false, zero Date or Amount).
func (w *jsonObjectWriter) Optional(key string, value any) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return
		}
	case bool:
		if !v {
			return
		}
	case Date:
		if v.IsZero() {
			return
		}
	case *Amount:
		if v == nil {
			return
		}
	case []string:
		if len(v) == 0 {
			return
		}
	case nil:
		return
	}
	w.Append(key, value)
}

func (w *jsonObjectWriter) appendRaw(key string, raw []byte) {
	keyData, err := json.Marshal(key)
	if err != nil {
		w.err = err
		return
	}
	if w.n > 0 {
		w.buf.WriteByte(',')
	}
	w.buf.Write(keyData)
	w.buf.WriteByte(':')
	w.buf.Write(raw)
	w.n++
}

// MarshalJSON returns the accumulated object.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	var out bytes.Buffer
	out.WriteByte('{')
	out.Write(w.buf.Bytes())
	out.WriteByte('}')
	return out.Bytes(), nil
}

// MarshalJSON exports the aggregate as a single ordered document:
// accounts (with their transactions), categories, classes, securities.
func (q *Qif) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("accounts", q.Accounts())
	w.Append("categories", q.Categories())
	w.Append("classes", q.Classes())
	w.Append("securities", q.Securities())
	return w.MarshalJSON()
}

func (a *Account) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("name", a.Name)
	w.Optional("desc", a.Desc)
	w.Optional("type", string(a.Type))
	w.Optional("credit_limit", a.CreditLimit)
	w.Optional("balance", a.Balance)
	w.Optional("balance_date", a.BalanceDate)
	sections := &jsonObjectWriter{}
	for _, header := range a.Headers() {
		sections.Append(string(header), a.Transactions(header))
	}
	w.Append("transactions", sections)
	return w.MarshalJSON()
}

func (t *Transaction) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("date", t.Date)
	w.Append("amount", t.Amount)
	w.Optional("payee", t.Payee)
	w.Optional("memo", t.Memo)
	w.Optional("cleared", t.Cleared)
	w.Optional("check_number", t.CheckNumber)
	if t.Category != nil {
		w.Append("category", t.Category.Hierarchy())
	}
	w.Optional("class", t.Class)
	w.Optional("to_account", t.ToAccount)
	w.Optional("address", t.AddressLines)
	w.Optional("reimbursable_expense", t.ReimbursableExpense)
	w.Optional("first_payment_date", t.FirstPaymentDate)
	w.Optional("loan_length", t.LoanLength)
	w.Optional("num_payments", t.NumPayments)
	w.Optional("periods_per_annum", t.PeriodsPerAnnum)
	w.Optional("interest_rate", t.InterestRate)
	w.Optional("current_loan_balance", t.CurrentLoanBalance)
	w.Optional("original_loan_amount", t.OriginalLoanAmount)
	if len(t.Splits) > 0 {
		w.Append("splits", t.Splits)
	}
	w.Optional("extra", t.Extra)
	return w.MarshalJSON()
}

func (s *Split) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	if s.Category != nil {
		w.Append("category", s.Category.Hierarchy())
	}
	w.Optional("class", s.Class)
	w.Optional("to_account", s.ToAccount)
	w.Optional("memo", s.Memo)
	w.Optional("amount", s.Amount)
	w.Optional("percent", s.Percent)
	return w.MarshalJSON()
}

func (t *InvestmentTransaction) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("date", t.Date)
	w.Optional("action", t.Action)
	w.Optional("security", t.Security)
	w.Optional("price", t.Price)
	w.Optional("quantity", t.Quantity)
	w.Append("amount", t.Amount)
	w.Optional("cleared", t.Cleared)
	w.Optional("memo", t.Memo)
	w.Optional("first_line", t.FirstLine)
	w.Optional("to_account", t.ToAccount)
	w.Optional("transfer_amount", t.TransferAmount)
	w.Optional("commission", t.Commission)
	w.Optional("extra", t.Extra)
	return w.MarshalJSON()
}

func (c *Category) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("name", c.Name)
	w.Append("hierarchy", c.Hierarchy())
	w.Optional("desc", c.Desc)
	w.Append("type", string(c.Type))
	w.Optional("tax_related", c.TaxRelated)
	w.Optional("budget_amount", c.BudgetAmount)
	w.Optional("tax_schedule_info", c.TaxScheduleInfo)
	if len(c.children) > 0 {
		w.Append("children", c.children)
	}
	w.Optional("extra", c.Extra)
	return w.MarshalJSON()
}

func (c *Class) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("name", c.Name)
	w.Optional("desc", c.Desc)
	if len(c.categories) > 0 {
		hierarchies := make([]string, 0, len(c.categories))
		for _, cat := range c.categories {
			hierarchies = append(hierarchies, cat.Hierarchy())
		}
		w.Append("categories", hierarchies)
	}
	w.Optional("extra", c.Extra)
	return w.MarshalJSON()
}

func (s *Security) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("name", s.Name)
	w.Optional("symbol", s.Symbol)
	w.Optional("type", s.Type)
	w.Optional("goal", s.Goal)
	w.Optional("extra", s.Extra)
	return w.MarshalJSON()
}
