package qif

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// DataType selects which entity kind a flat export covers.
type DataType string

const (
	DataTransactions DataType = "transactions"
	DataInvestments  DataType = "investments"
	DataAccounts     DataType = "accounts"
	DataCategories   DataType = "categories"
	DataClasses      DataType = "classes"
	DataSecurities   DataType = "securities"
)

// ParseDataType reads a DataType from its string form.
func ParseDataType(s string) (DataType, error) {
	switch t := DataType(strings.ToLower(strings.TrimSpace(s))); t {
	case DataTransactions, DataInvestments, DataAccounts, DataCategories, DataClasses, DataSecurities:
		return t, nil
	}
	return "", fmt.Errorf("unknown data type %q (want transactions, investments, accounts, categories, classes or securities)", s)
}

// ExportCSV writes a flat CSV view of one entity kind of the aggregate.
// Nested structure (splits, category children) is flattened to columns a
// spreadsheet can use.
func ExportCSV(w io.Writer, q *Qif, kind DataType) error {
	cw := csv.NewWriter(w)
	switch kind {
	case DataTransactions:
		cw.Write([]string{"account", "section", "date", "amount", "payee", "memo", "cleared", "check_number", "category", "class", "to_account", "splits"})
		for _, a := range q.Accounts() {
			for _, header := range a.Headers() {
				if header == Investment {
					continue
				}
				for _, rec := range a.Transactions(header) {
					t, ok := rec.(*Transaction)
					if !ok {
						continue
					}
					cw.Write([]string{
						a.Name,
						string(header),
						t.Date.String(),
						t.Amount.String(),
						t.Payee,
						t.Memo,
						t.Cleared,
						t.CheckNumber,
						hierarchyOf(t.Category),
						t.Class,
						t.ToAccount,
						fmt.Sprint(len(t.Splits)),
					})
				}
			}
		}
	case DataInvestments:
		cw.Write([]string{"account", "date", "action", "security", "price", "quantity", "amount", "cleared", "memo", "commission", "to_account", "transfer_amount"})
		for _, a := range q.Accounts() {
			for _, rec := range a.Transactions(Investment) {
				t, ok := rec.(*InvestmentTransaction)
				if !ok {
					continue
				}
				cw.Write([]string{
					a.Name,
					t.Date.String(),
					t.Action,
					t.Security,
					optAmount(t.Price),
					optAmount(t.Quantity),
					t.Amount.String(),
					t.Cleared,
					t.Memo,
					optAmount(t.Commission),
					t.ToAccount,
					optAmount(t.TransferAmount),
				})
			}
		}
	case DataAccounts:
		cw.Write([]string{"name", "desc", "type", "credit_limit", "balance", "balance_date", "records"})
		for _, a := range q.Accounts() {
			date := ""
			if !a.BalanceDate.IsZero() {
				date = a.BalanceDate.String()
			}
			cw.Write([]string{a.Name, a.Desc, string(a.Type), optAmount(a.CreditLimit), optAmount(a.Balance), date, fmt.Sprint(a.Len())})
		}
	case DataCategories:
		cw.Write([]string{"hierarchy", "desc", "type", "tax_related", "budget_amount", "tax_schedule_info"})
		for _, root := range q.Categories() {
			writeCategoryRows(cw, root)
		}
	case DataClasses:
		cw.Write([]string{"name", "desc", "categories"})
		for _, c := range q.Classes() {
			hierarchies := make([]string, 0, len(c.Categories()))
			for _, cat := range c.Categories() {
				hierarchies = append(hierarchies, cat.Hierarchy())
			}
			cw.Write([]string{c.Name, c.Desc, strings.Join(hierarchies, ";")})
		}
	case DataSecurities:
		cw.Write([]string{"name", "symbol", "type", "goal"})
		for _, s := range q.Securities() {
			cw.Write([]string{s.Name, s.Symbol, s.Type, s.Goal})
		}
	default:
		return fmt.Errorf("unknown data type %q", kind)
	}
	cw.Flush()
	return cw.Error()
}

func writeCategoryRows(cw *csv.Writer, c *Category) {
	tax := ""
	if c.TaxRelated {
		tax = "true"
	}
	cw.Write([]string{c.Hierarchy(), c.Desc, string(c.Type), tax, optAmount(c.BudgetAmount), c.TaxScheduleInfo})
	for _, child := range c.Children() {
		writeCategoryRows(cw, child)
	}
}

func hierarchyOf(c *Category) string {
	if c == nil {
		return ""
	}
	return c.Hierarchy()
}

func optAmount(a *Amount) string {
	if a == nil {
		return ""
	}
	return a.String()
}
