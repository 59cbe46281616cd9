package renderer

import (
	"github.com/etnz/qif"
)

// accountSummary is one row of the account table.
type accountSummary struct {
	Name    string
	Type    string
	Records int
	Inflow  string
	Outflow string
	Net     string
}

type summaryData struct {
	Accounts   []accountSummary
	Categories []string
	Classes    []string
	Securities []string
	Warnings   []string
}

// SummaryMarkdown renders an overview of the aggregate: one table row per
// account with money totals in the given ISO currency, the category forest
// and the classes and securities the file declares.
func SummaryMarkdown(q *qif.Qif, currency string) (string, error) {
	data := summaryData{Warnings: q.Warnings()}
	for _, a := range q.Accounts() {
		var in, out qif.Amount
		for _, header := range a.Headers() {
			for _, rec := range a.Transactions(header) {
				var amount qif.Amount
				switch t := rec.(type) {
				case *qif.Transaction:
					amount = t.Amount
				case *qif.InvestmentTransaction:
					amount = t.Amount
				}
				if amount.IsNegative() {
					out = out.Add(amount)
				} else {
					in = in.Add(amount)
				}
			}
		}
		data.Accounts = append(data.Accounts, accountSummary{
			Name:    a.Name,
			Type:    string(a.Type),
			Records: a.Len(),
			Inflow:  in.Display(currency),
			Outflow: out.Display(currency),
			Net:     in.Add(out).Display(currency),
		})
	}
	for _, root := range q.Categories() {
		data.Categories = append(data.Categories, root.RenderTree())
	}
	for _, c := range q.Classes() {
		line := c.Name
		if c.Desc != "" {
			line += ": " + c.Desc
		}
		data.Classes = append(data.Classes, line)
	}
	for _, s := range q.Securities() {
		line := s.Name
		if s.Symbol != "" {
			line += " (" + s.Symbol + ")"
		}
		data.Securities = append(data.Securities, line)
	}
	return renderTemplate("summary.md", data)
}
