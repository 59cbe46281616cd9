package qif

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Encode writes the aggregate as QIF text: category records first
// (depth-first per tree), then classes, securities, and accounts with
// their transaction sections. The output uses the canonical tag order and
// parses back to an equal aggregate.
func Encode(w io.Writer, q *Qif) error {
	bw := bufio.NewWriter(w)
	for _, root := range q.Categories() {
		writeRecord(bw, "!Type:Cat", categoryLines(root))
		for _, node := range root.Descendants() {
			writeRecord(bw, "!Type:Cat", categoryLines(node))
		}
	}
	for _, c := range q.Classes() {
		writeRecord(bw, "!Type:Class", classLines(c))
	}
	for _, s := range q.Securities() {
		writeRecord(bw, "!Type:Security", securityLines(s))
	}
	for _, a := range q.Accounts() {
		writeRecord(bw, "!Account", accountLines(a))
		for _, header := range a.Headers() {
			bw.WriteString("!Type:" + string(header) + "\n")
			for _, rec := range a.Transactions(header) {
				writeRecord(bw, "", rec.qifLines())
			}
		}
	}
	return bw.Flush()
}

// EncodeString returns the aggregate as QIF text.
func EncodeString(q *Qif) string {
	var b strings.Builder
	Encode(&b, q)
	return b.String()
}

// WriteFile writes the aggregate to a .qif file.
func WriteFile(path string, q *Qif) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, q); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeRecord(w *bufio.Writer, header string, lines []string) {
	if header != "" {
		w.WriteString(header + "\n")
	}
	for _, line := range lines {
		w.WriteString(line + "\n")
	}
	w.WriteString("^\n")
}

func categoryLines(c *Category) []string {
	lines := []string{"N" + c.Hierarchy()}
	if c.Desc != "" {
		lines = append(lines, "D"+c.Desc)
	}
	if c.TaxRelated {
		lines = append(lines, "T")
	}
	if c.Type == Income {
		lines = append(lines, "I")
	} else {
		lines = append(lines, "E")
	}
	if c.BudgetAmount != nil {
		lines = append(lines, "B"+c.BudgetAmount.String())
	}
	if c.TaxScheduleInfo != "" {
		lines = append(lines, "R"+c.TaxScheduleInfo)
	}
	return append(lines, c.Extra...)
}

func classLines(c *Class) []string {
	lines := []string{"N" + c.Name}
	if c.Desc != "" {
		lines = append(lines, "D"+c.Desc)
	}
	return append(lines, c.Extra...)
}

func securityLines(s *Security) []string {
	var lines []string
	if s.Name != "" {
		lines = append(lines, "N"+s.Name)
	}
	if s.Symbol != "" {
		lines = append(lines, "S"+s.Symbol)
	}
	if s.Type != "" {
		lines = append(lines, "T"+s.Type)
	}
	if s.Goal != "" {
		lines = append(lines, "G"+s.Goal)
	}
	return append(lines, s.Extra...)
}

func accountLines(a *Account) []string {
	lines := []string{"N" + a.Name}
	if a.Desc != "" {
		lines = append(lines, "D"+a.Desc)
	}
	if a.Type != "" {
		lines = append(lines, "T"+string(a.Type))
	}
	if a.CreditLimit != nil {
		lines = append(lines, "L"+a.CreditLimit.String())
	}
	if a.Balance != nil {
		lines = append(lines, "$"+a.Balance.String())
	}
	if !a.BalanceDate.IsZero() {
		lines = append(lines, "/"+a.BalanceDate.String())
	}
	return append(lines, a.Extra...)
}
