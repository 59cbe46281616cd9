package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/qif"
)

const sample = `!Type:Cat
NBills:Utilities
E
^
!Account
NChecking
TBank
^
!Type:Bank
D2021-02-07
T-150.60
PSupermarket
LBills:Utilities
^
D2021-02-08
T500.00
PEmployer
^
`

func parseSample(t *testing.T) *qif.Qif {
	t.Helper()
	q, err := qif.ParseString(sample, qif.Config{})
	if err != nil {
		t.Fatal(err)
	}
	return q
}

func TestSummaryMarkdown(t *testing.T) {
	got, err := SummaryMarkdown(parseSample(t), "USD")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"# QIF Summary",
		"| Checking | Bank | 2 |",
		"$500.00",
		"-$150.60",
		"$349.40",
		"Bills (root)",
		"└─ Utilities",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "## Classes") {
		t.Error("empty class section rendered")
	}
}

func TestTransactionMarkdown(t *testing.T) {
	q := parseSample(t)
	tx := q.Account("Checking").Transactions(qif.Bank)[0].(*qif.Transaction)
	got := TransactionMarkdown(tx, "USD")
	for _, want := range []string{"**2021-02-07**", "-$150.60", "Supermarket", "category: Bills:Utilities"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendering missing %q:\n%s", want, got)
		}
	}
}
