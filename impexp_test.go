package qif

import (
	"encoding/csv"
	"strings"
	"testing"
)

func exportRows(t *testing.T, q *Qif, kind DataType) [][]string {
	t.Helper()
	var b strings.Builder
	if err := ExportCSV(&b, q, kind); err != nil {
		t.Fatalf("ExportCSV(%s): %v", kind, err)
	}
	rows, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	if err != nil {
		t.Fatalf("export of %s is not valid CSV: %v", kind, err)
	}
	return rows
}

func TestParseDataType(t *testing.T) {
	for _, in := range []string{"transactions", "Transactions", " securities "} {
		if _, err := ParseDataType(in); err != nil {
			t.Errorf("ParseDataType(%q): %v", in, err)
		}
	}
	if _, err := ParseDataType("payees"); err == nil {
		t.Error("ParseDataType accepted an unknown kind")
	}
}

func TestExportTransactionsCSV(t *testing.T) {
	rows := exportRows(t, parseSample(t), DataTransactions)
	if len(rows) != 5 { // header + 4 bank transactions
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	if rows[0][0] != "account" || rows[0][2] != "date" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	first := rows[1]
	if first[0] != "Personal Checking" || first[2] != "2021-02-07" || first[3] != "-150.6" || first[4] != "Supermarket" {
		t.Errorf("unexpected first row: %v", first)
	}
	if first[8] != "Bills:Utilities" {
		t.Errorf("category column = %q", first[8])
	}
	transfer := rows[3]
	if transfer[10] != "Savings" {
		t.Errorf("to_account column = %q", transfer[10])
	}
}

func TestExportInvestmentsCSV(t *testing.T) {
	rows := exportRows(t, parseSample(t), DataInvestments)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	row := rows[1]
	if row[0] != "Brokerage" || row[2] != "Buy" || row[3] != "VTI" || row[4] != "200" {
		t.Errorf("unexpected row: %v", row)
	}
}

func TestExportAccountsCSV(t *testing.T) {
	rows := exportRows(t, parseSample(t), DataAccounts)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[1][0] != "Personal Checking" || rows[1][2] != "Bank" || rows[1][6] != "4" {
		t.Errorf("unexpected row: %v", rows[1])
	}
}

func TestExportCategoriesCSV(t *testing.T) {
	rows := exportRows(t, parseSample(t), DataCategories)
	var hierarchies []string
	for _, row := range rows[1:] {
		hierarchies = append(hierarchies, row[0])
	}
	joined := strings.Join(hierarchies, ",")
	for _, want := range []string{"Bills", "Bills:Utilities", "Salary", "Leisure"} {
		if !strings.Contains(","+joined+",", ","+want+",") {
			t.Errorf("missing hierarchy %q in %v", want, hierarchies)
		}
	}
}

func TestExportClassesAndSecuritiesCSV(t *testing.T) {
	q := parseSample(t)

	rows := exportRows(t, q, DataClasses)
	if len(rows) != 2 || rows[1][0] != "Holiday" {
		t.Fatalf("unexpected class rows: %v", rows)
	}
	if !strings.Contains(rows[1][2], "Leisure") {
		t.Errorf("class categories column = %q", rows[1][2])
	}

	rows = exportRows(t, q, DataSecurities)
	if len(rows) != 2 || rows[1][1] != "VTI" {
		t.Fatalf("unexpected security rows: %v", rows)
	}
}
