package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aclindsa/ofxgo"
	"github.com/etnz/qif"
	"github.com/google/subcommands"
)

type importOfxCmd struct {
	outputFile string
}

func (*importOfxCmd) Name() string { return "import-ofx" }
func (*importOfxCmd) Synopsis() string {
	return "converts an OFX/QFX bank statement to QIF"
}
func (*importOfxCmd) Usage() string {
	return `qifc import-ofx [-o <out.qif>] <file.ofx>

  Reads an OFX or QFX statement download and writes the equivalent QIF
  text: one account per statement, bank and credit card transactions
  included.

Usage Examples:
$ qifc import-ofx statement.ofx > statement.qif

`
}

func (p *importOfxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Write the result to this file instead of stdout.")
}

func (p *importOfxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: missing <file.ofx> argument")
		return subcommands.ExitFailure
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	q, err := convertOFX(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if p.outputFile == "" {
		fmt.Print(qif.EncodeString(q))
		return subcommands.ExitSuccess
	}
	if err := qif.WriteFile(p.outputFile, q); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", p.outputFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// convertOFX parses an OFX statement and rebuilds it as a Qif aggregate:
// one account per statement response.
func convertOFX(r io.Reader) (*qif.Qif, error) {
	resp, err := ofxgo.ParseResponse(r)
	if err != nil {
		return nil, fmt.Errorf("not a valid OFX document: %w", err)
	}

	q := qif.New()
	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		account := q.AddAccount(&qif.Account{
			Name: string(stmt.BankAcctFrom.AcctID),
			Type: qif.Bank,
		})
		for _, tx := range stmt.BankTranList.Transactions {
			account.AddTransaction(qif.Bank, convertOFXTransaction(tx))
		}
	}
	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		account := q.AddAccount(&qif.Account{
			Name: string(stmt.CCAcctFrom.AcctID),
			Type: qif.CreditCard,
		})
		for _, tx := range stmt.BankTranList.Transactions {
			account.AddTransaction(qif.CreditCard, convertOFXTransaction(tx))
		}
	}
	if len(q.Accounts()) == 0 {
		return nil, fmt.Errorf("no bank or credit card statements found")
	}
	return q, nil
}

func convertOFXTransaction(tx ofxgo.Transaction) *qif.Transaction {
	posted := tx.DtPosted.Time
	payee := string(tx.Name)
	if tx.Payee != nil && tx.Payee.Name != "" {
		// PAYEE, when present, carries the cleaner merchant name.
		payee = string(tx.Payee.Name)
	}
	return &qif.Transaction{
		Date:        qif.NewDate(posted.Year(), posted.Month(), posted.Day()),
		Amount:      qif.MustParseAmount(tx.TrnAmt.FloatString(2)),
		Payee:       payee,
		Memo:        string(tx.Memo),
		CheckNumber: string(tx.CheckNum),
	}
}
