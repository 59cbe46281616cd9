package qif

import (
	"fmt"
	"strings"
)

// AccountType identifies the kind of transactions an account holds. Values
// match the suffix of the "!Type:" section headers.
type AccountType string

const (
	Cash           AccountType = "Cash"
	Bank           AccountType = "Bank"
	CreditCard     AccountType = "CCard"
	OtherAsset     AccountType = "Oth A"
	OtherLiability AccountType = "Oth L"
	Invoice        AccountType = "Invoice"
	Investment     AccountType = "Invst"
	UnknownAccount AccountType = "Unknown"
)

// ParseAccountType reads an account type from a section header suffix or an
// account T line, e.g. "Bank" or "Oth A".
func ParseAccountType(s string) AccountType {
	switch t := AccountType(strings.TrimSpace(s)); t {
	case Cash, Bank, CreditCard, OtherAsset, OtherLiability, Invoice, Investment:
		return t
	}
	return UnknownAccount
}

// Record is an entry stored under an account header: a *Transaction or an
// *InvestmentTransaction.
type Record interface {
	// When returns the record's date.
	When() Date

	qifLines() []string
}

// Account is a QIF account: a named container of transaction lists, one
// list per section header seen while the account was current.
type Account struct {
	Name string
	Desc string
	Type AccountType

	// Balance fields from the account record itself.
	CreditLimit *Amount
	Balance     *Amount
	BalanceDate Date

	// Extra holds unrecognized record lines, re-emitted verbatim on encode.
	Extra []string

	transactions map[AccountType][]Record
	headers      []AccountType
}

// DefaultAccountName is the account synthesized for transactions that
// appear before any !Account section.
const DefaultAccountName = "Quiffen Default Account"

// NewAccount returns an empty account with the given name.
func NewAccount(name string) *Account {
	return &Account{Name: name}
}

func newDefaultAccount() *Account {
	return &Account{
		Name: DefaultAccountName,
		Desc: "The default account created by Quiffen when no other accounts were present",
	}
}

// Headers returns the section headers the account holds transactions for,
// in first-seen order.
func (a *Account) Headers() []AccountType { return a.headers }

// Transactions returns the records stored under the given header.
func (a *Account) Transactions(header AccountType) []Record {
	return a.transactions[header]
}

// AddTransaction stores a record under the given section header.
func (a *Account) AddTransaction(header AccountType, r Record) {
	if a.transactions == nil {
		a.transactions = make(map[AccountType][]Record)
	}
	if _, seen := a.transactions[header]; !seen {
		a.headers = append(a.headers, header)
	}
	a.transactions[header] = append(a.transactions[header], r)
}

// Len returns the total number of records across all headers.
func (a *Account) Len() int {
	n := 0
	for _, recs := range a.transactions {
		n += len(recs)
	}
	return n
}

// Merge folds another declaration of the same account into this one:
// missing attributes are filled and transaction lists are concatenated.
func (a *Account) Merge(other *Account) {
	if a.Desc == "" {
		a.Desc = other.Desc
	}
	if a.Type == "" || a.Type == UnknownAccount {
		if other.Type != "" {
			a.Type = other.Type
		}
	}
	if a.CreditLimit == nil {
		a.CreditLimit = other.CreditLimit
	}
	if a.Balance == nil {
		a.Balance = other.Balance
	}
	if a.BalanceDate.IsZero() {
		a.BalanceDate = other.BalanceDate
	}
	if len(a.Extra) == 0 {
		a.Extra = other.Extra
	}
	for _, h := range other.headers {
		for _, r := range other.transactions[h] {
			a.AddTransaction(h, r)
		}
	}
}

func (a *Account) String() string {
	return fmt.Sprintf("Account %q (%d records)", a.Name, a.Len())
}
