package qif

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Config controls how a QIF stream is parsed.
type Config struct {
	// DayFirst reads "02/07/2021" as the 2nd of July instead of February
	// the 7th. QIF carries no locale marker; only the producer knows.
	DayFirst bool
	// Strict turns the first undecodable record into a parse error. The
	// default is lenient: bad records are skipped and reported as
	// warnings on the returned Qif. Structural errors (unterminated
	// record, body before any section header) fail in both modes.
	Strict bool
}

// ParseError describes a failure to decode a QIF stream.
type ParseError struct {
	// Line is the 1-based line number of the offending line.
	Line int
	// Tag is the tag code of the offending line, 0 for structural errors.
	Tag rune
	// Value is the raw field value.
	Value string
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Tag == 0 && e.Err == nil:
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	case e.Tag == 0:
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Err)
	case e.Err == nil:
		return fmt.Sprintf("line %d: tag %q value %q: %s", e.Line, e.Tag, e.Value, e.Msg)
	default:
		return fmt.Sprintf("line %d: tag %q value %q: %v", e.Line, e.Tag, e.Value, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// record is one tokenized QIF record: the section header in force and the
// body lines up to (excluding) the '^' terminator.
type record struct {
	header string
	lines  []string
	line   int
}

// scanner tokenizes a QIF stream into records. Lines starting with '!'
// update the current section header and persist across records; '#'
// comments and blank lines are skipped; a lone '^' ends the record.
type scanner struct {
	s      *bufio.Scanner
	lineNo int
	header string
}

func newScanner(r io.Reader) *scanner {
	return &scanner{s: bufio.NewScanner(r)}
}

// next returns the next record, or (nil, nil) at end of stream.
func (sc *scanner) next() (*record, error) {
	var rec *record
	for sc.s.Scan() {
		sc.lineNo++
		line := strings.TrimRight(sc.s.Text(), " \t\r")
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			continue
		case strings.HasPrefix(trimmed, "!"):
			if rec != nil {
				return nil, &ParseError{Line: sc.lineNo, Msg: fmt.Sprintf("section header %q inside an unterminated record", trimmed)}
			}
			if strings.HasPrefix(trimmed, "!Option:") || strings.HasPrefix(trimmed, "!Clear:") {
				continue
			}
			sc.header = trimmed
		case trimmed == "^":
			if rec != nil {
				return rec, nil
			}
		default:
			if sc.header == "" {
				return nil, &ParseError{Line: sc.lineNo, Msg: fmt.Sprintf("record body %q before any section header", trimmed)}
			}
			if rec == nil {
				rec = &record{header: sc.header, line: sc.lineNo}
			}
			rec.lines = append(rec.lines, line)
		}
	}
	if err := sc.s.Err(); err != nil {
		return nil, err
	}
	if rec != nil {
		return nil, &ParseError{Line: rec.line, Msg: "unterminated record at end of input"}
	}
	return nil, nil
}

type parser struct {
	cfg     Config
	q       *Qif
	current *Account
}

// Parse reads a QIF stream into an aggregate.
func Parse(r io.Reader, cfg Config) (*Qif, error) {
	p := &parser{cfg: cfg, q: New()}
	sc := newScanner(r)
	for {
		rec, err := sc.next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return p.q, nil
		}
		if err := p.dispatch(rec); err != nil {
			if cfg.Strict {
				return nil, err
			}
			p.q.warnf("skipped record: %v", err)
		}
	}
}

// ParseString parses QIF text.
func ParseString(s string, cfg Config) (*Qif, error) {
	return Parse(strings.NewReader(s), cfg)
}

// ParseFile parses a .qif file.
func ParseFile(path string, cfg Config) (*Qif, error) {
	if ext := filepath.Ext(path); !strings.EqualFold(ext, ".qif") {
		return nil, fmt.Errorf("%s: not a .qif file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if fi, err := f.Stat(); err == nil && fi.Size() == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	q, err := Parse(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return q, nil
}

func (p *parser) dispatch(rec *record) error {
	switch rec.header {
	case "!Account":
		a, err := p.decodeAccount(rec)
		if err != nil {
			return err
		}
		p.current = p.q.AddAccount(a)
		return nil
	case "!Type:Cat":
		leaf, err := p.decodeCategory(rec)
		if err != nil {
			return err
		}
		p.q.AddCategory(leaf)
		return nil
	case "!Type:Class":
		c, err := p.decodeClass(rec)
		if err != nil {
			return err
		}
		p.q.AddClass(c)
		return nil
	case "!Type:Security":
		s, err := p.decodeSecurity(rec)
		if err != nil {
			return err
		}
		p.q.AddSecurity(s)
		return nil
	case "!Type:Invst":
		t, err := p.decodeInvestment(rec)
		if err != nil {
			return err
		}
		p.account().AddTransaction(Investment, t)
		return nil
	case "!Type:Memorized":
		p.q.warnf("line %d: memorized transaction records are not supported, record skipped", rec.line)
		return nil
	}
	if kind, ok := strings.CutPrefix(rec.header, "!Type:"); ok {
		header := ParseAccountType(kind)
		if header == UnknownAccount {
			p.q.warnf("line %d: unknown section header %q, record skipped", rec.line, rec.header)
			return nil
		}
		t, err := p.decodeTransaction(rec)
		if err != nil {
			return err
		}
		p.account().AddTransaction(header, t)
		return nil
	}
	p.q.warnf("line %d: unknown section header %q, record skipped", rec.line, rec.header)
	return nil
}

// account returns the account transactions currently belong to,
// synthesizing the default one when no !Account section came first.
func (p *parser) account() *Account {
	if p.current == nil {
		p.current = p.q.AddAccount(newDefaultAccount())
	}
	return p.current
}

// tagValue splits a record line into its tag code and raw value. The tag
// is a rune: '£' balance lines are multi-byte.
func tagValue(line string) (rune, string) {
	r, size := utf8.DecodeRuneInString(line)
	return r, line[size:]
}

func fieldErr(rec *record, tag rune, value string, err error) error {
	return &ParseError{Line: rec.line, Tag: tag, Value: value, Err: err}
}

func (p *parser) decodeTransaction(rec *record) (*Transaction, error) {
	t := &Transaction{Amount: A(0)}
	var split *Split
	// lastSplit returns the split under construction, creating one when a
	// $/E/% line arrives before any S line.
	lastSplit := func() *Split {
		if split == nil {
			split = &Split{}
			t.Splits = append(t.Splits, split)
		}
		return split
	}
	for _, line := range rec.lines {
		tag, value := tagValue(line)
		switch tag {
		case 'D':
			d, err := ParseDate(value, p.cfg.DayFirst)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			t.Date = d
		case 'T', 'U':
			a, err := ParseAmount(value)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			t.Amount = a
		case 'M':
			t.Memo = value
		case 'C':
			t.Cleared = value
		case 'P':
			t.Payee = value
		case 'A':
			t.AddressLines = append(t.AddressLines, value)
		case 'L':
			if to, ok := bracketed(value); ok {
				t.ToAccount = to
				break
			}
			cat, class := splitCategoryClass(value)
			t.Category = p.q.addHierarchy(cat)
			t.Class = class
			if class != "" {
				p.q.AddClass(NewClass(class)).AddCategory(t.Category)
			}
		case 'N':
			t.CheckNumber = value
		case 'F':
			t.ReimbursableExpense = true
		case 'S':
			split = &Split{}
			t.Splits = append(t.Splits, split)
			if to, ok := bracketed(value); ok {
				split.ToAccount = to
				break
			}
			cat, class := splitCategoryClass(value)
			split.Category = p.q.addHierarchy(cat)
			split.Class = class
			if class != "" {
				p.q.AddClass(NewClass(class)).AddCategory(split.Category)
			}
		case 'E':
			lastSplit().Memo = value
		case '$', '£':
			a, err := ParseAmount(value)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			lastSplit().Amount = &a
		case '%':
			a, err := ParseAmount(strings.Trim(value, "%"))
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			lastSplit().Percent = &a
		case '1':
			d, err := ParseDate(value, p.cfg.DayFirst)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			t.FirstPaymentDate = d
		case '2', '3', '4', '5', '6', '7':
			a, err := ParseAmount(value)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			switch tag {
			case '2':
				t.LoanLength = &a
			case '3':
				t.NumPayments = &a
			case '4':
				t.PeriodsPerAnnum = &a
			case '5':
				t.InterestRate = &a
			case '6':
				t.CurrentLoanBalance = &a
			case '7':
				t.OriginalLoanAmount = &a
			}
		case 'X':
			// invoice detail lines, not modeled
		default:
			t.Extra = append(t.Extra, line)
		}
	}
	if t.Date.IsZero() {
		return nil, &ParseError{Line: rec.line, Msg: "transaction record has no date"}
	}
	t.reconcileSplits(p.q.warnf)
	return t, nil
}

func (p *parser) decodeInvestment(rec *record) (*InvestmentTransaction, error) {
	t := &InvestmentTransaction{Amount: A(0)}
	for _, line := range rec.lines {
		tag, value := tagValue(line)
		switch tag {
		case 'D':
			d, err := ParseDate(value, p.cfg.DayFirst)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			t.Date = d
		case 'N':
			t.Action = value
		case 'Y':
			t.Security = value
		case 'I':
			a, err := ParseAmount(value)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			t.Price = &a
		case 'Q':
			a, err := ParseAmount(value)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			t.Quantity = &a
		case 'C':
			t.Cleared = value
		case 'T', 'U':
			a, err := ParseAmount(value)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			t.Amount = a
		case 'M':
			t.Memo = value
		case 'P':
			t.FirstLine = value
		case 'L':
			if to, ok := bracketed(value); ok {
				t.ToAccount = to
			} else {
				t.ToAccount = value
			}
		case '$', '£':
			a, err := ParseAmount(value)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			t.TransferAmount = &a
		case 'O':
			a, err := ParseAmount(value)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			t.Commission = &a
		default:
			t.Extra = append(t.Extra, line)
		}
	}
	if t.Date.IsZero() {
		return nil, &ParseError{Line: rec.line, Msg: "investment record has no date"}
	}
	return t, nil
}

func (p *parser) decodeAccount(rec *record) (*Account, error) {
	a := &Account{}
	for _, line := range rec.lines {
		tag, value := tagValue(line)
		switch tag {
		case 'N':
			a.Name = value
		case 'D':
			a.Desc = value
		case 'T':
			a.Type = ParseAccountType(value)
		case 'L':
			v, err := ParseAmount(value)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			a.CreditLimit = &v
		case '$', '£':
			v, err := ParseAmount(value)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			a.Balance = &v
		case '/':
			d, err := ParseDate(value, p.cfg.DayFirst)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			a.BalanceDate = d
		default:
			a.Extra = append(a.Extra, line)
		}
	}
	if a.Name == "" {
		return nil, &ParseError{Line: rec.line, Msg: "account record has no name"}
	}
	return a, nil
}

func (p *parser) decodeCategory(rec *record) (*Category, error) {
	var leaf *Category
	// the N line may come after attribute lines; hold attributes until the
	// node exists.
	pending := &Category{Type: Expense}
	for _, line := range rec.lines {
		tag, value := tagValue(line)
		target := leaf
		if target == nil {
			target = pending
		}
		switch tag {
		case 'N':
			leaf = CategoryHierarchy(value)
			leaf.Desc = pending.Desc
			leaf.TaxRelated = pending.TaxRelated
			leaf.Type = pending.Type
			leaf.BudgetAmount = pending.BudgetAmount
			leaf.TaxScheduleInfo = pending.TaxScheduleInfo
			leaf.Extra = pending.Extra
		case 'D':
			target.Desc = value
		case 'T':
			target.TaxRelated = true
		case 'E':
			target.Type = Expense
		case 'I':
			target.Type = Income
		case 'B':
			a, err := ParseAmount(value)
			if err != nil {
				return nil, fieldErr(rec, tag, value, err)
			}
			target.BudgetAmount = &a
		case 'R':
			target.TaxScheduleInfo = value
		default:
			target.Extra = append(target.Extra, line)
		}
	}
	if leaf == nil {
		return nil, &ParseError{Line: rec.line, Msg: "category record has no name"}
	}
	return leaf, nil
}

func (p *parser) decodeClass(rec *record) (*Class, error) {
	c := &Class{}
	for _, line := range rec.lines {
		tag, value := tagValue(line)
		switch tag {
		case 'N':
			c.Name = value
		case 'D':
			c.Desc = value
		default:
			c.Extra = append(c.Extra, line)
		}
	}
	if c.Name == "" {
		return nil, &ParseError{Line: rec.line, Msg: "class record has no name"}
	}
	return c, nil
}

func (p *parser) decodeSecurity(rec *record) (*Security, error) {
	s := &Security{}
	for _, line := range rec.lines {
		tag, value := tagValue(line)
		switch tag {
		case 'N':
			s.Name = value
		case 'S':
			s.Symbol = value
		case 'T':
			s.Type = value
		case 'G':
			s.Goal = value
		default:
			s.Extra = append(s.Extra, line)
		}
	}
	if s.Key() == "" {
		return nil, &ParseError{Line: rec.line, Msg: "security record has no name or symbol"}
	}
	return s, nil
}

// bracketed reports whether a value has the "[Account]" transfer form and
// returns the inner name.
func bracketed(s string) (string, bool) {
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return s[1 : len(s)-1], true
	}
	return "", false
}
