package qif

// Security is an instrument declared in a !Type:Security section.
type Security struct {
	Name   string
	Symbol string
	Type   string
	Goal   string
	// Extra holds unrecognized record lines, re-emitted verbatim on encode.
	Extra []string
}

// NewSecurity returns a security with the given name and symbol.
func NewSecurity(name, symbol string) *Security {
	return &Security{Name: name, Symbol: symbol}
}

// Key returns the identity the aggregate indexes the security under:
// the symbol, or the name when no symbol was declared.
func (s *Security) Key() string {
	if s.Symbol != "" {
		return s.Symbol
	}
	return s.Name
}

// Merge folds another declaration of the same security into this one,
// filling fields the first declaration left empty.
func (s *Security) Merge(other *Security) {
	if s.Name == "" {
		s.Name = other.Name
	}
	if s.Symbol == "" {
		s.Symbol = other.Symbol
	}
	if s.Type == "" {
		s.Type = other.Type
	}
	if s.Goal == "" {
		s.Goal = other.Goal
	}
	if len(s.Extra) == 0 {
		s.Extra = other.Extra
	}
}
