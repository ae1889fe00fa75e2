// Package grammar defines the immutable grammar model consumed by the
// rendering back end: symbols, rules, and the user code blocks attached
// to them. Instances are produced upstream by the grammar front end and
// are never mutated here.
package grammar

// Symbol is a terminal or nonterminal symbol of the grammar.
type Symbol struct {
	ID       int    // numeric id, unique and ascending in Grammar.Symbols
	EnumName string // generated enum member name
	Comment  string // human-readable comment (display name or definition)
	Tag      string // semantic-value type tag, "" if untyped

	// Printer is the code run when displaying this symbol's semantic
	// value, nil if the grammar declared none.
	Printer *Code
}

// Rule is a single production of the grammar.
type Rule struct {
	ID      int
	Comment string // human-readable form, e.g. "expr: expr '+' expr"

	// Action is the code run when the rule is reduced, nil if the
	// grammar declared none.
	Action *Code
}

// Grammar is the analyzed grammar as handed over by the front end.
type Grammar struct {
	// The four distinguished symbols.
	EOFSymbol    *Symbol
	ErrorSymbol  *Symbol
	UndefSymbol  *Symbol
	AcceptSymbol *Symbol

	Symbols []*Symbol // ordered by ascending ID
	Rules   []*Rule   // ordered by ascending ID

	// ParseParam is the user's %parse-param declaration, "" if absent.
	ParseParam string

	// Aux is the verbatim epilogue code block, nil if absent.
	Aux *Code
}
