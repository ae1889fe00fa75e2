// Package automaton holds the analysis context produced by the LALR
// automaton construction: the packed parser tables, automaton dimensions,
// and the token/symbol kind tables. The rendering back end serializes
// this context; it never computes or mutates it.
package automaton

// Table is an ordered sequence of signed integers with its value range
// computed once at construction. The range drives both integer-kind
// selection and the compile-time-foldable table predicates.
type Table struct {
	values []int
	min    int
	max    int
}

// NewTable creates a Table over values. The slice is not copied; callers
// hand over ownership. An empty table has no defined range (Min and Max
// return 0); formatting one is rejected downstream.
func NewTable(values []int) *Table {
	t := &Table{values: values}
	for i, v := range values {
		if i == 0 || v < t.min {
			t.min = v
		}
		if i == 0 || v > t.max {
			t.max = v
		}
	}
	return t
}

// Values returns the table's values in order.
func (t *Table) Values() []int {
	return t.values
}

// Len returns the number of values in the table.
func (t *Table) Len() int {
	return len(t.values)
}

// Min returns the smallest value in the table, 0 if the table is empty.
func (t *Table) Min() int {
	return t.min
}

// Max returns the largest value in the table, 0 if the table is empty.
func (t *Table) Max() int {
	return t.max
}

// KindEntry is one row of a token-kind or symbol-kind table.
type KindEntry struct {
	Name    string // generated enum member name
	ID      int    // numeric id
	Display string // display string, "" if the grammar declared none
}

// Context is the immutable analysis context handed to the renderer.
// Field names follow the generated table names of the target skeleton.
type Context struct {
	// Automaton dimensions.
	FinalState   int // state reached on accept (yyfinal)
	LastIndex    int // highest index in the packed action table (yylast)
	TokenCount   int // number of terminals (yyntokens)
	NontermCount int // number of nonterminals (yynnts)
	RuleCount    int // number of rules (yynrules)
	StateCount   int // number of states (yynstates)
	MaxUserToken int // maximum user token id (yymaxutok)

	// Padding sentinels for the packed and error tables.
	PactNinf  int // "default" marker in the pact table
	TableNinf int // "error" marker in the action table

	// Kind tables, ordered by ascending id; the last entry's id equals
	// the declared maximum for that table.
	Tokens      []KindEntry // terminals only
	SymbolKinds []KindEntry // terminals and nonterminals

	// Parser tables.
	Translate *Table // raw token id -> internal symbol kind
	Rline     *Table // source line of each rule's definition
	Pact      *Table
	Defact    *Table
	Pgoto     *Table
	Defgoto   *Table
	Table     *Table
	Check     *Table

	// StateRules lists, per state, the ids of the rules active in it.
	StateRules [][]int
}

// SymbolNames returns the display strings of the symbol-kind table in
// order, skipping entries without one. This is the source sequence for
// the generated name table.
func (c *Context) SymbolNames() []string {
	names := make([]string, 0, len(c.SymbolKinds))
	for _, e := range c.SymbolKinds {
		if e.Display != "" {
			names = append(names, e.Display)
		}
	}
	return names
}
