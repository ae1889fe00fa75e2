package grammar

// Code is a block of user-authored source text carried through from the
// grammar file: a rule action, a symbol printer, or the epilogue.
//
// The position records where the block starts in the grammar file. The
// column is used when embedding to reproduce the block's original
// indentation, so multi-line blocks keep their relative layout.
type Code struct {
	Text string
	Pos  Pos

	// Translate rewrites the text for the embedding context (symbol
	// references, escapes). It is supplied upstream; nil means the text
	// is embedded verbatim.
	Translate func(string) string
}

// Embedded returns the block's text ready for splicing into generated
// output.
func (c *Code) Embedded() string {
	if c.Translate != nil {
		return c.Translate(c.Text)
	}
	return c.Text
}
