package codegen

import (
	"fmt"
	"strings"

	"github.com/Maumagnaguagno/lrama/internal/grammar"
)

// userActions renders the reduction-action cases: one case per rule that
// carries an action block, in ascending rule-id order. Rules without an
// action contribute nothing; a grammar with no actions yields the empty
// string and the skeleton's switch wrapper stands alone.
func (r *Renderer) userActions() (string, error) {
	var b strings.Builder
	for _, rule := range r.grammar.Rules {
		if rule.Action == nil {
			continue
		}
		label := fmt.Sprintf("case %d:", rule.ID+1)
		if err := r.embedCase(&b, "  ", "    ", label, rule.Comment, rule.Action); err != nil {
			return "", fmt.Errorf("rule %d: %w", rule.ID, err)
		}
	}
	return b.String(), nil
}

// printerActions renders the value-printer cases: one case per symbol
// that carries a printer block, in declaration order.
func (r *Renderer) printerActions() (string, error) {
	var b strings.Builder
	for _, sym := range r.grammar.Symbols {
		if sym.Printer == nil {
			continue
		}
		label := fmt.Sprintf("case %s:", sym.EnumName)
		if err := r.embedCase(&b, "    ", "        ", label, sym.Comment, sym.Printer); err != nil {
			return "", fmt.Errorf("symbol %s: %w", sym.EnumName, err)
		}
	}
	return b.String(), nil
}

// embedCase splices one user code block into b: the case header with its
// comment, a source-mapping directive pointing back at the grammar file,
// the block text left-padded by column-1 spaces so multi-line blocks keep
// their original indentation, the break marker, and a second directive
// whose line number and file name stay deferred until the final text is
// assembled (the fix-up pass resolves them).
func (r *Renderer) embedCase(b *strings.Builder, caseIndent, breakIndent, label, comment string, code *grammar.Code) error {
	if !code.Pos.IsValid() {
		return fmt.Errorf("invalid code block position %s", code.Pos)
	}

	spaces := strings.Repeat(" ", code.Pos.Col()-1)

	e := &emitter{w: b}
	e.emit("%s%s /* %s  */", caseIndent, label, comment)
	e.emit("#line %d \"%s\"", code.Pos.Line(), escapeCString(r.grammarFile))
	e.emit("%s%s", spaces, code.Embedded())
	e.emit("#line %s %s", olinePlaceholder, ofilePlaceholder)
	e.emit("%sbreak;", breakIndent)
	e.emitLine()
	return e.err
}
