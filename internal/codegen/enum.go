package codegen

import (
	"fmt"
	"strings"

	"github.com/Maumagnaguagno/lrama/internal/automaton"
)

// Padding widths for the two generated enumerations. Assignments with a
// display comment are right-padded to the width before the comment.
const (
	tokenEnumWidth  = 30
	symbolEnumWidth = 40
)

// formatEnum renders a kind table as the body of a C enum. The entry
// whose id equals maxID is emitted without a trailing comma; all others
// get one. Entries with a display string carry it as a trailing block
// comment aligned at width.
func formatEnum(entries []automaton.KindEntry, maxID, width int) string {
	var b strings.Builder
	for _, e := range entries {
		assign := fmt.Sprintf("%s = %d", e.Name, e.ID)
		if e.ID != maxID {
			assign += ","
		}
		if e.Display != "" {
			fmt.Fprintf(&b, "    %-*s /* %s  */\n", width, assign, e.Display)
		} else {
			fmt.Fprintf(&b, "    %s\n", assign)
		}
	}
	return b.String()
}

// tokenEnum renders the token-kind enumeration. The trailing comma is
// suppressed for the declared maximum user token id.
func tokenEnum(ctx *automaton.Context) string {
	return formatEnum(ctx.Tokens, ctx.MaxUserToken, tokenEnumWidth)
}

// symbolEnum renders the symbol-kind enumeration. The kind table is
// ordered by id, so the last entry holds the maximum.
func symbolEnum(ctx *automaton.Context) string {
	maxID := 0
	if n := len(ctx.SymbolKinds); n > 0 {
		maxID = ctx.SymbolKinds[n-1].ID
	}
	return formatEnum(ctx.SymbolKinds, maxID, symbolEnumWidth)
}
