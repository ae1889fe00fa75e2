package codegen

import (
	"strconv"
	"strings"
)

// Deferred placeholder tokens. Phase 1 leaves them in the rendered text,
// whether they came from a skeleton or from an embedded code section;
// the fix-up pass resolves them against the assembled output.
const (
	olinePlaceholder = "@oline@" // next physical line number in the generated file
	ofilePlaceholder = "@ofile@" // generated file path, quoted
)

// resolvePlaceholders runs the fix-up pass over fully rendered text:
// every olinePlaceholder on physical line i (1-based) becomes i+1, and
// every ofilePlaceholder becomes the quoted output path. Body and header
// are resolved independently, each against its own path, since they are
// distinct files with independent line numbering.
func resolvePlaceholders(text, path string) string {
	quoted := `"` + escapeCString(path) + `"`

	var b strings.Builder
	b.Grow(len(text))
	rest := text
	for lineno := 1; len(rest) > 0; lineno++ {
		line := rest
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i+1], rest[i+1:]
		} else {
			rest = ""
		}
		if strings.Contains(line, olinePlaceholder) {
			line = strings.ReplaceAll(line, olinePlaceholder, strconv.Itoa(lineno+1))
		}
		if strings.Contains(line, ofilePlaceholder) {
			line = strings.ReplaceAll(line, ofilePlaceholder, quoted)
		}
		b.WriteString(line)
	}
	return b.String()
}
