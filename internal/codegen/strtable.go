package codegen

import "strings"

// wrapColumn is the maximum physical line length for the generated name
// table. The wrap check measures the line with the candidate element
// already appended, and every element carries the quoted-string framing
// (` "...",`), so the limit inherently reserves the framing characters of
// the element under test: a line may fill to exactly wrapColumn, and the
// element that would push it past starts the next line.
const wrapColumn = 75

// nullTerminator closes the generated name table; the target skeleton
// expects a null pointer sentinel after the last name.
const nullTerminator = "YY_NULLPTR"

// FormatStringArray serializes seq as the body of a C string array
// literal. Each string is double-quoted with backslash and double-quote
// escaped, elements are comma-separated, and lines wrap greedily so no
// physical line exceeds wrapColumn characters. The null terminator
// sentinel follows the final element.
func FormatStringArray(seq []string) string {
	var b strings.Builder
	line := ""
	for _, s := range seq {
		elem := ` "` + escapeCString(s) + `",`
		if line != "" && len(line)+len(elem) > wrapColumn {
			b.WriteString(line)
			b.WriteByte('\n')
			line = ""
		}
		line += elem
	}
	elem := " " + nullTerminator
	if len(line)+len(elem) > wrapColumn {
		b.WriteString(line)
		b.WriteByte('\n')
		line = ""
	}
	b.WriteString(line + elem)
	return b.String()
}

// escapeCString escapes backslash and double-quote for embedding in a C
// string literal.
func escapeCString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
