package codegen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// template is a pre-compiled skeleton: the static text of the target
// source file split around its directive markers. A skeleton is parsed
// once; execution walks the segments and injects generated text at each
// directive through an explicit binding, with no dynamic lookup.
type template struct {
	name string
	segs []segment
}

// segment is either verbatim skeleton text or a directive reference.
type segment struct {
	text      string // verbatim text, used when directive is ""
	directive string // directive name, "" for text segments
}

// Directive markers in skeleton source.
const (
	markerOpen  = "<%"
	markerClose = "%>"
)

// loadTemplate reads and compiles the named skeleton from dir.
func loadTemplate(dir, name string) (*template, error) {
	src, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("codegen: load skeleton: %w", err)
	}
	return parseTemplate(name, string(src))
}

// parseTemplate compiles skeleton source into segments.
func parseTemplate(name, src string) (*template, error) {
	t := &template{name: name}
	for len(src) > 0 {
		i := strings.Index(src, markerOpen)
		if i < 0 {
			t.segs = append(t.segs, segment{text: src})
			break
		}
		if i > 0 {
			t.segs = append(t.segs, segment{text: src[:i]})
		}
		src = src[i+len(markerOpen):]
		j := strings.Index(src, markerClose)
		if j < 0 {
			return nil, fmt.Errorf("codegen: skeleton %s: unterminated %s directive", name, markerOpen)
		}
		dir := strings.TrimSpace(src[:j])
		if !validDirectiveName(dir) {
			return nil, fmt.Errorf("codegen: skeleton %s: invalid directive %q", name, src[:j])
		}
		t.segs = append(t.segs, segment{directive: dir})
		src = src[j+len(markerClose):]
	}
	return t, nil
}

// execute renders the compiled skeleton to w, resolving each directive
// through bind. The deferred @oline@/@ofile@ tokens are not touched here;
// they survive into the fix-up pass.
func (t *template) execute(w io.Writer, bind func(name string) (string, error)) error {
	e := &emitter{w: w}
	for _, seg := range t.segs {
		if seg.directive == "" {
			e.emitRaw("%s", seg.text)
			continue
		}
		s, err := bind(seg.directive)
		if err != nil {
			return fmt.Errorf("codegen: skeleton %s: directive %q: %w", t.name, seg.directive, err)
		}
		e.emitRaw("%s", s)
	}
	if e.err != nil {
		return fmt.Errorf("codegen: skeleton %s: %w", t.name, e.err)
	}
	return nil
}

// validDirectiveName reports whether s is a well-formed directive name:
// non-empty, identifier characters only.
func validDirectiveName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z':
		case 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
