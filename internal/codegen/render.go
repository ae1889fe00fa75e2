// Package codegen renders target-language parser source from an analyzed
// grammar: it executes pre-compiled skeleton templates against the
// analysis context, serializes the parser tables and enumerations, splices
// user action code with source-mapping directives, and resolves deferred
// line/file placeholders once the final text is assembled.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Maumagnaguagno/lrama/internal/automaton"
	"github.com/Maumagnaguagno/lrama/internal/grammar"
)

// Default skeleton names, resolved relative to Config.TemplateDir.
const (
	DefaultBodyTemplate   = "bison/yacc.c"
	DefaultHeaderTemplate = "bison/yacc.h"
)

// TraceFunc receives the operation name and elapsed wall time of one
// render. It is the renderer's only observability surface.
type TraceFunc func(op string, elapsed time.Duration)

// Config carries the renderer's construction-time configuration. The
// template directory is an explicit value; nothing is resolved relative
// to an installation path.
type Config struct {
	TemplateDir    string    // skeleton directory, required
	Template       string    // body skeleton name, DefaultBodyTemplate if ""
	HeaderTemplate string    // header skeleton name, DefaultHeaderTemplate if ""
	Trace          TraceFunc // optional timing hook
}

// Target names the output sinks of one render. The body is always
// written to Body. A header is generated iff HeaderPath is set; it is
// written to Header when provided, otherwise to a newly created file at
// HeaderPath.
type Target struct {
	Body     io.Writer
	BodyPath string

	Header     io.Writer
	HeaderPath string
}

// Renderer binds an analysis context and a grammar to the skeleton
// templates. It holds no mutable state across renders; a render either
// completes or fails without corrupting previously written sinks.
type Renderer struct {
	conf        Config
	ctx         *automaton.Context
	grammar     *grammar.Grammar
	grammarFile string // original grammar file path, for #line directives
}

// New creates a Renderer over ctx and g. grammarFile is the path of the
// original grammar source, embedded in source-mapping directives so a
// debugger can step back into user code.
func New(conf Config, ctx *automaton.Context, g *grammar.Grammar, grammarFile string) *Renderer {
	if conf.Template == "" {
		conf.Template = DefaultBodyTemplate
	}
	if conf.HeaderTemplate == "" {
		conf.HeaderTemplate = DefaultHeaderTemplate
	}
	return &Renderer{
		conf:        conf,
		ctx:         ctx,
		grammar:     g,
		grammarFile: grammarFile,
	}
}

// Render executes the body skeleton (and the header skeleton when the
// target requests one), resolves deferred placeholders against each
// output path, and writes the results to the target's sinks. The body
// and header are rendered independently; each is a distinct physical
// file with its own line numbering.
func (r *Renderer) Render(t *Target) (err error) {
	start := time.Now()
	defer func() {
		if r.conf.Trace != nil {
			r.conf.Trace("render", time.Since(start))
		}
	}()

	if t.Body == nil {
		return errors.New("codegen: render target has no body sink")
	}
	if err := r.renderFile(r.conf.Template, t.Body, t.BodyPath); err != nil {
		return err
	}

	if t.HeaderPath == "" {
		return nil
	}
	w := t.Header
	if w == nil {
		f, cerr := os.Create(t.HeaderPath)
		if cerr != nil {
			return fmt.Errorf("codegen: create header: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("codegen: close header: %w", cerr)
			}
		}()
		w = f
	}
	return r.renderFile(r.conf.HeaderTemplate, w, t.HeaderPath)
}

// renderFile runs both phases for one skeleton: execute it into a
// buffer, resolve the deferred placeholders against the output path,
// then write the finished text to w.
func (r *Renderer) renderFile(name string, w io.Writer, path string) error {
	tpl, err := loadTemplate(r.conf.TemplateDir, name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tpl.execute(&buf, r.bind); err != nil {
		return err
	}

	if _, err := io.WriteString(w, resolvePlaceholders(buf.String(), path)); err != nil {
		return fmt.Errorf("codegen: write %s: %w", path, err)
	}
	return nil
}

// bind resolves a skeleton directive to generated text. Every directive
// dispatches through this switch; an unknown name is an error rather
// than silently empty output.
func (r *Renderer) bind(name string) (string, error) {
	ctx := r.ctx
	switch name {
	case "final_state":
		return strconv.Itoa(ctx.FinalState), nil
	case "last":
		return strconv.Itoa(ctx.LastIndex), nil
	case "ntokens":
		return strconv.Itoa(ctx.TokenCount), nil
	case "nnts":
		return strconv.Itoa(ctx.NontermCount), nil
	case "nrules":
		return strconv.Itoa(ctx.RuleCount), nil
	case "nstates":
		return strconv.Itoa(ctx.StateCount), nil
	case "maxutok":
		return strconv.Itoa(ctx.MaxUserToken), nil
	case "pact_ninf":
		return strconv.Itoa(ctx.PactNinf), nil
	case "table_ninf":
		return strconv.Itoa(ctx.TableNinf), nil

	case "token_enum":
		return tokenEnum(ctx), nil
	case "symbol_enum":
		return symbolEnum(ctx), nil
	case "yytname":
		return FormatStringArray(ctx.SymbolNames()), nil

	case "pact_value_is_default":
		if ctx.Pact == nil || ctx.Pact.Len() == 0 {
			return "", ErrEmptyTable
		}
		return TableEquals(ctx.Pact, "yystate", ctx.PactNinf, "YYPACT_NINF"), nil
	case "table_value_is_error":
		if ctx.Table == nil || ctx.Table.Len() == 0 {
			return "", ErrEmptyTable
		}
		return TableEquals(ctx.Table, "yytable_value", ctx.TableNinf, "YYTABLE_NINF"), nil

	case "user_actions":
		return r.userActions()
	case "printer_actions":
		return r.printerActions()

	case "parse_param":
		return r.grammar.ParseParam, nil
	case "aux_code":
		if r.grammar.Aux == nil {
			return "", nil
		}
		return r.grammar.Aux.Embedded(), nil
	}

	if base, isType := strings.CutSuffix(name, "_type"); isType {
		if t, ok := r.table(base); ok {
			if t == nil || t.Len() == 0 {
				return "", ErrEmptyTable
			}
			kind, err := SelectIntegerType(t.Values())
			if err != nil {
				return "", err
			}
			return kind.CType(), nil
		}
	}
	if t, ok := r.table(name); ok {
		if t == nil || t.Len() == 0 {
			return "", ErrEmptyTable
		}
		return FormatIntegerArray(t.Values()), nil
	}

	return "", errors.New("unknown directive")
}

// table maps a directive base name to the context table it serializes.
// ok is false when the name does not refer to a table.
func (r *Renderer) table(name string) (t *automaton.Table, ok bool) {
	switch name {
	case "translate":
		return r.ctx.Translate, true
	case "rline":
		return r.ctx.Rline, true
	case "pact":
		return r.ctx.Pact, true
	case "defact":
		return r.ctx.Defact, true
	case "pgoto":
		return r.ctx.Pgoto, true
	case "defgoto":
		return r.ctx.Defgoto, true
	case "table":
		return r.ctx.Table, true
	case "check":
		return r.ctx.Check, true
	}
	return nil, false
}
