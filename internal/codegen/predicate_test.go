package codegen

import (
	"testing"

	"github.com/Maumagnaguagno/lrama/internal/automaton"
)

func TestTableEquals(t *testing.T) {
	// Table with value range [0, 10].
	tab := automaton.NewTable([]int{0, 3, 10, 7})

	tests := []struct {
		name    string
		literal int
		want    string
	}{
		{
			name:    "literal above range folds to false",
			literal: 15,
			want:    "0",
		},
		{
			name:    "literal below range folds to false",
			literal: -1,
			want:    "0",
		},
		{
			name:    "literal inside range",
			literal: 5,
			want:    "((yystate) == YYSYM)",
		},
		{
			name:    "literal at min",
			literal: 0,
			want:    "((yystate) == YYSYM)",
		},
		{
			name:    "literal at max",
			literal: 10,
			want:    "((yystate) == YYSYM)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TableEquals(tab, "yystate", tt.literal, "YYSYM")
			if got != tt.want {
				t.Errorf("TableEquals(literal=%d) = %q, want %q", tt.literal, got, tt.want)
			}
		})
	}
}

func TestTableEqualsNegativeRange(t *testing.T) {
	tab := automaton.NewTable([]int{-45, -3})

	if got := TableEquals(tab, "yyn", -10, "NINF"); got != "((yyn) == NINF)" {
		t.Errorf("TableEquals() = %q, want equality expression", got)
	}
	if got := TableEquals(tab, "yyn", 0, "NINF"); got != "0" {
		t.Errorf("TableEquals() = %q, want constant false", got)
	}
}
