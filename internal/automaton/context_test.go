package automaton

import (
	"reflect"
	"testing"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		wantMin int
		wantMax int
	}{
		{
			name:    "mixed signs",
			values:  []int{3, -12, 0, 45, -1},
			wantMin: -12,
			wantMax: 45,
		},
		{
			name:    "single value",
			values:  []int{7},
			wantMin: 7,
			wantMax: 7,
		},
		{
			name:    "all negative",
			values:  []int{-5, -3, -9},
			wantMin: -9,
			wantMax: -3,
		},
		{
			name:    "empty",
			values:  nil,
			wantMin: 0,
			wantMax: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := NewTable(tt.values)
			if got := tab.Min(); got != tt.wantMin {
				t.Errorf("Min() = %d, want %d", got, tt.wantMin)
			}
			if got := tab.Max(); got != tt.wantMax {
				t.Errorf("Max() = %d, want %d", got, tt.wantMax)
			}
			if got := tab.Len(); got != len(tt.values) {
				t.Errorf("Len() = %d, want %d", got, len(tt.values))
			}
		})
	}
}

func TestSymbolNames(t *testing.T) {
	ctx := &Context{
		SymbolKinds: []KindEntry{
			{Name: "YYSYMBOL_YYEOF", ID: 0, Display: "\"end of file\""},
			{Name: "YYSYMBOL_YYerror", ID: 1, Display: "error"},
			{Name: "YYSYMBOL_NUM", ID: 3, Display: ""},
			{Name: "YYSYMBOL_expr", ID: 4, Display: "expr"},
		},
	}

	want := []string{"\"end of file\"", "error", "expr"}
	if got := ctx.SymbolNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("SymbolNames() = %q, want %q", got, want)
	}
}

func TestSymbolNamesEmpty(t *testing.T) {
	ctx := &Context{}
	if got := ctx.SymbolNames(); len(got) != 0 {
		t.Errorf("SymbolNames() = %q, want empty", got)
	}
}
