package grammar

import (
	"strings"
	"testing"
)

func TestCodeEmbedded(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want string
	}{
		{
			name: "verbatim without translator",
			code: Code{Text: "{ $$ = $1; }", Pos: NewPos(3, 9)},
			want: "{ $$ = $1; }",
		},
		{
			name: "translator applied",
			code: Code{
				Text: "{ $$ = $1; }",
				Pos:  NewPos(3, 9),
				Translate: func(s string) string {
					s = strings.ReplaceAll(s, "$$", "yyval")
					return strings.ReplaceAll(s, "$1", "yyvsp[0]")
				},
			},
			want: "{ yyval = yyvsp[0]; }",
		},
		{
			name: "empty text",
			code: Code{Text: "", Pos: NewPos(1, 1)},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.Embedded(); got != tt.want {
				t.Errorf("Code.Embedded() = %q, want %q", got, tt.want)
			}
		})
	}
}
