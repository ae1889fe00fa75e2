package codegen

import "testing"

func TestResolvePlaceholdersLineNumbers(t *testing.T) {
	// Five lines of nothing but line-number placeholders resolve to
	// consecutive integers starting at 2 (each is "current line + 1").
	in := "@oline@\n@oline@\n@oline@\n@oline@\n@oline@\n"
	want := "2\n3\n4\n5\n6\n"

	if got := resolvePlaceholders(in, "out.c"); got != want {
		t.Errorf("resolvePlaceholders() = %q, want %q", got, want)
	}
}

func TestResolvePlaceholders(t *testing.T) {
	tests := []struct {
		name string
		in   string
		path string
		want string
	}{
		{
			name: "file placeholder is quoted",
			in:   "#line @oline@ @ofile@\n",
			path: "parser.c",
			want: "#line 2 \"parser.c\"\n",
		},
		{
			name: "text without placeholders unchanged",
			in:   "static int yyparse(void);\n",
			path: "parser.c",
			want: "static int yyparse(void);\n",
		},
		{
			name: "placeholder on later line",
			in:   "a\nb\n#line @oline@ @ofile@\nd\n",
			path: "out.c",
			want: "a\nb\n#line 4 \"out.c\"\nd\n",
		},
		{
			name: "last line without trailing newline",
			in:   "x\n@oline@",
			path: "out.c",
			want: "x\n3",
		},
		{
			name: "multiple placeholders on one line",
			in:   "@oline@ @oline@\n",
			path: "out.c",
			want: "2 2\n",
		},
		{
			name: "path with backslash is escaped",
			in:   "@ofile@\n",
			path: `dir\out.c`,
			want: "\"dir\\\\out.c\"\n",
		},
		{
			name: "empty input",
			in:   "",
			path: "out.c",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolvePlaceholders(tt.in, tt.path); got != tt.want {
				t.Errorf("resolvePlaceholders(%q, %q) = %q, want %q", tt.in, tt.path, got, tt.want)
			}
		})
	}
}
