package template

import (
	"errors"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		body string
		args []string
		want string
	}{
		{
			name: "no tokens unchanged",
			body: "Just plain text",
			args: []string{"a", "b"},
			want: "Just plain text",
		},
		{
			name: "aggregate token",
			body: "Hello $ARGUMENTS",
			args: []string{"a", "b"},
			want: "Hello a b",
		},
		{
			name: "positional tokens",
			body: "$1 then $2",
			args: []string{"first", "second"},
			want: "first then second",
		},
		{
			name: "aggregate and positional together",
			body: "$ARGUMENTS: $1",
			args: []string{"x"},
			want: "x: x",
		},
		{
			name: "aggregate with no args",
			body: "Hello $ARGUMENTS",
			args: nil,
			want: "Hello",
		},
		{
			name: "repeated positional",
			body: "$1 and $1 again",
			args: []string{"x"},
			want: "x and x again",
		},
		{
			name: "two-digit token not clipped by one-digit",
			body: "$1 $10",
			args: []string{"one", "2", "3", "4", "5", "6", "7", "8", "9", "ten"},
			want: "one ten",
		},
		{
			name: "position out of range stays literal",
			body: "$1 keeps $5",
			args: []string{"x"},
			want: "x keeps $5",
		},
		{
			name: "zero is not a position",
			body: "$0 stays",
			args: []string{"x"},
			want: "$0 stays",
		},
		{
			name: "bare dollar stays literal",
			body: "cost: $ 5 and $x",
			args: []string{"a"},
			want: "cost: $ 5 and $x",
		},
		{
			name: "trailing dollar",
			body: "ends with $",
			args: nil,
			want: "ends with $",
		},
		{
			name: "whitespace-only body",
			body: "   \n\t  ",
			args: []string{"a"},
			want: "",
		},
		{
			name: "surrounding whitespace trimmed",
			body: "\n  $1  \n",
			args: []string{"x"},
			want: "x",
		},
		{
			name: "token inside substituted value not rescanned",
			body: "$1",
			args: []string{"$2", "boom"},
			want: "$2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := &Template{Type: Kind, Body: tt.body}
			if got := tmpl.Render(tt.args); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	tmpl := &Template{Type: Kind, Body: "Summarize $1 for $2"}
	first := tmpl.Render([]string{"the diff", "reviewers"})

	second := (&Template{Type: Kind, Body: first}).Render(nil)
	if second != first {
		t.Errorf("second pass = %q, want %q", second, first)
	}
}

func TestResolve(t *testing.T) {
	src := `---
type: chat-template
---
Explain $1 at a $2 level`

	got, err := Resolve(src, []string{"goroutines", "beginner"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := "Explain goroutines at a beginner level"; got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolve_NoPartialOutput(t *testing.T) {
	src := `---
type: other
---
Body with $1`

	got, err := Resolve(src, []string{"x"})
	if err == nil {
		t.Fatal("Resolve() expected error")
	}
	if got != "" {
		t.Errorf("Resolve() = %q, want empty on failure", got)
	}

	var kindErr *KindError
	if !errors.As(err, &kindErr) {
		t.Errorf("error = %v, want *KindError", err)
	}
}

func TestLeadingNumber(t *testing.T) {
	tests := []struct {
		input     string
		wantValue int
		wantWidth int
	}{
		{"1 rest", 1, 1},
		{"10", 10, 2},
		{"042", 42, 3},
		{"x", 0, 0},
		{"", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, width := leadingNumber(tt.input)
			if value != tt.wantValue || width != tt.wantWidth {
				t.Errorf("leadingNumber(%q) = (%d, %d), want (%d, %d)",
					tt.input, value, width, tt.wantValue, tt.wantWidth)
			}
		})
	}
}
