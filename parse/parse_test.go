package parse_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/ravndal/modalk/formula"
	"github.com/ravndal/modalk/parse"
)

func mustParse(t *testing.T, src string) *formula.Formula {
	t.Helper()
	f, err := parse.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return f
}

func TestParseAtom(t *testing.T) {
	f := mustParse(t, "p")
	if f.Kind() != formula.KindAtom || f.Name() != "p" {
		t.Fatalf("got %v, want atom p", f)
	}
}

func TestParsePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "modalk.parse")
	defer teardown()
	cases := []struct {
		src  string
		want string
	}{
		{"p & q | r", "p & q | r"},
		{"p | q & r", "p | q & r"},
		{"p -> q -> r", "p -> q -> r"},
		{"~p & q", "~p & q"},
		{"~(p & q)", "~(p & q)"},
		{"[]p -> <>p", "[]p -> <>p"},
		{"[]~p", "[]~p"},
		{"~[]p", "~[]p"},
		{"(p -> q) -> r", "(p -> q) -> r"},
	}
	for _, c := range cases {
		f := mustParse(t, c.src)
		if got := f.String(); got != c.want {
			t.Errorf("Parse(%q).String() = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestParseNaryFlattening(t *testing.T) {
	f := mustParse(t, "p & q & r")
	if f.Kind() != formula.KindAnd || len(f.Args()) != 3 {
		t.Fatalf("expected a single 3-ary And, got %v", f)
	}
}

func TestParseUnicodeModalOperators(t *testing.T) {
	f := mustParse(t, "□p -> ♢p")
	if got, want := f.String(), "[]p -> <>p"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseWhitespaceInsensitive(t *testing.T) {
	a := mustParse(t, "p&q->r")
	b := mustParse(t, "  p  &  q  ->  r  ")
	if !formula.Equals(a, b) {
		t.Fatalf("expected whitespace-insensitive parsing to agree")
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := parse.Parse("   ")
	var se *parse.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
}

func TestParseUnknownCharacter(t *testing.T) {
	_, err := parse.Parse("p @ q")
	var se *parse.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
}

func TestParseMissingCloseParen(t *testing.T) {
	_, err := parse.Parse("(p & q")
	var se *parse.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
}

func TestParseTrailingJunk(t *testing.T) {
	_, err := parse.Parse("p & q)")
	var se *parse.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
}

func TestParseDanglingOperator(t *testing.T) {
	_, err := parse.Parse("p &")
	var se *parse.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
}
