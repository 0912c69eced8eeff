package sqlrewrite

import (
	"fmt"
	"strings"
	"testing"
)

var rewriteTests = []struct {
	query     string
	want      string
	numParams int
}{
	{``, ``, 0},                // empty
	{`select 1`, `select 1`, 0},
	{`select ?`, `select $1`, 1},
	{`?x?`, `$1x$2`, 2},
	{
		`insert into invoice values (?, ?, ?)`,
		`insert into invoice values ($1, $2, $3)`,
		3,
	},
	{
		`update invoice set total = ? where id = ?`,
		`update invoice set total = $1 where id = $2`,
		2,
	},
	// placeholders inside quoted regions are not rewritten
	{`select '?' `, `select '?' `, 0},
	{`select "?" from t`, `select "?" from t`, 0},
	{`select '?', ?`, `select '?', $1`, 1},
	// the other quote character inside a region is ordinary text
	{`select 'mixed " quote', ?`, `select 'mixed " quote', $1`, 1},
	{`select "mixed ' quote", ?`, `select "mixed ' quote", $1`, 1},
	// doubled single quotes toggle the region twice and stay verbatim
	{`select 'it''s ?'`, `select 'it''s ?'`, 0},
	// an escaped quote does not toggle the quote state
	{`a\'b?`, `a\'b$1`, 1},
	{`select '\'' , ?`, `select '\'' , $1`, 1},
	// whitespace runs outside of quoted regions collapse to one space
	{"a   b\t\tc", `a b c`, 0},
	{"  select  1\n", ` select 1 `, 0},
	{`select 'a   b'`, `select 'a   b'`, 0},
	// whitespace collapsing resumes right after an escape pair
	{`a\ b  ?`, `a\ b $1`, 1},
	// trailing escape keeps the backslash
	{`select 1 \`, `select 1 \`, 0},
	// unbalanced quote: the remainder stays quoted and verbatim
	{`select 'unterminated ? and   spaces`, `select 'unterminated ? and   spaces`, 0},
}

func TestRewrite(t *testing.T) {
	for i, test := range rewriteTests {
		got, numParams := Rewrite(test.query)
		if got != test.want {
			t.Errorf("test %d: query %q got %q - want %q", i, test.query, got, test.want)
		}
		if numParams != test.numParams {
			t.Errorf("test %d: query %q got %d parameters - want %d", i, test.query, numParams, test.numParams)
		}
	}
}

// Markers carry strictly increasing indices starting at one.
func TestRewriteMarkerIndices(t *testing.T) {
	const n = 25

	query := strings.TrimSuffix(strings.Repeat("?,", n), ",")
	got, numParams := Rewrite(query)
	if numParams != n {
		t.Fatalf("got %d parameters - want %d", numParams, n)
	}
	var want strings.Builder
	for i := 1; i <= n; i++ {
		if i > 1 {
			want.WriteByte(',')
		}
		fmt.Fprintf(&want, "$%d", i)
	}
	if got != want.String() {
		t.Fatalf("got %s - want %s", got, want.String())
	}
}

// Quote state does not leak between calls.
func TestRewriteStateless(t *testing.T) {
	if _, numParams := Rewrite(`select 'open`); numParams != 0 {
		t.Fatal("parameter found inside unbalanced quote")
	}
	if got, numParams := Rewrite(`select ?`); got != `select $1` || numParams != 1 {
		t.Fatalf("got %q (%d parameters) - want %q (1 parameter)", got, numParams, `select $1`)
	}
}
