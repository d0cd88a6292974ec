// Copyright 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package st

import (
	"io"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func line() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

func allTokens(t *testing.T, in string) []*Token {
	t.Helper()
	lex := NewLexer(in, ParseOptions{})
	var toks []*Token
	for {
		tok := lex.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return toks
}

var tokenCmpOpts = cmp.Options{
	cmpopts.IgnoreFields(Token{}, "Line", "Col"),
}

func TestLex(t *testing.T) {
	tests := []struct {
		line int
		in   string
		want []*Token
	}{
		{line(), "", []*Token{{Kind: EOF}}},
		{line(), "  \t\n  ", []*Token{{Kind: EOF}}},
		{line(), `"a comment" foo`, []*Token{{Kind: Identifier, Text: "foo"}, {Kind: EOF}}},
		{line(), "foo bar123 _ignore", []*Token{
			{Kind: Identifier, Text: "foo"},
			{Kind: Identifier, Text: "bar123"},
			{Kind: Identifier, Text: "_ignore"},
			{Kind: EOF},
		}},
		{line(), "at:put:", []*Token{
			{Kind: Keyword, Text: "at:"},
			{Kind: Keyword, Text: "put:"},
			{Kind: EOF},
		}},
		{line(), "nil true false self super thisContext", []*Token{
			{Kind: Nil, Text: "nil"},
			{Kind: True, Text: "true"},
			{Kind: False, Text: "false"},
			{Kind: Self, Text: "self"},
			{Kind: Super, Text: "super"},
			{Kind: ThisContext, Text: "thisContext"},
			{Kind: EOF},
		}},
		{line(), "42", []*Token{{Kind: Integer, Text: "42", IntValue: 42}, {Kind: EOF}}},
		{line(), "-7", []*Token{{Kind: Integer, Text: "-7", IntValue: -7}, {Kind: EOF}}},
		{line(), "16rFF", []*Token{{Kind: Integer, Text: "16rFF", IntValue: 255}, {Kind: EOF}}},
		{line(), "-16rFF", []*Token{{Kind: Integer, Text: "-16rFF", IntValue: -255}, {Kind: EOF}}},
		{line(), "2r101", []*Token{{Kind: Integer, Text: "2r101", IntValue: 5}, {Kind: EOF}}},
		{line(), "3.25", []*Token{{Kind: Float, Text: "3.25", FloatValue: 3.25}, {Kind: EOF}}},
		{line(), "1.5e2", []*Token{{Kind: Float, Text: "1.5e2", FloatValue: 150}, {Kind: EOF}}},
		{line(), "3d2", []*Token{{Kind: Float, Text: "3d2", FloatValue: 300}, {Kind: EOF}}},
		{line(), "1.23s2", []*Token{{Kind: Scaled, Text: "1.23s2", FloatValue: 1.23, Scale: 1}, {Kind: EOF}}},
		{line(), "1.23s", []*Token{{Kind: Scaled, Text: "1.23s", FloatValue: 1.23, Scale: 0}, {Kind: EOF}}},
		{line(), "1.5s42", []*Token{{Kind: Scaled, Text: "1.5s42", FloatValue: 1.5, Scale: 2}, {Kind: EOF}}},
		{line(), "3.", []*Token{{Kind: Integer, Text: "3", IntValue: 3}, {Kind: Period, Text: "."}, {Kind: EOF}}},
		{line(), "'hello'", []*Token{{Kind: String, Text: "'hello'"}, {Kind: EOF}}},
		{line(), "'it''s'", []*Token{{Kind: String, Text: "'it''s'"}, {Kind: EOF}}},
		{line(), "$a", []*Token{{Kind: Char, Text: "$a", CharValue: 'a'}, {Kind: EOF}}},
		{line(), "$ ", []*Token{{Kind: Char, Text: "$ ", CharValue: ' '}, {Kind: EOF}}},
		{line(), "#foo", []*Token{{Kind: Symbol, Text: "#foo"}, {Kind: EOF}}},
		{line(), "#at:put:", []*Token{{Kind: Symbol, Text: "#at:put:"}, {Kind: EOF}}},
		{line(), "#+", []*Token{{Kind: Symbol, Text: "#+"}, {Kind: EOF}}},
		{line(), "#<=", []*Token{{Kind: Symbol, Text: "#<="}, {Kind: EOF}}},
		{line(), "#'a sym'", []*Token{{Kind: Symbol, Text: "#'a sym'"}, {Kind: EOF}}},
		{line(), "#(1 2 3)", []*Token{
			{Kind: HashLeftParen, Text: "#("},
			{Kind: Integer, Text: "1", IntValue: 1},
			{Kind: Integer, Text: "2", IntValue: 2},
			{Kind: Integer, Text: "3", IntValue: 3},
			{Kind: RightParen, Text: ")"},
			{Kind: EOF},
		}},
		{line(), ":=", []*Token{{Kind: Assignment, Text: ":="}, {Kind: EOF}}},
		{line(), "<=", []*Token{{Kind: Less, Text: "<="}, {Kind: EOF}}},
		{line(), "~=", []*Token{{Kind: BinarySelector, Text: "~="}, {Kind: EOF}}},
		{line(), "a+b", []*Token{
			{Kind: Identifier, Text: "a"},
			{Kind: Plus, Text: "+"},
			{Kind: Identifier, Text: "b"},
			{Kind: EOF},
		}},
		{line(), "[:x | x]", []*Token{
			{Kind: LeftBracket, Text: "["},
			{Kind: Colon, Text: ":"},
			{Kind: Identifier, Text: "x"},
			{Kind: Pipe, Text: "|"},
			{Kind: Identifier, Text: "x"},
			{Kind: RightBracket, Text: "]"},
			{Kind: EOF},
		}},
	}

	for _, tt := range tests {
		got := allTokens(t, tt.in)
		if diff := cmp.Diff(tt.want, got, tokenCmpOpts); diff != "" {
			t.Errorf("line %d: Lex(%q) mismatch (-want +got):\n%s", tt.line, tt.in, diff)
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		line    int
		in      string
		wantErr string
	}{
		{line(), "'unterminated", "unterminated string"},
		{line(), `"unterminated`, "unterminated comment"},
		{line(), "9rFF", "invalid radix literal"},
		{line(), "2r9", "invalid radix literal"},
		{line(), "$", "expected character after $"},
		{line(), "#\"", "invalid character after #"},
		{line(), "1.5e", "missing digits after exponent"},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.in, ParseOptions{})
		var msg string
		for {
			tok := lex.Next()
			if tok.Kind == Error {
				msg = tok.Text
			}
			if tok.Kind == EOF {
				break
			}
		}
		if !lex.HadError() {
			t.Errorf("line %d: Lex(%q): HadError() = false, want true", tt.line, tt.in)
		}
		if msg != tt.wantErr {
			t.Errorf("line %d: Lex(%q): error = %q, want %q", tt.line, tt.in, msg, tt.wantErr)
		}
	}
}

func TestLexMaxErrors(t *testing.T) {
	lex := NewLexer("#\" #\" foo", ParseOptions{MaxErrors: 2})
	errs := 0
	var sawFoo bool
	for {
		tok := lex.Next()
		if tok.Kind == Error {
			errs++
		}
		if tok.Kind == Identifier && tok.Text == "foo" {
			sawFoo = true
		}
		if tok.Kind == EOF {
			break
		}
	}
	if errs < 2 {
		t.Fatalf("got %d errors, want at least 2", errs)
	}
	if sawFoo {
		t.Errorf("lexing continued past MaxErrors cutoff and produced %q", "foo")
	}
}

func TestLexDebugTrace(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	lex := NewLexer("1 + 2.", ParseOptions{Debug: true})
	for {
		if lex.Next().Kind == EOF {
			break
		}
	}
	w.Close()

	var buf strings.Builder
	io.Copy(&buf, r)
	out := buf.String()
	if !strings.Contains(out, "lexGround") {
		t.Errorf("debug trace missing lexGround state, got:\n%s", out)
	}
}
