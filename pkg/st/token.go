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

import "fmt"

// Kind classifies a lexeme produced by the lexer. The set of kinds is
// closed; callers may safely switch over it without a default case.
type Kind int

const (
	EOF Kind = iota
	Error
	Identifier
	Keyword
	Integer
	Float
	Scaled
	Char
	String
	Symbol
	HashLeftParen
	Nil
	True
	False
	Self
	Super
	ThisContext
	BinarySelector
	Period
	Semicolon
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
	Caret
	Pipe
	Assignment
	Hash
	Dollar
	Colon
	Minus
	Plus
	Star
	Slash
	Less
	Greater
	Equal
	At
	Comma
	Underscore
	Tilde
	Percent
	Ampersand
	Question
	Exclamation
	Backslash
)

var kindNames = map[Kind]string{
	EOF:            "EOF",
	Error:          "Error",
	Identifier:     "Identifier",
	Keyword:        "Keyword",
	Integer:        "Integer",
	Float:          "Float",
	Scaled:         "Scaled",
	Char:           "Char",
	String:         "String",
	Symbol:         "Symbol",
	HashLeftParen:  "HashLeftParen",
	Nil:            "Nil",
	True:           "True",
	False:          "False",
	Self:           "Self",
	Super:          "Super",
	ThisContext:    "ThisContext",
	BinarySelector: "BinarySelector",
	Period:         "Period",
	Semicolon:      "Semicolon",
	LeftParen:      "LeftParen",
	RightParen:     "RightParen",
	LeftBracket:    "LeftBracket",
	RightBracket:   "RightBracket",
	LeftBrace:      "LeftBrace",
	RightBrace:     "RightBrace",
	Caret:          "Caret",
	Pipe:           "Pipe",
	Assignment:     "Assignment",
	Hash:           "Hash",
	Dollar:         "Dollar",
	Colon:          "Colon",
	Minus:          "Minus",
	Plus:           "Plus",
	Star:           "Star",
	Slash:          "Slash",
	Less:           "Less",
	Greater:        "Greater",
	Equal:          "Equal",
	At:             "At",
	Comma:          "Comma",
	Underscore:     "Underscore",
	Tilde:          "Tilde",
	Percent:        "Percent",
	Ampersand:      "Ampersand",
	Question:       "Question",
	Exclamation:    "Exclamation",
	Backslash:      "Backslash",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single classified lexeme with its source coordinates and,
// for literal kinds, the decoded value. Only the fields relevant to
// Kind are meaningful; the rest carry their zero value.
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int

	IntValue   int64
	FloatValue float64
	Scale      int32
	CharValue  byte
}

func (t *Token) String() string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%q) at %d:%d", t.Kind, t.Text, t.Line, t.Col)
}
