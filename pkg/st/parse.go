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
	"bytes"
	"fmt"
	"strings"
)

// parser is a recursive-descent parser over a single-token lookahead
// (current), with a small pushback stack used to backtrack out of a
// tentatively-parsed assignment target.
type parser struct {
	lex     *Lexer
	current *Token
	pushed  []*Token

	errout    bytes.Buffer
	hadError  bool
	panicMode bool
}

func newParser(source string, opts ParseOptions) *parser {
	p := &parser{lex: NewLexer(source, opts)}
	p.current = p.rawNext()
	return p
}

// Parse lexes and parses source, returning the program as a Block
// node whose Statements are the top-level statements. The second
// return value reports whether any lexical or syntactic error was
// encountered; diagnostics are written to err in the
// "[line L, column C] Error: message" format.
func Parse(source string, opts ParseOptions) (root *Node, err error) {
	p := newParser(source, opts)
	root = p.parseProgram()
	if p.hadError || p.lex.HadError() {
		return root, fmt.Errorf("%s", strings.TrimSpace(p.errout.String()))
	}
	return root, nil
}

func (p *parser) rawNext() *Token {
	if n := len(p.pushed); n > 0 {
		t := p.pushed[n-1]
		p.pushed = p.pushed[:n-1]
		return t
	}
	for {
		t := p.lex.Next()
		if t.Kind != Error {
			return t
		}
		p.errorAt(t, t.Text)
	}
}

func (p *parser) push(t *Token) { p.pushed = append(p.pushed, t) }

func (p *parser) advance() { p.current = p.rawNext() }

func (p *parser) check(k Kind) bool { return p.current.Kind == k }

func (p *parser) match(k Kind) bool {
	if !p.check(k) {
		return false
	}
	p.advance()
	return true
}

func (p *parser) consume(k Kind, msg string) {
	if p.check(k) {
		p.advance()
		return
	}
	p.errorAtCurrent(msg)
}

func (p *parser) errorAtCurrent(msg string) { p.errorAt(p.current, msg) }

func (p *parser) errorAt(t *Token, msg string) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.hadError = true
	fmt.Fprintf(&p.errout, "[line %d, column %d] Error: %s\n", t.Line, t.Col, msg)
}

// synchronize discards tokens up to and including the next period (or
// EOF), then clears panic mode so later errors are reported again.
func (p *parser) synchronize() {
	for !p.check(EOF) && !p.check(Period) {
		p.advance()
	}
	if p.check(Period) {
		p.advance()
	}
	p.panicMode = false
}

func (p *parser) parseProgram() *Node {
	line, col := p.current.Line, p.current.Col
	var stmts []*Node
	for p.match(Period) {
		p.panicMode = false
	}
	for !p.check(EOF) {
		stmts = append(stmts, p.statement())
		if p.match(Period) {
			p.panicMode = false
			for p.match(Period) {
			}
			continue
		}
		if !p.check(EOF) {
			p.errorAtCurrent("expected '.' after statement")
			p.synchronize()
		}
	}
	return NewBlock(nil, stmts, line, col)
}

func (p *parser) statement() *Node { return p.expression() }

func (p *parser) expression() *Node {
	if p.check(Caret) {
		tok := p.current
		p.advance()
		sub := p.expression()
		return NewReturn(sub, tok.Line, tok.Col)
	}
	return p.assignment()
}

func (p *parser) assignment() *Node {
	if p.check(Identifier) {
		ident := p.current
		p.advance()
		if p.check(Assignment) {
			p.advance()
			value := p.expression()
			return NewAssignment(ident.Text, value, ident.Line, ident.Col)
		}
		p.push(p.current)
		p.current = ident
	}
	return p.messageExpression()
}

func (p *parser) messageExpression() *Node {
	recv := p.primary()
	recv = p.unaryMessages(recv)
	recv = p.binaryMessages(recv)
	if p.check(Keyword) {
		recv = p.keywordMessage(recv)
	}
	if p.check(Semicolon) {
		recv = p.cascade(recv)
	}
	return recv
}

func (p *parser) unaryMessages(recv *Node) *Node {
	for p.check(Identifier) {
		tok := p.current
		p.advance()
		recv = NewUnaryMessage(recv, tok.Text, tok.Line, tok.Col)
	}
	return recv
}

func isBinaryClass(k Kind) bool {
	switch k {
	case BinarySelector, Plus, Minus, Star, Slash, Less, Greater, Equal,
		At, Comma, Tilde, Percent, Ampersand, Question, Exclamation, Backslash:
		return true
	}
	return false
}

func (p *parser) binaryMessages(recv *Node) *Node {
	for isBinaryClass(p.current.Kind) {
		tok := p.current
		p.advance()
		arg := p.primary()
		arg = p.unaryMessages(arg)
		recv = NewBinaryMessage(recv, tok.Text, arg, tok.Line, tok.Col)
	}
	return recv
}

// parseKeywordParts consumes a run of Keyword tokens, each followed by
// an argument parsed at unary-then-binary precedence, and returns the
// concatenated selector, the arguments, and the token that started the
// message (for coordinates).
func (p *parser) parseKeywordParts() (string, []*Node, *Token) {
	first := p.current
	var selector strings.Builder
	var args []*Node
	for p.check(Keyword) {
		kw := p.current
		p.advance()
		selector.WriteString(kw.Text)
		arg := p.primary()
		arg = p.unaryMessages(arg)
		arg = p.binaryMessages(arg)
		args = append(args, arg)
	}
	return selector.String(), args, first
}

func (p *parser) keywordMessage(recv *Node) *Node {
	selector, args, tok := p.parseKeywordParts()
	return NewKeywordMessage(recv, selector, args, tok.Line, tok.Col)
}

func (p *parser) cascade(recv *Node) *Node {
	receiver := recv.Receiver
	recv.Receiver = nil
	line, col := recv.Line, recv.Col
	messages := []*Node{recv}
	for p.match(Semicolon) {
		messages = append(messages, p.cascadeMessage())
	}
	return NewCascade(receiver, messages, line, col)
}

func (p *parser) cascadeMessage() *Node {
	tok := p.current
	if p.check(Identifier) {
		p.advance()
		return NewUnaryMessage(nil, tok.Text, tok.Line, tok.Col)
	}
	if isBinaryClass(p.current.Kind) {
		p.advance()
		arg := p.primary()
		arg = p.unaryMessages(arg)
		return NewBinaryMessage(nil, tok.Text, arg, tok.Line, tok.Col)
	}
	if p.check(Keyword) {
		selector, args, first := p.parseKeywordParts()
		return NewKeywordMessage(nil, selector, args, first.Line, first.Col)
	}
	p.errorAtCurrent("expected message selector in cascade")
	return NewUnaryMessage(nil, "", tok.Line, tok.Col)
}

func (p *parser) primary() *Node {
	tok := p.current
	switch {
	case p.match(LeftParen):
		expr := p.expression()
		p.consume(RightParen, "expected ')' after expression")
		return expr
	case p.match(LeftBracket):
		return p.block(tok)
	case p.match(LeftBrace):
		return p.arrayExpression(tok)
	case p.match(HashLeftParen):
		return p.arrayLiteral(tok)
	case p.match(Integer):
		return NewIntegerLiteral(tok.IntValue, tok.Line, tok.Col)
	case p.match(Float):
		return NewFloatLiteral(tok.FloatValue, tok.Line, tok.Col)
	case p.match(Scaled):
		return NewScaledLiteral(tok.FloatValue, tok.Scale, tok.Line, tok.Col)
	case p.match(Char):
		return NewCharLiteral(tok.CharValue, tok.Line, tok.Col)
	case p.match(String):
		return NewStringLiteral(decodeString(tok.Text), tok.Line, tok.Col)
	case p.match(Symbol):
		return NewSymbolLiteral(decodeSymbolText(tok.Text), tok.Line, tok.Col)
	case p.match(Nil):
		return NewConstant(ConstantNil, tok.Line, tok.Col)
	case p.match(True):
		return NewConstant(ConstantTrue, tok.Line, tok.Col)
	case p.match(False):
		return NewConstant(ConstantFalse, tok.Line, tok.Col)
	case p.match(Self):
		return NewVariable(tok.Text, true, tok.Line, tok.Col)
	case p.match(Super):
		return NewVariable(tok.Text, true, tok.Line, tok.Col)
	case p.match(ThisContext):
		return NewVariable(tok.Text, true, tok.Line, tok.Col)
	case p.match(Identifier):
		return NewVariable(tok.Text, false, tok.Line, tok.Col)
	}
	p.errorAtCurrent("expected expression")
	p.advance()
	return NewConstant(ConstantNil, tok.Line, tok.Col)
}

func (p *parser) block(tok *Token) *Node {
	var params []string
	if p.match(Colon) {
		for {
			name := p.current
			p.consume(Identifier, "expected parameter name after ':'")
			params = append(params, name.Text)
			if !p.match(Colon) {
				break
			}
		}
		p.consume(Pipe, "expected '|' after block parameters")
	}
	var stmts []*Node
	for !p.check(RightBracket) && !p.check(EOF) {
		stmts = append(stmts, p.statement())
		if !p.match(Period) {
			break
		}
		p.panicMode = false
	}
	p.consume(RightBracket, "expected ']' after block body")
	return NewBlock(params, stmts, tok.Line, tok.Col)
}

func (p *parser) arrayExpression(tok *Token) *Node {
	var exprs []*Node
	if !p.check(RightBrace) {
		for {
			exprs = append(exprs, p.expression())
			if !p.match(Period) {
				break
			}
			if p.check(RightBrace) {
				break
			}
		}
	}
	p.consume(RightBrace, "expected '}' after array expression")
	return NewArrayExpression(exprs, tok.Line, tok.Col)
}

func (p *parser) arrayLiteral(tok *Token) *Node {
	var elems []*Node
	for !p.check(RightParen) && !p.check(EOF) {
		elems = append(elems, p.arrayLiteralElement())
	}
	p.consume(RightParen, "expected ')' after array literal")
	return NewArrayLiteral(elems, tok.Line, tok.Col)
}

func (p *parser) arrayLiteralElement() *Node {
	t := p.current
	switch {
	case p.match(HashLeftParen):
		return p.arrayLiteral(t)
	case p.match(LeftParen):
		return p.arrayLiteral(t)
	case p.match(Integer):
		return NewIntegerLiteral(t.IntValue, t.Line, t.Col)
	case p.match(Float):
		return NewFloatLiteral(t.FloatValue, t.Line, t.Col)
	case p.match(Scaled):
		return NewScaledLiteral(t.FloatValue, t.Scale, t.Line, t.Col)
	case p.match(Char):
		return NewCharLiteral(t.CharValue, t.Line, t.Col)
	case p.match(String):
		return NewStringLiteral(decodeString(t.Text), t.Line, t.Col)
	case p.match(Symbol):
		return NewSymbolLiteral(decodeSymbolText(t.Text), t.Line, t.Col)
	case p.match(Nil):
		return NewConstant(ConstantNil, t.Line, t.Col)
	case p.match(True):
		return NewConstant(ConstantTrue, t.Line, t.Col)
	case p.match(False):
		return NewConstant(ConstantFalse, t.Line, t.Col)
	}
	if p.match(Keyword) {
		var selector strings.Builder
		selector.WriteString(t.Text)
		for p.check(Keyword) {
			selector.WriteString(p.current.Text)
			p.advance()
		}
		return NewSymbolLiteral(selector.String(), t.Line, t.Col)
	}
	if p.match(Identifier) || p.match(Self) || p.match(Super) || p.match(ThisContext) {
		return NewSymbolLiteral(t.Text, t.Line, t.Col)
	}
	p.errorAtCurrent("expected array literal element")
	p.advance()
	return NewConstant(ConstantNil, t.Line, t.Col)
}
