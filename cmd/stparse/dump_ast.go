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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gosmalltalk/gst/pkg/indent"
	"github.com/gosmalltalk/gst/pkg/st"
)

// dumpAST parses source and writes an indented tree dump of the
// resulting AST, reporting whether parsing completed without error.
func dumpAST(w io.Writer, source string, opts st.ParseOptions) bool {
	root, err := st.Parse(source, opts)
	if root != nil {
		writeNode(w, root)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	return true
}

func writeNode(w io.Writer, n *st.Node) {
	if n == nil {
		fmt.Fprintln(w, "<nil>")
		return
	}
	fmt.Fprintln(w, describe(n))

	child := indent.NewWriter(w, "  ")
	switch n.Kind {
	case st.AssignmentNode:
		writeNode(child, n.Value)
	case st.ReturnNode:
		writeNode(child, n.Expression)
	case st.UnaryMessage:
		writeNode(child, n.Receiver)
	case st.BinaryMessage:
		writeNode(child, n.Receiver)
		writeNode(child, n.Argument)
	case st.KeywordMessage:
		writeNode(child, n.Receiver)
		for _, a := range n.Arguments {
			writeNode(child, a)
		}
	case st.Cascade:
		writeNode(child, n.Receiver)
		for _, m := range n.Messages {
			writeNode(child, m)
		}
	case st.Block, st.Method:
		for _, s := range n.Statements {
			writeNode(child, s)
		}
	case st.ArrayLiteral, st.ArrayExpression:
		for _, e := range n.Elements {
			writeNode(child, e)
		}
	}
}

func describe(n *st.Node) string {
	switch n.Kind {
	case st.IntegerLiteral:
		return fmt.Sprintf("IntegerLiteral(%d)", n.IntValue)
	case st.FloatLiteral:
		return fmt.Sprintf("FloatLiteral(%g)", n.FloatValue)
	case st.ScaledLiteral:
		return fmt.Sprintf("ScaledLiteral(%g scale=%d)", n.FloatValue, n.Scale)
	case st.CharLiteral:
		return fmt.Sprintf("CharLiteral(%q)", n.CharValue)
	case st.StringLiteral:
		return fmt.Sprintf("StringLiteral(%q)", n.StringValue)
	case st.SymbolLiteral:
		return fmt.Sprintf("SymbolLiteral(#%s)", n.StringValue)
	case st.Constant:
		return fmt.Sprintf("Constant(%s)", n.ConstantValue)
	case st.Variable:
		return fmt.Sprintf("Variable(%s)", n.Name)
	case st.AssignmentNode:
		return fmt.Sprintf("Assignment(%s)", n.Name)
	case st.UnaryMessage, st.BinaryMessage, st.KeywordMessage:
		return fmt.Sprintf("%s(%s)", n.Kind, n.Selector)
	case st.Block:
		return fmt.Sprintf("Block(params=%v)", n.Parameters)
	}
	return n.Kind.String()
}
