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

	"github.com/gosmalltalk/gst/pkg/st"
)

// dumpTokens prints the raw token stream produced by the lexer and
// reports whether lexing completed without error.
func dumpTokens(w io.Writer, source string, opts st.ParseOptions) bool {
	lex := st.NewLexer(source, opts)
	for {
		tok := lex.Next()
		if tok.Kind == st.Error {
			fmt.Fprintf(os.Stderr, "[line %d, column %d] Error: %s\n", tok.Line, tok.Col, tok.Text)
			continue
		}
		fmt.Fprintln(w, tok)
		if tok.Kind == st.EOF {
			break
		}
	}
	return !lex.HadError()
}
