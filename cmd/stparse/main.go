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

// stparse is a thin driver over the st package: it reads a Smalltalk
// source file (or standard input) and dumps either its token stream
// or its parsed AST.
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pborman/getopt"

	"github.com/gosmalltalk/gst/pkg/st"
)

// stop is os.Exit, overridable by tests.
var stop = os.Exit

// exitIfError writes msg to standard error and exits with status 1.
func exitIfError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	stop(1)
}

const exitOK = 0
const exitErr = 1

func main() {
	mode := getopt.StringLong("mode", 'm', "ast", "dump mode: ast or tokens")
	maxErrors := getopt.IntLong("max-errors", 0, 0, "stop the lexer after this many errors (0 = unlimited)")
	debug := getopt.BoolLong("debug", 0, "trace lexer state transitions to stderr")
	getopt.SetParameters("[file]")
	getopt.Parse()

	args := getopt.Args()
	if len(args) > 1 {
		getopt.PrintUsage(os.Stderr)
		exitIfError("stparse: too many arguments")
		return
	}

	var source []byte
	var err error
	if len(args) == 1 && args[0] != "-" {
		source, err = ioutil.ReadFile(args[0])
	} else {
		source, err = ioutil.ReadAll(os.Stdin)
	}
	if err != nil {
		exitIfError(fmt.Sprintf("stparse: %v", err))
		return
	}

	opts := st.ParseOptions{MaxErrors: *maxErrors, Debug: *debug}

	switch *mode {
	case "tokens":
		if !dumpTokens(os.Stdout, string(source), opts) {
			stop(exitErr)
			return
		}
	case "ast":
		if !dumpAST(os.Stdout, string(source), opts) {
			stop(exitErr)
			return
		}
	default:
		exitIfError(fmt.Sprintf("stparse: unknown mode %q", *mode))
		return
	}
	stop(exitOK)
}
