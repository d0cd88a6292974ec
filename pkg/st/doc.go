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

// Package st implements a lexer and recursive-descent parser for
// Smalltalk source text. It classifies source into tokens (Token) and
// assembles them into a tagged-variant abstract syntax tree (Node)
// resolving unary, binary, and keyword message precedence, cascades,
// blocks, array literals and expressions, returns, and assignments.
//
// The package performs no evaluation: it has no notion of a class or
// method dictionary, no image or bytecode format, and no macro layer.
// It is a syntactic front end only.
package st
