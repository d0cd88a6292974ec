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

// ParseOptions controls lexer and parser behavior. The zero value is
// the permissive default: no cap on lexical errors.
type ParseOptions struct {
	// MaxErrors stops the lexer after this many Error tokens have been
	// emitted, forcing EOF for the remainder of the input. Zero means
	// unlimited.
	MaxErrors int

	// Debug, when set, makes the lexer write a one-line trace of each
	// state transition to os.Stderr.
	Debug bool
}
