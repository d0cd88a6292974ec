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

// NodeKind identifies which variant of Node is populated. The set is
// closed. ByteArrayLiteral and Method are part of the enum for
// completeness but are never produced by the parser in this package;
// there is no byte array literal surface syntax and no method/class
// layer here.
type NodeKind int

const (
	IntegerLiteral NodeKind = iota
	FloatLiteral
	ScaledLiteral
	CharLiteral
	StringLiteral
	SymbolLiteral
	ArrayLiteral
	ByteArrayLiteral
	Constant
	Variable
	AssignmentNode
	ReturnNode
	UnaryMessage
	BinaryMessage
	KeywordMessage
	Cascade
	Block
	ArrayExpression
	Method
)

var nodeKindNames = map[NodeKind]string{
	IntegerLiteral:   "IntegerLiteral",
	FloatLiteral:     "FloatLiteral",
	ScaledLiteral:    "ScaledLiteral",
	CharLiteral:      "CharLiteral",
	StringLiteral:    "StringLiteral",
	SymbolLiteral:    "SymbolLiteral",
	ArrayLiteral:     "ArrayLiteral",
	ByteArrayLiteral: "ByteArrayLiteral",
	Constant:         "Constant",
	Variable:         "Variable",
	AssignmentNode:   "Assignment",
	ReturnNode:       "Return",
	UnaryMessage:     "UnaryMessage",
	BinaryMessage:    "BinaryMessage",
	KeywordMessage:   "KeywordMessage",
	Cascade:          "Cascade",
	Block:            "Block",
	ArrayExpression:  "ArrayExpression",
	Method:           "Method",
}

func (k NodeKind) String() string {
	if s, ok := nodeKindNames[k]; ok {
		return s
	}
	return "NodeKind(unknown)"
}

// ConstantKind distinguishes the three pseudo-variable literal
// constants.
type ConstantKind int

const (
	ConstantNil ConstantKind = iota
	ConstantTrue
	ConstantFalse
)

func (k ConstantKind) String() string {
	switch k {
	case ConstantNil:
		return "nil"
	case ConstantTrue:
		return "true"
	case ConstantFalse:
		return "false"
	}
	return "?"
}

// Node is a single AST node. It is a tagged variant: Kind selects
// which of the fields below are meaningful. Consumers switch on Kind
// rather than relying on virtual dispatch.
type Node struct {
	Kind NodeKind
	Line int
	Col  int

	// IntegerLiteral
	IntValue int64
	// FloatLiteral, ScaledLiteral
	FloatValue float64
	// ScaledLiteral: number of digits following the 's'.
	Scale int32
	// CharLiteral
	CharValue byte
	// StringLiteral, SymbolLiteral: decoded text (quotes/escapes removed).
	StringValue string
	// ArrayLiteral, ArrayExpression
	Elements []*Node
	// ByteArrayLiteral (reserved; never populated by the parser)
	Bytes []byte
	// Constant
	ConstantValue ConstantKind
	// Variable, Assignment: the bare identifier name.
	Name string
	// Variable: true for self/super/thisContext.
	IsPseudo bool
	// Assignment
	Value *Node
	// Return
	Expression *Node
	// UnaryMessage, BinaryMessage, KeywordMessage, Cascade: shared
	// receiver. Nil for a message inside a Cascade's Messages list,
	// where the receiver is implicit.
	Receiver *Node
	// UnaryMessage, BinaryMessage, KeywordMessage: message selector.
	// For KeywordMessage this is the concatenation of all keyword
	// parts including their trailing colons (e.g. "at:put:").
	Selector string
	// BinaryMessage
	Argument *Node
	// KeywordMessage
	Arguments []*Node
	// Cascade: the messages sent to the shared receiver, each with a
	// nil Receiver field.
	Messages []*Node
	// Block, Method
	Parameters []string
	// Block, Method
	Statements []*Node
	// Method (reserved; never populated by the parser)
	IsPrimitive     bool
	PrimitiveNumber int32
}

func NewIntegerLiteral(value int64, line, col int) *Node {
	return &Node{Kind: IntegerLiteral, IntValue: value, Line: line, Col: col}
}

func NewFloatLiteral(value float64, line, col int) *Node {
	return &Node{Kind: FloatLiteral, FloatValue: value, Line: line, Col: col}
}

func NewScaledLiteral(value float64, scale int32, line, col int) *Node {
	return &Node{Kind: ScaledLiteral, FloatValue: value, Scale: scale, Line: line, Col: col}
}

func NewCharLiteral(value byte, line, col int) *Node {
	return &Node{Kind: CharLiteral, CharValue: value, Line: line, Col: col}
}

func NewStringLiteral(value string, line, col int) *Node {
	return &Node{Kind: StringLiteral, StringValue: value, Line: line, Col: col}
}

func NewSymbolLiteral(value string, line, col int) *Node {
	return &Node{Kind: SymbolLiteral, StringValue: value, Line: line, Col: col}
}

func NewArrayLiteral(elements []*Node, line, col int) *Node {
	return &Node{Kind: ArrayLiteral, Elements: elements, Line: line, Col: col}
}

func NewByteArrayLiteral(bytes []byte, line, col int) *Node {
	return &Node{Kind: ByteArrayLiteral, Bytes: bytes, Line: line, Col: col}
}

func NewConstant(value ConstantKind, line, col int) *Node {
	return &Node{Kind: Constant, ConstantValue: value, Line: line, Col: col}
}

func NewVariable(name string, isPseudo bool, line, col int) *Node {
	return &Node{Kind: Variable, Name: name, IsPseudo: isPseudo, Line: line, Col: col}
}

func NewAssignment(name string, value *Node, line, col int) *Node {
	return &Node{Kind: AssignmentNode, Name: name, Value: value, Line: line, Col: col}
}

func NewReturn(expression *Node, line, col int) *Node {
	return &Node{Kind: ReturnNode, Expression: expression, Line: line, Col: col}
}

func NewUnaryMessage(receiver *Node, selector string, line, col int) *Node {
	return &Node{Kind: UnaryMessage, Receiver: receiver, Selector: selector, Line: line, Col: col}
}

func NewBinaryMessage(receiver *Node, selector string, argument *Node, line, col int) *Node {
	return &Node{Kind: BinaryMessage, Receiver: receiver, Selector: selector, Argument: argument, Line: line, Col: col}
}

func NewKeywordMessage(receiver *Node, selector string, arguments []*Node, line, col int) *Node {
	return &Node{Kind: KeywordMessage, Receiver: receiver, Selector: selector, Arguments: arguments, Line: line, Col: col}
}

func NewCascade(receiver *Node, messages []*Node, line, col int) *Node {
	return &Node{Kind: Cascade, Receiver: receiver, Messages: messages, Line: line, Col: col}
}

func NewBlock(parameters []string, statements []*Node, line, col int) *Node {
	return &Node{Kind: Block, Parameters: parameters, Statements: statements, Line: line, Col: col}
}

func NewArrayExpression(expressions []*Node, line, col int) *Node {
	return &Node{Kind: ArrayExpression, Elements: expressions, Line: line, Col: col}
}

func NewMethod(parameters []string, statements []*Node, isPrimitive bool, primitiveNumber int32, line, col int) *Node {
	return &Node{
		Kind:            Method,
		Parameters:      parameters,
		Statements:      statements,
		IsPrimitive:     isPrimitive,
		PrimitiveNumber: primitiveNumber,
		Line:            line,
		Col:             col,
	}
}
