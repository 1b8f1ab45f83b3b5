// Package ast defines the expression tree built by the parser.
//
// Trees are immutable once built and every node owns its children
// exclusively: there is no sharing between trees and no cycles.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Literal is a constant value appearing in source.
type Literal interface {
	literal()
	String() string
}

// Integer is a 64-bit signed integer literal.
type Integer int64

func (Integer) literal() {}

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// BinaryOperator is an infix arithmetic operator.
type BinaryOperator uint8

const (
	Add BinaryOperator = iota
	Subtract
	Multiply
	Divide
)

// Precedence returns the binding strength of op. Higher binds tighter.
func (op BinaryOperator) Precedence() int {
	switch op {
	case Multiply, Divide:
		return 20
	default:
		return 10
	}
}

// Symbol returns the source spelling of op.
func (op BinaryOperator) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

func (op BinaryOperator) String() string {
	switch op {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	default:
		return fmt.Sprintf("BinaryOperator(%d)", uint8(op))
	}
}

// Expression is a node of the expression tree: *Constant or *Binary.
type Expression interface {
	expression()

	// String renders the expression in infix form with the minimum number
	// of parentheses needed to preserve its shape.
	String() string
}

// Constant is a literal expression.
//
// Example:
//
//	42
type Constant struct {
	Value Literal
}

var _ Expression = &Constant{}

func (*Constant) expression() {}

func (c *Constant) String() string { return c.Value.String() }

// Binary applies Op to Left and Right.
//
// Example:
//
//	40 + 2
type Binary struct {
	Left  Expression
	Right Expression
	Op    BinaryOperator
}

var _ Expression = &Binary{}

func (*Binary) expression() {}

func (b *Binary) String() string {
	var buf strings.Builder
	writeOperand(&buf, b.Left, b.Op.Precedence(), false)
	buf.WriteString(" ")
	buf.WriteString(b.Op.Symbol())
	buf.WriteString(" ")
	writeOperand(&buf, b.Right, b.Op.Precedence(), true)
	return buf.String()
}

// writeOperand parenthesizes operands that bind looser than their parent.
// Operators are left associative, so an equal-precedence right operand
// needs parentheses too.
func writeOperand(buf *strings.Builder, e Expression, parent int, right bool) {
	inner, ok := e.(*Binary)
	if !ok {
		buf.WriteString(e.String())
		return
	}

	p := inner.Op.Precedence()
	if p < parent || right && p == parent {
		buf.WriteString("(")
		buf.WriteString(inner.String())
		buf.WriteString(")")
		return
	}
	buf.WriteString(inner.String())
}

// NewConstant returns an integer constant.
func NewConstant(v int64) *Constant {
	return &Constant{Value: Integer(v)}
}

// NewBinary combines left and right with op.
func NewBinary(left, right Expression, op BinaryOperator) *Binary {
	return &Binary{Left: left, Right: right, Op: op}
}
