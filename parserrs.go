package eqtree

import (
	"errors"
	"strconv"
)

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Open is true if the unmatched bracket is an open bracket.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating a character other than - in front of a
// bracketed group that runs to the end of its subexpression, as in +(1+2).
// It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the character in front of the bracket.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "invalid operator "+strconv.Quote(err.Operator)+" in front of bracket")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// SyntaxError is an error indicating a term that cannot be a value: an empty
// operand, an operator with nothing to apply to, or a constant run together
// with other characters. It implements InputError.
type SyntaxError struct {
	// Col is the position of the start of the term.
	Col int
	// Text is the term.
	Text string
}

func (err *SyntaxError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "missing operand")
	}
	return errpos(err.Col, "invalid syntax "+strconv.Quote(err.Text))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a term that is not a decimal number.
// It implements InputError.
type NumberError struct {
	// Col is the position of the start of the number.
	Col int
	// Text is the text that failed to parse.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes of the
	// original input up to and including the character that caused it.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*NumberError)(nil)
)

// ErrorKind classifies input errors.
type ErrorKind int8

const (
	// KindNone is the kind of nil and of errors that are not input errors.
	KindNone ErrorKind = iota
	// UnmatchedOpen is an open bracket that is never closed.
	UnmatchedOpen
	// UnmatchedClose is a close bracket with no open bracket.
	UnmatchedClose
	// InvalidOperatorBeforeBracket is an operator other than - in front of a
	// bracket spanning to the end of an expression.
	InvalidOperatorBeforeBracket
	// InvalidSyntax is a malformed term.
	InvalidSyntax
	// InvalidNumber is a term that fails to parse as a number.
	InvalidNumber
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case UnmatchedOpen:
		return "unmatched open bracket"
	case UnmatchedClose:
		return "unmatched close bracket"
	case InvalidOperatorBeforeBracket:
		return "invalid operator before bracket"
	case InvalidSyntax:
		return "invalid syntax"
	case InvalidNumber:
		return "invalid number"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Kind returns the kind of the first input error in err's chain.
func Kind(err error) ErrorKind {
	var (
		be *BracketError
		oe *OperatorError
		se *SyntaxError
		ne *NumberError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &be):
		if be.Open {
			return UnmatchedOpen
		}
		return UnmatchedClose
	case errors.As(err, &oe):
		return InvalidOperatorBeforeBracket
	case errors.As(err, &se):
		return InvalidSyntax
	case errors.As(err, &ne):
		return InvalidNumber
	default:
		return KindNone
	}
}
