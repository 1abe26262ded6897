// Package eqtree implements a floating-point calculator that parses by
// splitting text at operators rather than by reading a token stream.
//
// An expression uses + - * / ^, parentheses, decimal numbers, and the
// constants π (also spelled pi) and e. Multiplication may be implicit
// between a number and a constant ("2π") and on either side of a bracketed
// group ("5(1+2)(3)"). A + or - after another operator, or at the start of
// an expression, is the sign of what follows it: "2*-3" and "-(1+2)" work.
//
// Parsing repeatedly divides the text at its weakest operator: the last + or
// - outside brackets, else the last * or /, else the last ^. All operators
// group to the left, so "2^3^2" is "(2^3)^2", and a sign belongs to the
// number it is written on, so "-2^2" is 4.
package eqtree
