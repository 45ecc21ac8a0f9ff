// Package normalizeerr defines the error type returned by the normalize
// package when an input AST cannot be normalized.
package normalizeerr

import "fmt"

// Reason classifies why normalization failed.
type Reason int

const (
	// ReasonUnsupportedNode indicates the input AST contained a node kind
	// the normalizer does not know how to lower, e.g. destructuring
	// patterns, generators, or module syntax.
	ReasonUnsupportedNode Reason = iota
	// ReasonInvalidAssignmentTarget indicates an AssignmentExpression,
	// UpdateExpression, or ForInStatement bound to something other than
	// an Identifier or MemberExpression.
	ReasonInvalidAssignmentTarget
	// ReasonExposedFunctionExpression indicates a FunctionExpression
	// carrying the "exposed" attribute was reached; such a downward-exposed
	// function expression cannot be normalized.
	ReasonExposedFunctionExpression
	// ReasonUnresolvedLabel indicates an unlabeled break outside any loop
	// or switch, an unlabeled continue outside any loop, or a labeled
	// continue whose label is not known as a loop label. Labeled breaks
	// are passed through without this check.
	ReasonUnresolvedLabel
	// ReasonInvalidOptions indicates the supplied Options value combined
	// settings that cannot coexist.
	ReasonInvalidOptions
	// ReasonBadDeleteTarget indicates a delete expression applied to
	// something other than an Identifier or MemberExpression.
	ReasonBadDeleteTarget
	// ReasonMultipleCatchHandlers indicates a try statement with more
	// than one catch handler, or a guarded catch handler; this grammar
	// supports only a single, unguarded catch.
	ReasonMultipleCatchHandlers
	// ReasonForInMemberLHS indicates a for-in statement whose left-hand
	// side is a MemberExpression, which this normalizer does not lower.
	ReasonForInMemberLHS
	// ReasonReferenceErrorShadowed indicates reference_errors is enabled
	// but the identifier "ReferenceError" does not resolve to the global
	// scope at the point of an inlined throw.
	ReasonReferenceErrorShadowed
)

func (r Reason) String() string {
	switch r {
	case ReasonUnsupportedNode:
		return "unsupported node"
	case ReasonInvalidAssignmentTarget:
		return "invalid assignment target"
	case ReasonExposedFunctionExpression:
		return "exposed function expression"
	case ReasonUnresolvedLabel:
		return "unresolved label"
	case ReasonInvalidOptions:
		return "invalid options"
	case ReasonBadDeleteTarget:
		return "bad delete target"
	case ReasonMultipleCatchHandlers:
		return "multiple or guarded catch handlers"
	case ReasonForInMemberLHS:
		return "for-in with member expression left-hand side"
	case ReasonReferenceErrorShadowed:
		return "ReferenceError shadowed"
	default:
		return "unknown"
	}
}

// Error is returned by normalize.Normalize when the input AST cannot be
// rewritten into normal form. All normalization failures use this single
// type, distinguished by Reason.
type Error struct {
	Reason  Reason
	Message string
	Err     error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Reason, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the given reason and message.
func New(reason Reason, message string) *Error {
	return &Error{Reason: reason, Message: message}
}

// Newf creates an Error with the given reason and a formatted message.
func Newf(reason Reason, format string, args ...any) *Error {
	return &Error{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error with the given reason that wraps an underlying
// cause.
func Wrap(reason Reason, message string, err error) *Error {
	return &Error{Reason: reason, Message: message, Err: err}
}

// Is reports whether err is a *Error with the given reason.
func Is(err error, reason Reason) bool {
	var e *Error
	for err != nil {
		if ae, ok := err.(*Error); ok {
			e = ae
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return e != nil && e.Reason == reason
}
