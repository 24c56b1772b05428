package uri

import "fmt"

// ParseError is the error type returned by DebugSplit and
// DebugSplitReference. The boolean-returning entry points (Split,
// SplitReference, JoinStrings) collapse any ParseError to a simple false;
// ParseError exists for callers that want to know *why* a grammar rule
// failed.
type ParseError struct {
	Message string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("uri: parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(err error) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{Message: err.Error(), Err: err}
}

// kindError is the internal error type produced by individual grammar
// rules. It carries enough context (an offending character or a free-text
// detail) to make ParseError.Error readable without forcing every
// terminal matcher to format its own string.
type kindError struct {
	message string
	char    byte
	hasChar bool
	details string
}

func (e *kindError) Error() string {
	switch {
	case e.hasChar:
		return fmt.Sprintf("%s '%c'", e.message, e.char)
	case e.details != "":
		return fmt.Sprintf("%s '%s'", e.message, e.details)
	default:
		return e.message
	}
}

var errGrammarMismatch = &kindError{message: "input does not match the URI grammar"}
