package schema

import "fmt"

// ParseError reports a fragment that is not valid JSON or lacks a string
// title. The offending fragment is rejected; the document is unchanged.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schema fragment: %s: %v", e.Reason, e.Err)
	}
	return "schema fragment: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
