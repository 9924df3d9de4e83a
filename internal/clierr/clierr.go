// Package clierr provides a uniform error payload for both human and JSON
// CLI output, grounded on the teacher's internal/core.CLIError
// (internal/core/errorfmt.go in the example pack).
package clierr

import "encoding/json"

// Error codes for CLIError (§7). cmd/semq wraps its failures with
// ErrDiscovery and ErrUnknown; a query ParseError and engine errors reach
// main unwrapped.
const (
	ErrParseQuery         = "ERR_PARSE_QUERY"
	ErrNoSemanticIndexer  = "ERR_NO_SEMANTIC_INDEXER"
	ErrInvalidAssertion   = "ERR_INVALID_ASSERTION"
	ErrDiscovery          = "ERR_DISCOVERY"
	ErrUnknown            = "ERR_UNKNOWN"
)

// CLIError is a uniform error payload for both human and JSON output.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e CLIError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// JSON renders e as a single-line JSON object.
func (e CLIError) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Wrap builds a CLIError with code and message, carrying inner's text as
// Detail.
func Wrap(code, msg string, inner error) error {
	if inner == nil {
		return CLIError{Code: code, Message: msg}
	}
	return CLIError{Code: code, Message: msg, Detail: inner.Error()}
}
