package matcher

import "fmt"

// NoSemanticIndexerError means an assertion's (selector, attr) pair has no
// registered finder (§4.5). It is a user error: surfaced, not swallowed.
type NoSemanticIndexerError struct {
	Selector string
	Attr     string
}

func (e *NoSemanticIndexerError) Error() string {
	return fmt.Sprintf("%s:%s has no registered finder", e.Selector, e.Attr)
}

// InvalidAssertionError means an Assertion's tuple length fell outside {2,
// 4}. The parser never produces one; this only fires if a caller builds a
// query.Assertion by hand and gets it wrong, so its presence indicates
// parser/evaluator drift rather than bad user input (§7).
type InvalidAssertionError struct {
	Len int
}

func (e *InvalidAssertionError) Error() string {
	return fmt.Sprintf("assertion has %d elements, expected 2 or 4", e.Len)
}

// NoNodeError means a finder's predicate matched nothing in its input list.
// Recoverable: the evaluator catches it and treats the owning expression as
// yielding zero nodes (§4.5, §7).
type NoNodeError struct {
	Selector string
	Attr     string
}

func (e *NoNodeError) Error() string {
	return fmt.Sprintf("no node found for %s:%s", e.Selector, e.Attr)
}
