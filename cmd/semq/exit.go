package main

import "github.com/harlowlabs/semq/internal/query"

// Exit codes per §6: 0 on success, even with zero matches; non-zero on a
// query parse error; 1 for every other engine-aborting failure.
const (
	exitOK         = 0
	exitGenericErr = 1
	exitParseErr   = 2
)

func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}
	if _, ok := err.(*query.ParseError); ok {
		return exitParseErr
	}
	return exitGenericErr
}
