package query

import (
	"fmt"
	"strings"
)

// ParseError reports where in the query string parsing failed, with a
// caret-pointed rendering of the offending column (§7).
type ParseError struct {
	Input  string
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	lines := strings.Split(e.Input, "\n")
	lineText := ""
	if e.Line-1 >= 0 && e.Line-1 < len(lines) {
		lineText = lines[e.Line-1]
	}
	caret := strings.Repeat(" ", max(0, e.Column-1)) + "^"
	return fmt.Sprintf("parse error at line %d, column %d: %s\n%s\n%s",
		e.Line, e.Column, e.Msg, lineText, caret)
}
