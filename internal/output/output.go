// Package output implements the two external output formats (§6): a
// grep-like line format and a JSON array, both built on a shared per-kind
// rendering table rather than dynamic dispatch on the node's type (§9).
//
// Grounded on the teacher's internal/config.PrintResultCLI /
// internal/writer package (human vs. machine-readable result rendering),
// rebuilt around the universal ast.Node tagged union instead of a mutation
// result.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/harlowlabs/semq/internal/ast"
	"github.com/harlowlabs/semq/internal/evaluator"
)

// renderers maps a node kind to the function that turns it into the
// "formatted" half of a grep line (§6). Kinds with no entry fall back to
// their bare kind name, never a silent blank.
var renderers = map[ast.Kind]func(*ast.Node) string{
	ast.Function: renderFunction,
	ast.Class:    renderClass,
	ast.Call:     renderCall,
}

// Format renders n the way both output formats describe a single match's
// payload: "def name(args)" for a Function, "class name(base1, base2)" for
// a Class, "call -> <callee name>" for a Call. The universal ast.Node
// carries no byte-offset/source-span data, only the projected tree, so a
// Call renders its callee's immediate name rather than the verbatim
// call-expression text; see DESIGN.md, `internal/output`.
func Format(n *ast.Node) string {
	if r, ok := renderers[n.Kind()]; ok {
		return r(n)
	}
	return string(n.Kind())
}

func renderFunction(n *ast.Node) string {
	if n.Function == nil {
		return "def <unknown>()"
	}
	return fmt.Sprintf("def %s(%s)", n.Function.Name, renderArgs(n.Function.Args))
}

func renderArgs(a ast.Arguments) string {
	parts := append([]string(nil), a.Positional...)
	if a.HasVararg {
		parts = append(parts, "*"+a.Vararg)
	}
	if a.HasKwarg {
		parts = append(parts, "**"+a.Kwarg)
	}
	return strings.Join(parts, ", ")
}

func renderClass(n *ast.Node) string {
	if n.Class == nil {
		return "class <unknown>()"
	}
	return fmt.Sprintf("class %s(%s)", n.Class.Name, strings.Join(n.Class.BaseNames, ", "))
}

func renderCall(n *ast.Node) string {
	return fmt.Sprintf("call -> %s", ast.CalleeName(n))
}

// Formatter renders a stream of matches into w. Implementations own their
// own buffering and any trailing framing (JSON's closing bracket).
type Formatter interface {
	Write(m evaluator.Match, rel string, formatted string) error
	Close() error
}

// Grep writes "./<rel-path>:<line>:<formatted>" per match, one per line.
type Grep struct {
	w io.Writer
}

// NewGrep returns a Grep formatter writing to w.
func NewGrep(w io.Writer) *Grep { return &Grep{w: w} }

func (g *Grep) Write(m evaluator.Match, rel string, formatted string) error {
	_, err := fmt.Fprintf(g.w, "./%s:%d:%s\n", rel, m.Node.Line(), formatted)
	return err
}

func (g *Grep) Close() error { return nil }

// jsonRecord is one entry of the JSON array format (§6).
type jsonRecord struct {
	Filename string `json:"filename"`
	Lineno   int    `json:"lineno"`
	Result   string `json:"result"`
}

// JSON accumulates records and emits a single JSON array on Close.
type JSON struct {
	w       io.Writer
	records []jsonRecord
}

// NewJSON returns a JSON formatter writing to w.
func NewJSON(w io.Writer) *JSON { return &JSON{w: w} }

func (j *JSON) Write(m evaluator.Match, rel string, formatted string) error {
	j.records = append(j.records, jsonRecord{Filename: rel, Lineno: m.Node.Line(), Result: formatted})
	return nil
}

func (j *JSON) Close() error {
	if j.records == nil {
		j.records = []jsonRecord{}
	}
	enc := json.NewEncoder(j.w)
	return enc.Encode(j.records)
}
