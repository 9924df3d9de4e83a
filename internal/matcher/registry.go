// Package matcher implements the finder registry (§4.3): a static table
// binding (selector, attr) pairs to predicates over ast.Node lists. The
// evaluator is the only caller; it has no notion of what any selector means
// beyond "look it up and call it".
//
// Grounded on the original's INDEXER_MAPS / Indexer._compare_by_attr
// (original_source/sona/search.py, original_source/sona/indexer.py): the
// same generic "narrow a candidate list by a predicate, raise NoNodeError
// on empty" shape, expressed as a Go function table instead of a dict of
// bound methods.
package matcher

import (
	"github.com/harlowlabs/semq/internal/ast"
	"github.com/harlowlabs/semq/internal/index"
	"github.com/harlowlabs/semq/internal/query"
)

// Finder narrows input (nil means "unconstrained: scan the whole index") to
// the subset of nodes satisfying assertion a. It returns NoNodeError if the
// result is empty.
type Finder func(ix *index.Index, input []*ast.Node, a query.Assertion) ([]*ast.Node, error)

type key struct {
	selector string
	attr     string
}

var registry = map[key]Finder{
	{"fn", "name"}:     findFunctionByName,
	{"fn", "argcount"}: findFunctionByArgcount,
	{"fn", "parent"}:   findFunctionByParent,
	{"fn", "call"}:     findFunctionByCall,
	{"cls", "name"}:    findClassByName,
	{"cls", "parent"}:  findClassByParent,
	{"cls", "method"}:  findClassMethod,
	{"var", "name"}:    findVarByName,
}

// Lookup returns the finder registered for (selector, attr), or
// NoSemanticIndexerError if none exists.
func Lookup(selector, attr string) (Finder, error) {
	f, ok := registry[key{selector, attr}]
	if !ok {
		return nil, &NoSemanticIndexerError{Selector: selector, Attr: attr}
	}
	return f, nil
}

// candidates returns input if non-nil, otherwise every node of kind from
// the index. This is the "node_list if given, else scan the index" rule
// common to every finder (§4.3).
func candidates(ix *index.Index, input []*ast.Node, kind ast.Kind) []*ast.Node {
	if input != nil {
		return input
	}
	return ix.Find(kind)
}

func noMatch(a query.Assertion) error {
	return &NoNodeError{Selector: a.Selector, Attr: a.Attr}
}

func findFunctionByName(ix *index.Index, input []*ast.Node, a query.Assertion) ([]*ast.Node, error) {
	var out []*ast.Node
	for _, n := range candidates(ix, input, ast.Function) {
		name, _ := n.Name()
		if matchString(a, name) {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, noMatch(a)
	}
	return out, nil
}

func findFunctionByArgcount(ix *index.Index, input []*ast.Node, a query.Assertion) ([]*ast.Node, error) {
	var out []*ast.Node
	for _, n := range candidates(ix, input, ast.Function) {
		if n.Function == nil {
			continue
		}
		if matchInt(a, n.Function.Args.Count()) {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, noMatch(a)
	}
	return out, nil
}

// findFunctionByParent walks each candidate's ancestor chain looking for
// one whose name satisfies the assertion; the walk stops at the first
// ancestor without a name, and that candidate does not match. Shorthand
// (no value) matches every candidate, per the generic "absent value means
// always match" rule; since every Function in a well-formed tree has at
// least its enclosing Module as an ancestor, this also satisfies "match all
// functions with at least one ancestor" (§9 open question).
func findFunctionByParent(ix *index.Index, input []*ast.Node, a query.Assertion) ([]*ast.Node, error) {
	var out []*ast.Node
	for _, n := range candidates(ix, input, ast.Function) {
		if !a.HasValue {
			out = append(out, n)
			continue
		}
		for _, anc := range ast.Ancestors(n) {
			name, ok := anc.Name()
			if !ok {
				break
			}
			if matchString(a, name) {
				out = append(out, n)
				break
			}
		}
	}
	if len(out) == 0 {
		return nil, noMatch(a)
	}
	return out, nil
}

func findFunctionByCall(ix *index.Index, input []*ast.Node, a query.Assertion) ([]*ast.Node, error) {
	var out []*ast.Node
	for _, n := range candidates(ix, input, ast.Call) {
		if matchString(a, ast.CalleeName(n)) {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, noMatch(a)
	}
	return out, nil
}

func findClassByName(ix *index.Index, input []*ast.Node, a query.Assertion) ([]*ast.Node, error) {
	var out []*ast.Node
	for _, n := range candidates(ix, input, ast.Class) {
		name, _ := n.Name()
		if matchString(a, name) {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, noMatch(a)
	}
	return out, nil
}

// findClassByParent preserves the reference's documented all-bases
// simplification: a class matches only if its base list is non-empty and
// *every* base's immediate name satisfies the assertion, so bases (X, Y)
// does not match cls:parent == "X" (§9 open question).
func findClassByParent(ix *index.Index, input []*ast.Node, a query.Assertion) ([]*ast.Node, error) {
	var out []*ast.Node
	for _, n := range candidates(ix, input, ast.Class) {
		if n.Class == nil {
			continue
		}
		if !a.HasValue {
			out = append(out, n)
			continue
		}
		if len(n.Class.BaseNames) == 0 {
			continue
		}
		all := true
		for _, base := range n.Class.BaseNames {
			if !matchString(a, base) {
				all = false
				break
			}
		}
		if all {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, noMatch(a)
	}
	return out, nil
}

func findClassMethod(ix *index.Index, input []*ast.Node, a query.Assertion) ([]*ast.Node, error) {
	var out []*ast.Node
	for _, n := range candidates(ix, input, ast.Function) {
		if !a.HasValue {
			out = append(out, n)
			continue
		}
		for _, anc := range ast.Ancestors(n) {
			if anc.Kind() != ast.Class {
				continue
			}
			name, _ := anc.Name()
			if matchString(a, name) {
				out = append(out, n)
			}
			break
		}
	}
	if len(out) == 0 {
		return nil, noMatch(a)
	}
	return out, nil
}

// findVarByName excludes AssignTarget nodes whose parent is an Arguments
// node, i.e. parameter names, which the universal tree also represents as
// assignment-like bindings (§4.3). Shorthand (no value) matches every
// candidate, parameters included, like every other finder.
func findVarByName(ix *index.Index, input []*ast.Node, a query.Assertion) ([]*ast.Node, error) {
	var out []*ast.Node
	for _, n := range candidates(ix, input, ast.AssignTarget) {
		if !a.HasValue {
			out = append(out, n)
			continue
		}
		if p := n.Parent(); p != nil && p.Kind() == ast.Arguments {
			continue
		}
		name, _ := n.Name()
		if matchString(a, name) {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, noMatch(a)
	}
	return out, nil
}
