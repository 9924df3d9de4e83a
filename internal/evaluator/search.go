// Package evaluator drives query evaluation against a single file's AST
// (the Assertion Evaluator, §4.4) and across a whole file set (the Search
// Engine, §4.5). Neither half knows anything about any particular host
// language: both operate purely on the universal ast.Node tree a provider
// already built and the static finder table in internal/matcher.
//
// Grounded on the teacher's UniversalEvaluator (internal/evaluator in the
// example pack): the same dependency-injection shape — one evaluator
// implementation, no per-language branching — but rebuilt against a
// pre-built universal AST and a finder registry instead of a tree-sitter
// query string translated per provider.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/harlowlabs/semq/internal/ast"
	"github.com/harlowlabs/semq/internal/index"
	"github.com/harlowlabs/semq/internal/matcher"
	"github.com/harlowlabs/semq/internal/provider"
	"github.com/harlowlabs/semq/internal/query"
)

// EvaluateExpression applies expr's assertions to ix in order, each one
// refining the previous result (§4.5 step 2b). A NoNodeError from any
// assertion collapses the expression to zero nodes: the comma operator is
// intersection, so a failed narrowing step invalidates everything collected
// so far. Any other error (NoSemanticIndexerError, InvalidAssertionError)
// propagates and aborts evaluation entirely.
func EvaluateExpression(ix *index.Index, expr query.Expression) ([]*ast.Node, error) {
	var current []*ast.Node
	matched := false // current is meaningfully set vs. still "unconstrained"

	for _, a := range expr {
		if a.Len() != 2 && a.Len() != 4 {
			return nil, &matcher.InvalidAssertionError{Len: a.Len()}
		}
		finder, err := matcher.Lookup(a.Selector, a.Attr)
		if err != nil {
			return nil, err
		}

		var input []*ast.Node
		if matched {
			input = current
		}

		result, err := finder(ix, input, a)
		if err != nil {
			if _, ok := err.(*matcher.NoNodeError); ok {
				return nil, nil
			}
			return nil, err
		}
		current = result
		matched = true
	}
	return current, nil
}

// EvaluateTree applies every expression in t against ix and unions their
// results (§4.5 step 3), deduplicating by node identity in case two
// expressions overlap.
func EvaluateTree(ix *index.Index, t query.Tree) ([]*ast.Node, error) {
	seen := make(map[*ast.Node]bool)
	var out []*ast.Node
	for _, expr := range t {
		matches, err := EvaluateExpression(ix, expr)
		if err != nil {
			return nil, err
		}
		for _, n := range matches {
			if seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out, nil
}

// Match pairs a matched node with the file it came from, the unit the
// Search Engine yields.
type Match struct {
	Path string
	Node *ast.Node
}

// Search evaluates tree against every file in paths, in order, using
// registry to build each file's AST. It returns a channel of Match values,
// closed when every file has been processed or ctx is cancelled, and a
// second channel carrying at most one terminal error (a failure class that
// aborts the whole run; per-file SyntaxErrors are logged and do not appear
// here).
//
// Each file gets a fresh index.Index; nothing is shared or retained across
// files, matching the "open, parse, index, release" resource model of §5.
// The consumer may stop ranging over matches at any point — the feeding
// goroutine blocks on send and exits as soon as ctx is done.
func Search(ctx context.Context, registry *provider.Registry, paths []string, tree query.Tree, read func(path string) ([]byte, error)) (<-chan Match, <-chan error) {
	matches := make(chan Match)
	errs := make(chan error, 1)

	go func() {
		defer close(matches)
		defer close(errs)

		for _, path := range paths {
			select {
			case <-ctx.Done():
				return
			default:
			}

			p, ok := registry.For(path)
			if !ok {
				continue
			}

			source, err := read(path)
			if err != nil {
				slog.Warn("skipping file: cannot read", "path", path, "error", err)
				continue
			}

			root, err := p.Build(path, source)
			if err != nil {
				if se, ok := err.(*ast.SyntaxError); ok {
					slog.Warn("skipping file: syntax error", "path", se.Path, "error", se.Err)
					continue
				}
				errs <- fmt.Errorf("building AST for %s: %w", path, err)
				return
			}

			ix := index.New(root)
			fileMatches, err := EvaluateTree(ix, tree)
			if err != nil {
				errs <- err
				return
			}

			sort.SliceStable(fileMatches, func(i, j int) bool {
				return fileMatches[i].Line() < fileMatches[j].Line()
			})

			for _, n := range fileMatches {
				select {
				case matches <- Match{Path: path, Node: n}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return matches, errs
}
