// Package index builds a kind -> nodes inventory over a single AST and
// exposes the lazy find operation the matcher registry is built on.
//
// Grounded on the teacher's dependency-injected evaluator (internal/evaluator
// and internal/provider in the example pack): the Index, like the
// evaluator, knows nothing about any particular host language. It only
// walks the universal ast.Node tree a provider already built.
package index

import "github.com/harlowlabs/semq/internal/ast"

// Index is a mapping from node kind to the ordered list of unique nodes of
// that kind, built lazily from a single tree and bound to it for its
// lifetime. It is not safe for concurrent use; the search engine builds one
// Index per file and discards it before moving to the next.
type Index struct {
	root    *ast.Node
	built   bool
	byKind  map[ast.Kind][]*ast.Node
	visited map[*ast.Node]bool
	order   []*ast.Node
}

// New returns an Index over root. The tree is not walked until the first
// Find call.
func New(root *ast.Node) *Index {
	return &Index{root: root}
}

// Find returns every indexed node whose kind is one of kinds, in the order
// they were first visited. The index is built on the first call and reused
// afterwards.
func (ix *Index) Find(kinds ...ast.Kind) []*ast.Node {
	ix.build()
	switch len(kinds) {
	case 0:
		return nil
	case 1:
		return ix.byKind[kinds[0]]
	}

	want := make(map[ast.Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var result []*ast.Node
	for _, n := range ix.order {
		if want[n.Kind()] {
			result = append(result, n)
		}
	}
	return result
}

func (ix *Index) build() {
	if ix.built {
		return
	}
	ix.built = true
	ix.byKind = make(map[ast.Kind][]*ast.Node)
	ix.visited = make(map[*ast.Node]bool)
	if ix.root != nil {
		ix.visit(ix.root)
	}
}

func (ix *Index) visit(n *ast.Node) {
	if n == nil || ix.visited[n] {
		return
	}
	ix.visited[n] = true
	ix.order = append(ix.order, n)
	ix.byKind[n.Kind()] = append(ix.byKind[n.Kind()], n)

	// Defensive ancestor pass: a well-formed tree built by a provider is
	// always reachable purely through Children, but if a provider ever
	// hands over a node discovered via a side channel (e.g. a Call node's
	// Callee, which is not necessarily one of n's own children), make sure
	// its ancestor chain still gets indexed. A cycle-free tree makes this
	// terminate immediately in the common case since the parent is already
	// visited.
	if p := n.Parent(); p != nil {
		ix.visit(p)
	}

	for _, c := range n.Children() {
		ix.visit(c)
	}

	if n.Kind() == ast.Call && n.CallExpr != nil {
		ix.visit(n.CallExpr.Callee)
	}
}
