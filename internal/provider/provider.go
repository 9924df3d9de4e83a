// Package provider defines the AST Provider contract (§4.0/§6): turning one
// source file into the universal ast.Node tree that the indexer, matcher,
// and evaluator operate on.
//
// Adapted from the teacher's LanguageProvider interface
// (internal/provider/provider.go, internal/provider/contract.go): the
// teacher's surface translates a DSL query into Tree-sitter queries and
// back for in-place rewriting. That surface has no job here since rewriting
// is out of scope; what survives is the narrower idea underneath it — one
// implementation per grammar, registered by language/extension, producing a
// typed tree the rest of the engine never needs to know is tree-sitter at
// all.
package provider

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/harlowlabs/semq/internal/ast"
)

// Provider turns a single source file into the universal AST. Build
// returns *ast.SyntaxError if the tree-sitter parse contains an
// ERROR/MISSING node.
type Provider interface {
	Name() string
	Extensions() []string
	Build(path string, source []byte) (*ast.Node, error)
}

// LanguageConfig is what a concrete provider package (golang, python)
// supplies to base.New: the tree-sitter grammar plus the handful of
// language-specific projection rules base.Provider cannot know generically.
type LanguageConfig interface {
	Name() string
	Extensions() []string
	GetLanguage() *sitter.Language

	// Project walks a tree-sitter node and, if it maps onto one of the
	// universal kinds (§3), returns the populated ast.Node for it along
	// with true. Non-universal nodes (a block, an if-statement, a binary
	// expression) return (nil, false); base.Provider recurses through them
	// transparently so that the resulting ast.Node tree's Parent links skip
	// straight to the nearest enclosing universal ancestor.
	Project(n *sitter.Node, source []byte) (*ast.Node, bool)
}
