// Package base hosts the tree-sitter-driven plumbing shared by every
// concrete provider: parsing, syntax-error detection, and the generic
// CST-to-universal-AST projection walk. A concrete provider package
// (internal/provider/golang, internal/provider/python) only supplies a
// provider.LanguageConfig — the grammar and the handful of projection
// rules that differ per language.
//
// Grounded on the teacher's base.Provider/LanguageConfig split
// (providers/base/provider.go in the example pack): a single generic
// parser-and-walk implementation parameterized by a small per-language
// interface, rather than duplicating the tree-sitter plumbing per
// language.
package base

import (
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/harlowlabs/semq/internal/ast"
	"github.com/harlowlabs/semq/internal/provider"
)

// Provider adapts a provider.LanguageConfig into a full provider.Provider.
type Provider struct {
	config provider.LanguageConfig
	parser *sitter.Parser
}

// New builds a Provider around config, configuring a tree-sitter parser
// with its grammar.
func New(config provider.LanguageConfig) *Provider {
	parser := sitter.NewParser()
	lang := config.GetLanguage()
	if lang == nil {
		panic(fmt.Sprintf("failed to load tree-sitter grammar for %s", config.Name()))
	}
	parser.SetLanguage(lang)
	return &Provider{config: config, parser: parser}
}

// Name returns the language identifier.
func (p *Provider) Name() string { return p.config.Name() }

// Extensions returns the file extensions this provider claims.
func (p *Provider) Extensions() []string { return p.config.Extensions() }

// Build parses source and projects its tree-sitter CST onto the universal
// AST rooted at a synthetic Module node named after path's basename.
func (p *Provider) Build(path string, source []byte) (*ast.Node, error) {
	tree := p.parser.Parse(nil, source)
	if tree == nil {
		return nil, &ast.SyntaxError{Path: path, Err: fmt.Errorf("tree-sitter returned no tree")}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || hasSyntaxError(root) {
		return nil, &ast.SyntaxError{Path: path, Err: fmt.Errorf("syntax error while parsing %s", path)}
	}

	base := filepath.Base(path)
	moduleName := strings.TrimSuffix(base, filepath.Ext(base))
	module := ast.New(ast.Module, int(root.StartPoint().Row)+1)
	module.Module = &ast.ModuleAttrs{Name: moduleName}

	p.project(root, source, module)
	return module, nil
}

// project walks n's children, attaching any node the config recognizes as
// universal and eliding (recursing straight through) everything else, so
// that the resulting ast.Node tree's Parent links skip non-universal
// tree-sitter wrapper nodes entirely.
func (p *Provider) project(n *sitter.Node, source []byte, parent *ast.Node) {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if node, ok := p.config.Project(child, source); ok {
			parent.AddChild(node)
			p.project(child, source, node)
			continue
		}
		p.project(child, source, parent)
	}
}

func hasSyntaxError(n *sitter.Node) bool {
	if n.IsError() || n.IsMissing() {
		return true
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c != nil && hasSyntaxError(c) {
			return true
		}
	}
	return false
}

// NodeText returns the verbatim source text spanned by n.
func NodeText(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return string(source[n.StartByte():n.EndByte()])
}
