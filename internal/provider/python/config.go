// Package python implements provider.LanguageConfig for Python, projecting
// go-tree-sitter's CST onto the universal AST (§3).
//
// Grounded on the teacher's providers/python/config.go (node-type alias
// table) and providers/python/provider.go (grammar wiring).
package python

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/harlowlabs/semq/internal/ast"
	"github.com/harlowlabs/semq/internal/provider"
	"github.com/harlowlabs/semq/internal/provider/base"
)

// Config implements provider.LanguageConfig for Python.
type Config struct{}

// New returns a ready-to-use Python provider.
func New() provider.Provider {
	return base.New(&Config{})
}

func (c *Config) Name() string { return "python" }

func (c *Config) Extensions() []string { return []string{".py", ".pyw"} }

func (c *Config) GetLanguage() *sitter.Language { return python.GetLanguage() }

// Project classifies a single tree-sitter node per the Python column of
// §3's mapping table.
func (c *Config) Project(n *sitter.Node, source []byte) (*ast.Node, bool) {
	switch n.Type() {
	case "function_definition":
		return projectFunction(n, source), true
	case "class_definition":
		return projectClass(n, source), true
	case "call":
		return projectCall(n, source), true
	case "assignment":
		return projectAssignment(n, source)
	default:
		return nil, false
	}
}

func projectFunction(n *sitter.Node, source []byte) *ast.Node {
	nameNode := n.ChildByFieldName("name")
	fn := ast.New(ast.Function, int(n.StartPoint().Row)+1)
	args := collectParameters(n.ChildByFieldName("parameters"), source)
	fn.Function = &ast.FunctionAttrs{Name: base.NodeText(nameNode, source), Args: args.Arguments}

	paramsNode := ast.New(ast.Arguments, int(n.StartPoint().Row)+1)
	fn.AddChild(paramsNode)
	for _, p := range args.targets {
		paramsNode.AddChild(p)
	}
	return fn
}

type parsedParams struct {
	Arguments ast.Arguments
	targets   []*ast.Node
}

// collectParameters walks a `parameters` node, handling plain identifiers,
// `*args` (list_splat_pattern / typed_parameter wrapping one), `**kwargs`
// (dictionary_splat_pattern / typed_parameter wrapping one), and
// default-valued parameters
// (default_parameter), matching astroid's args/vararg/kwarg split.
func collectParameters(params *sitter.Node, source []byte) parsedParams {
	var out parsedParams
	if params == nil {
		return out
	}
	count := int(params.NamedChildCount())
	for i := 0; i < count; i++ {
		p := params.NamedChild(i)
		if p == nil {
			continue
		}
		switch p.Type() {
		case "identifier":
			addTarget(&out, p, source, false, false)
		case "default_parameter", "typed_parameter", "typed_default_parameter":
			if inner := p.NamedChild(0); inner != nil && (inner.Type() == "list_splat_pattern" || inner.Type() == "dictionary_splat_pattern") {
				if name := firstIdentifier(inner); name != nil {
					addTarget(&out, name, source, inner.Type() == "list_splat_pattern", inner.Type() == "dictionary_splat_pattern")
				}
			} else if name := firstIdentifier(p); name != nil {
				addTarget(&out, name, source, false, false)
			}
		case "list_splat_pattern":
			if name := firstIdentifier(p); name != nil {
				addTarget(&out, name, source, true, false)
			}
		case "dictionary_splat_pattern":
			if name := firstIdentifier(p); name != nil {
				addTarget(&out, name, source, false, true)
			}
		}
	}
	return out
}

func addTarget(out *parsedParams, nameNode *sitter.Node, source []byte, vararg, kwarg bool) {
	txt := base.NodeText(nameNode, source)
	target := ast.New(ast.AssignTarget, int(nameNode.StartPoint().Row)+1)
	target.Assign = &ast.AssignAttrs{Name: txt}
	out.targets = append(out.targets, target)
	switch {
	case vararg:
		out.Arguments.HasVararg = true
		out.Arguments.Vararg = txt
	case kwarg:
		out.Arguments.HasKwarg = true
		out.Arguments.Kwarg = txt
	default:
		out.Arguments.Positional = append(out.Arguments.Positional, txt)
	}
}

func firstIdentifier(n *sitter.Node) *sitter.Node {
	if n.Type() == "identifier" {
		return n
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c != nil && c.Type() == "identifier" {
			return c
		}
	}
	return nil
}

func projectClass(n *sitter.Node, source []byte) *ast.Node {
	nameNode := n.ChildByFieldName("name")
	cls := ast.New(ast.Class, int(n.StartPoint().Row)+1)
	bases, baseNames := superclasses(n.ChildByFieldName("superclasses"), source)
	cls.Class = &ast.ClassAttrs{Name: base.NodeText(nameNode, source), Bases: bases, BaseNames: baseNames}
	return cls
}

func superclasses(argList *sitter.Node, source []byte) ([]*ast.Node, []string) {
	if argList == nil {
		return nil, nil
	}
	var bases []*ast.Node
	var names []string
	for i := 0; i < int(argList.NamedChildCount()); i++ {
		arg := argList.NamedChild(i)
		if arg == nil || arg.Type() == "keyword_argument" {
			continue
		}
		node := calleeNode(arg, source)
		bases = append(bases, node)
		names = append(names, ast.ImmediateName(node))
	}
	return bases, names
}

func projectCall(n *sitter.Node, source []byte) *ast.Node {
	call := ast.New(ast.Call, int(n.StartPoint().Row)+1)
	call.CallExpr = &ast.CallAttrs{Callee: calleeNode(n.ChildByFieldName("function"), source)}
	return call
}

func calleeNode(fn *sitter.Node, source []byte) *ast.Node {
	if fn == nil {
		return nil
	}
	if fn.Type() == "attribute" {
		field := fn.ChildByFieldName("attribute")
		attr := ast.New(ast.AttributeAccess, int(fn.StartPoint().Row)+1)
		attr.Attribute = &ast.AttributeAttrs{AttrName: base.NodeText(field, source)}
		return attr
	}
	name := ast.New(ast.Name, int(fn.StartPoint().Row)+1)
	name.NameNode = &ast.NameAttrs{Name: base.NodeText(fn, source)}
	return name
}

// projectAssignment represents only the first left-hand identifier of a
// (possibly tuple-unpacking) assignment as an AssignTarget; destructuring
// assignment is a documented simplification.
func projectAssignment(n *sitter.Node, source []byte) (*ast.Node, bool) {
	left := n.ChildByFieldName("left")
	if left == nil {
		return nil, false
	}
	first := left
	if left.Type() == "pattern_list" || left.Type() == "tuple_pattern" {
		if left.NamedChildCount() == 0 {
			return nil, false
		}
		first = left.NamedChild(0)
	}
	if first == nil || first.Type() != "identifier" {
		return nil, false
	}
	target := ast.New(ast.AssignTarget, int(first.StartPoint().Row)+1)
	target.Assign = &ast.AssignAttrs{Name: base.NodeText(first, source)}
	return target, true
}
