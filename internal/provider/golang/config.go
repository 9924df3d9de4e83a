// Package golang implements provider.LanguageConfig for Go, projecting
// go-tree-sitter's CST onto the universal AST (§3).
//
// Grounded on the teacher's providers/golang/config.go (node-type alias
// table) and providers/golang/provider.go (grammar wiring), adapted from a
// DSL-query-translation table into a direct CST projection.
package golang

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/harlowlabs/semq/internal/ast"
	"github.com/harlowlabs/semq/internal/provider"
	"github.com/harlowlabs/semq/internal/provider/base"
)

// Config implements provider.LanguageConfig for Go.
type Config struct{}

// New returns a ready-to-use Go provider.
func New() provider.Provider {
	return base.New(&Config{})
}

func (c *Config) Name() string { return "go" }

func (c *Config) Extensions() []string { return []string{".go"} }

func (c *Config) GetLanguage() *sitter.Language { return golang.GetLanguage() }

// Project classifies a single tree-sitter node per the Go column of §3's
// mapping table. A defined type is treated as a Class only when its
// underlying type is a struct; bases are approximated by embedded fields,
// a deliberate simplification (interfaces and non-struct named types never
// match cls:* selectors).
func (c *Config) Project(n *sitter.Node, source []byte) (*ast.Node, bool) {
	switch n.Type() {
	case "function_declaration":
		return projectFunction(n, source, nil), true
	case "method_declaration":
		return projectFunction(n, source, n.ChildByFieldName("receiver")), true
	case "type_spec":
		return projectTypeSpec(n, source)
	case "call_expression":
		return projectCall(n, source), true
	case "short_var_declaration", "assignment_statement":
		return projectAssignment(n, source)
	default:
		return nil, false
	}
}

func projectFunction(n *sitter.Node, source []byte, receiver *sitter.Node) *ast.Node {
	nameNode := n.ChildByFieldName("name")
	fn := ast.New(ast.Function, int(n.StartPoint().Row)+1)
	args := collectParameters(n.ChildByFieldName("parameters"), source)
	fn.Function = &ast.FunctionAttrs{Name: base.NodeText(nameNode, source), Args: args.Arguments}

	paramsNode := ast.New(ast.Arguments, int(n.StartPoint().Row)+1)
	fn.AddChild(paramsNode)
	for _, p := range args.targets {
		paramsNode.AddChild(p)
	}
	if receiver != nil {
		for _, p := range collectParameters(receiver, source).targets {
			paramsNode.AddChild(p)
		}
	}
	return fn
}

type parsedParams struct {
	Arguments ast.Arguments
	targets   []*ast.Node
}

// collectParameters walks a parameter_list, building both the flat
// positional-name list used for fn:argcount and a parallel set of
// AssignTarget nodes (one per parameter name) so var:name's parameter
// exclusion rule (node.parent.kind != Arguments) has something to exclude.
func collectParameters(list *sitter.Node, source []byte) parsedParams {
	var out parsedParams
	if list == nil {
		return out
	}
	count := int(list.NamedChildCount())
	for i := 0; i < count; i++ {
		decl := list.NamedChild(i)
		if decl == nil {
			continue
		}
		variadic := decl.Type() == "variadic_parameter_declaration"
		for j := 0; j < int(decl.ChildCount()); j++ {
			c := decl.Child(j)
			if c == nil || c.Type() != "identifier" {
				continue
			}
			txt := base.NodeText(c, source)
			target := ast.New(ast.AssignTarget, int(c.StartPoint().Row)+1)
			target.Assign = &ast.AssignAttrs{Name: txt}
			out.targets = append(out.targets, target)
			if variadic {
				out.Arguments.HasVararg = true
				out.Arguments.Vararg = txt
			} else {
				out.Arguments.Positional = append(out.Arguments.Positional, txt)
			}
		}
	}
	return out
}

func projectTypeSpec(n *sitter.Node, source []byte) (*ast.Node, bool) {
	underlying := n.ChildByFieldName("type")
	if underlying == nil || underlying.Type() != "struct_type" {
		return nil, false
	}
	nameNode := n.ChildByFieldName("name")
	cls := ast.New(ast.Class, int(n.StartPoint().Row)+1)
	bases, baseNames := embeddedFields(underlying, source)
	cls.Class = &ast.ClassAttrs{Name: base.NodeText(nameNode, source), Bases: bases, BaseNames: baseNames}
	return cls, true
}

// embeddedFields approximates Go's nearest equivalent of base classes:
// anonymous (embedded) struct fields, each surfaced as a bare Name node.
func embeddedFields(structType *sitter.Node, source []byte) ([]*ast.Node, []string) {
	fieldList := structType.ChildByFieldName("body")
	if fieldList == nil {
		return nil, nil
	}
	var bases []*ast.Node
	var names []string
	for i := 0; i < int(fieldList.NamedChildCount()); i++ {
		decl := fieldList.NamedChild(i)
		if decl == nil || decl.Type() != "field_declaration" {
			continue
		}
		// Embedded fields have a type but no "name" field.
		if decl.ChildByFieldName("name") != nil {
			continue
		}
		typeNode := decl.ChildByFieldName("type")
		if typeNode == nil {
			continue
		}
		name := ast.New(ast.Name, int(typeNode.StartPoint().Row)+1)
		txt := strings.TrimPrefix(base.NodeText(typeNode, source), "*")
		if typeNode.Type() == "qualified_type" {
			// pkg.Base: keep only the immediate name, as for Python's attribute bases.
			txt = base.NodeText(typeNode.ChildByFieldName("name"), source)
		}
		name.NameNode = &ast.NameAttrs{Name: txt}
		bases = append(bases, name)
		names = append(names, txt)
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
	if fn.Type() == "selector_expression" {
		field := fn.ChildByFieldName("field")
		attr := ast.New(ast.AttributeAccess, int(fn.StartPoint().Row)+1)
		attr.Attribute = &ast.AttributeAttrs{AttrName: base.NodeText(field, source)}
		return attr
	}
	name := ast.New(ast.Name, int(fn.StartPoint().Row)+1)
	name.NameNode = &ast.NameAttrs{Name: base.NodeText(fn, source)}
	return name
}

// projectAssignment represents only the first left-hand identifier of a
// (possibly multi-target) assignment or short variable declaration as an
// AssignTarget; additional targets in `a, b := f()` are a documented
// simplification.
func projectAssignment(n *sitter.Node, source []byte) (*ast.Node, bool) {
	left := n.ChildByFieldName("left")
	if left == nil {
		return nil, false
	}
	first := left
	if left.Type() == "expression_list" && left.NamedChildCount() > 0 {
		first = left.NamedChild(0)
	}
	if first == nil || first.Type() != "identifier" {
		return nil, false
	}
	target := ast.New(ast.AssignTarget, int(first.StartPoint().Row)+1)
	target.Assign = &ast.AssignAttrs{Name: base.NodeText(first, source)}
	return target, true
}
