// Package ast defines the host-language-agnostic AST node model that the
// rest of the engine (indexer, matcher, search) is built against. Concrete
// trees are produced by a provider (internal/provider) from a real parser;
// this package only fixes the shape every provider must emit.
package ast

// Kind tags the concrete payload carried by a Node. It is a closed set:
// callers switch on it rather than doing type assertions against an open
// interface hierarchy.
type Kind string

const (
	Module          Kind = "Module"
	Function        Kind = "Function"
	Class           Kind = "Class"
	Call            Kind = "Call"
	AttributeAccess Kind = "AttributeAccess"
	Name            Kind = "Name"
	AssignTarget    Kind = "AssignTarget"
	Arguments       Kind = "Arguments"
)

// Arguments describes a function's parameter list the way the original
// Python-flavored DSL expects it: a list of positional names plus optional
// catch-all vararg/kwarg names. A host language without kwargs (Go) simply
// never populates Kwarg.
type Arguments struct {
	Positional []string
	Vararg     string
	HasVararg  bool
	Kwarg      string
	HasKwarg   bool
}

// Count returns the argument count used by fn:argcount: positional plus one
// for each of vararg/kwarg present.
func (a Arguments) Count() int {
	n := len(a.Positional)
	if a.HasVararg {
		n++
	}
	if a.HasKwarg {
		n++
	}
	return n
}

// FunctionAttrs carries Function-kind attributes.
type FunctionAttrs struct {
	Name string
	Args Arguments
}

// ClassAttrs carries Class-kind attributes. BaseNames is precomputed by the
// provider using the same immediate-name rule the matcher uses for calls
// (§4.4 in the design notes): each base's own name if it is a bare Name, or
// its attrname if it is an attribute access such as pkg.Base.
type ClassAttrs struct {
	Name      string
	Bases     []*Node
	BaseNames []string
}

// CallAttrs carries Call-kind attributes. Callee is either a Name or an
// AttributeAccess node.
type CallAttrs struct {
	Callee *Node
}

// AttributeAttrs carries AttributeAccess-kind attributes.
type AttributeAttrs struct {
	AttrName string
}

// NameAttrs carries Name-kind attributes.
type NameAttrs struct {
	Name string
}

// AssignAttrs carries AssignTarget-kind attributes.
type AssignAttrs struct {
	Name string
}

// ModuleAttrs carries Module-kind (root) attributes.
type ModuleAttrs struct {
	Name string
}

// Node is a single entry in the universal AST. Only one of the Attrs
// fields is populated, matching Kind; exactly which one is fixed by the
// Kind tag so callers never need a type switch over interface{}.
//
// Node identity is the pointer value: two *Node point to the same syntactic
// construct iff they are `==`. This is what the Index's dedup set and the
// Match Set key on.
type Node struct {
	kind     Kind
	line     int
	parent   *Node
	children []*Node

	Module    *ModuleAttrs
	Function  *FunctionAttrs
	Class     *ClassAttrs
	CallExpr  *CallAttrs
	Attribute *AttributeAttrs
	NameNode  *NameAttrs
	Assign    *AssignAttrs
}

// New builds a Node of the given kind. Callers populate the matching Attrs
// field and call AddChild to wire up the tree.
func New(kind Kind, line int) *Node {
	return &Node{kind: kind, line: line}
}

// Kind returns the node's tag.
func (n *Node) Kind() Kind { return n.kind }

// Line returns the node's 1-based source line.
func (n *Node) Line() int { return n.line }

// Parent returns the nearest enclosing universal-kind ancestor, or nil at
// the root. Structural host-AST nodes that never became a Node (an `if`
// statement, a block, a binary expression, ...) are never seen here: the
// provider elides them while projecting the concrete syntax tree onto this
// universal shape, the same way astroid's body is a flat statement list
// rather than a chain of wrapper nodes. See DESIGN.md, `internal/provider/base`.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's direct universal-kind children, in source
// order.
func (n *Node) Children() []*Node { return n.children }

// AddChild appends child to n's children and sets child's parent to n.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Name returns the node's name attribute and whether it has one. Only
// Module, Function, Class, Name, and AssignTarget carry a plain name.
func (n *Node) Name() (string, bool) {
	switch n.kind {
	case Module:
		if n.Module != nil {
			return n.Module.Name, true
		}
	case Function:
		if n.Function != nil {
			return n.Function.Name, true
		}
	case Class:
		if n.Class != nil {
			return n.Class.Name, true
		}
	case Name:
		if n.NameNode != nil {
			return n.NameNode.Name, true
		}
	case AssignTarget:
		if n.Assign != nil {
			return n.Assign.Name, true
		}
	}
	return "", false
}

// AttrName returns the node's attrname attribute and whether it has one.
// Only AttributeAccess nodes carry one.
func (n *Node) AttrName() (string, bool) {
	if n.kind == AttributeAccess && n.Attribute != nil {
		return n.Attribute.AttrName, true
	}
	return "", false
}

// ImmediateName implements the "immediate-callee name" rule from §4.4: for
// a node, prefer attrname, then name; yield "" if neither is present. It is
// used both for a Call's callee and, more generally, anywhere an
// expression's leaf name is needed (e.g. computing a Class's BaseNames).
func ImmediateName(n *Node) string {
	if n == nil {
		return ""
	}
	if attr, ok := n.AttrName(); ok {
		return attr
	}
	if name, ok := n.Name(); ok {
		return name
	}
	return ""
}

// CalleeName returns the immediate-callee name of a Call node: the
// AttributeAccess's attrname if its callee is an attribute access,
// otherwise the callee's own name. Returns "" if n is not a Call or the
// callee is missing.
func CalleeName(n *Node) string {
	if n == nil || n.kind != Call || n.CallExpr == nil {
		return ""
	}
	return ImmediateName(n.CallExpr.Callee)
}

// Ancestors returns every strict ancestor of n, nearest first, by
// following Parent until nil.
func Ancestors(n *Node) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for p := n.Parent(); p != nil; p = p.Parent() {
		out = append(out, p)
	}
	return out
}
