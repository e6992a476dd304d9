package descriptor

import "strings"

// NodeKind identifies the type of AST node.
type NodeKind int

const (
	NodeKindUnknown NodeKind = iota
	NodeKindPrimitive
	NodeKindReference
	NodeKindArray
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindPrimitive:
		return "primitive"
	case NodeKindReference:
		return "reference"
	case NodeKindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Node is a parsed type descriptor. String renders it back to descriptor form.
type Node interface {
	Kind() NodeKind
	String() string
}

// Primitive is a single-character primitive type code.
type Primitive struct {
	Code byte
}

func (n *Primitive) Kind() NodeKind { return NodeKindPrimitive }
func (n *Primitive) String() string { return string(n.Code) }

// Reference names a class or interface, e.g. "com.example.Foo".
type Reference struct {
	Name string
}

func (n *Reference) Kind() NodeKind { return NodeKindReference }
func (n *Reference) String() string { return "L" + n.Name + ";" }

// Array is an array of its element type.
type Array struct {
	Elem Node
}

func (n *Array) Kind() NodeKind { return NodeKindArray }
func (n *Array) String() string { return "[" + n.Elem.String() }

// Dimensions returns the array nesting depth and the innermost element.
func (n *Array) Dimensions() (int, Node) {
	depth := 1
	elem := n.Elem
	for {
		a, ok := elem.(*Array)
		if !ok {
			return depth, elem
		}
		depth++
		elem = a.Elem
	}
}

// Join renders a list of nodes as a concatenated descriptor list.
func Join(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.String())
	}
	return sb.String()
}
