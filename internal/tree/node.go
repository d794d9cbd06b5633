package tree

import (
	"math"
	"strconv"
	"strings"

	"brewing-items/internal/common"
)

// Kind is the variant of a Node.
type Kind uint8

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return common.UnknownStr
	}
}

// ScalarKind is the type of a scalar value.
type ScalarKind uint8

const (
	ScalarString ScalarKind = iota
	ScalarInt
	ScalarFloat
	ScalarBool
)

// String returns a human-readable scalar kind name.
func (k ScalarKind) String() string {
	switch k {
	case ScalarString:
		return "string"
	case ScalarInt:
		return "int"
	case ScalarFloat:
		return "float"
	case ScalarBool:
		return "bool"
	default:
		return common.UnknownStr
	}
}

// Node is one node of a configuration tree. A nil *Node is a Null node.
// Nodes are immutable once built.
type Node struct {
	kind Kind

	scalar ScalarKind
	text   string
	i      int64
	f      float64
	b      bool

	items []*Node

	keys   []string
	fields map[string]*Node
}

// Entry is one key/value pair of a mapping under construction.
type Entry struct {
	Key   string
	Value *Node
}

// Null returns a null node.
func Null() *Node {
	return &Node{kind: KindNull}
}

// String returns a string scalar.
func String(s string) *Node {
	return &Node{kind: KindScalar, scalar: ScalarString, text: s}
}

// Int returns an integer scalar.
func Int(v int64) *Node {
	return &Node{kind: KindScalar, scalar: ScalarInt, text: strconv.FormatInt(v, 10), i: v}
}

// Float returns a float scalar.
func Float(v float64) *Node {
	return &Node{kind: KindScalar, scalar: ScalarFloat, text: strconv.FormatFloat(v, 'g', -1, 64), f: v}
}

// Bool returns a boolean scalar.
func Bool(v bool) *Node {
	return &Node{kind: KindScalar, scalar: ScalarBool, text: strconv.FormatBool(v), b: v}
}

// Sequence returns a sequence of the given nodes.
func Sequence(items ...*Node) *Node {
	return &Node{kind: KindSequence, items: append([]*Node(nil), items...)}
}

// Mapping returns a mapping of the given entries. A repeated key keeps its
// first position and its last value.
func Mapping(entries ...Entry) *Node {
	n := &Node{kind: KindMapping, fields: make(map[string]*Node, len(entries))}
	for _, e := range entries {
		if _, ok := n.fields[e.Key]; !ok {
			n.keys = append(n.keys, e.Key)
		}

		n.fields[e.Key] = e.Value
	}

	return n
}

// withText overrides the author text of a scalar.
func (n *Node) withText(text string) *Node {
	n.text = text
	return n
}

// Kind returns the node variant.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}

	return n.kind
}

// IsNull returns true for null nodes.
func (n *Node) IsNull() bool {
	return n.Kind() == KindNull
}

// IsScalar returns true for scalar nodes.
func (n *Node) IsScalar() bool {
	return n.Kind() == KindScalar
}

// IsSequence returns true for sequence nodes.
func (n *Node) IsSequence() bool {
	return n.Kind() == KindSequence
}

// IsMapping returns true for mapping nodes.
func (n *Node) IsMapping() bool {
	return n.Kind() == KindMapping
}

// ScalarKind returns the scalar type; ok is false for non-scalars.
func (n *Node) ScalarKind() (ScalarKind, bool) {
	if !n.IsScalar() {
		return 0, false
	}

	return n.scalar, true
}

// Text returns the author text of any scalar.
func (n *Node) Text() (string, bool) {
	if !n.IsScalar() {
		return "", false
	}

	return n.text, true
}

// AsString returns the value of a string scalar.
func (n *Node) AsString() (string, bool) {
	if !n.IsScalar() || n.scalar != ScalarString {
		return "", false
	}

	return n.text, true
}

// AsInt returns the value of an integer scalar. Floats with an integral
// value are accepted.
func (n *Node) AsInt() (int64, bool) {
	if !n.IsScalar() {
		return 0, false
	}

	switch n.scalar {
	case ScalarInt:
		return n.i, true
	case ScalarFloat:
		if n.f == math.Trunc(n.f) && n.f >= math.MinInt64 && n.f < math.MaxInt64 {
			return int64(n.f), true
		}
	}

	return 0, false
}

// AsFloat returns the value of a numeric scalar.
func (n *Node) AsFloat() (float64, bool) {
	if !n.IsScalar() {
		return 0, false
	}

	switch n.scalar {
	case ScalarInt:
		return float64(n.i), true
	case ScalarFloat:
		return n.f, true
	}

	return 0, false
}

// AsBool returns the value of a boolean scalar.
func (n *Node) AsBool() (bool, bool) {
	if !n.IsScalar() || n.scalar != ScalarBool {
		return false, false
	}

	return n.b, true
}

// Len returns the number of items or entries; zero for other variants.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindSequence:
		return len(n.items)
	case KindMapping:
		return len(n.keys)
	default:
		return 0
	}
}

// Items returns the elements of a sequence.
func (n *Node) Items() []*Node {
	if !n.IsSequence() {
		return nil
	}

	return append([]*Node(nil), n.items...)
}

// Keys returns the keys of a mapping in author order.
func (n *Node) Keys() []string {
	if !n.IsMapping() {
		return nil
	}

	return append([]string(nil), n.keys...)
}

// Has reports whether a mapping contains key, even with a null value.
func (n *Node) Has(key string) bool {
	if !n.IsMapping() {
		return false
	}

	_, ok := n.fields[key]

	return ok
}

// Get returns the value of key in a mapping. Null values count as absent.
func (n *Node) Get(key string) (*Node, bool) {
	if !n.IsMapping() {
		return nil, false
	}

	v, ok := n.fields[key]
	if !ok || v.IsNull() {
		return nil, false
	}

	return v, true
}

// At returns the node addressed by p relative to n.
func (n *Node) At(p Path) (*Node, bool) {
	cur := n
	for _, seg := range p.segments {
		if seg.IsIndex {
			if !cur.IsSequence() || seg.Index < 0 || seg.Index >= len(cur.items) {
				return nil, false
			}

			cur = cur.items[seg.Index]
			if cur.IsNull() {
				return nil, false
			}

			continue
		}

		next, ok := cur.Get(seg.Key)
		if !ok {
			return nil, false
		}

		cur = next
	}

	return cur, true
}

// Lookup returns the node at a path expression such as "restore.food" or
// "lore[1].text". Invalid expressions resolve to nothing.
func (n *Node) Lookup(expr string) (*Node, bool) {
	p, err := ParsePath(expr)
	if err != nil {
		return nil, false
	}

	return n.At(p)
}

// String renders the node compactly for diagnostics, e.g. "{text: a, color: [1, 2, 3]}".
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb)

	return sb.String()
}

func (n *Node) render(sb *strings.Builder) {
	switch n.Kind() {
	case KindNull:
		sb.WriteString("null")
	case KindScalar:
		sb.WriteString(n.text)
	case KindSequence:
		sb.WriteByte('[')

		for i, it := range n.items {
			if i > 0 {
				sb.WriteString(", ")
			}

			it.render(sb)
		}

		sb.WriteByte(']')
	case KindMapping:
		sb.WriteByte('{')

		for i, k := range n.keys {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(k)
			sb.WriteString(": ")
			n.fields[k].render(sb)
		}

		sb.WriteByte('}')
	}
}
