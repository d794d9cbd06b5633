package tree

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MaxYAMLNodes bounds the number of nodes a YAML document may expand to once
// aliases are resolved.
const MaxYAMLNodes = 1 << 20

// ErrYAMLTooLarge is returned when alias expansion exceeds MaxYAMLNodes.
var ErrYAMLTooLarge = errors.New("document expands to too many nodes")

// ParseYAML parses YAML data into a tree. An empty document yields a Null node.
// An anchored value is converted once and shared by all of its aliases.
func ParseYAML(data []byte) (*Node, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	c := &yamlConverter{
		anchors:  map[*yaml.Node]anchored{},
		visiting: map[*yaml.Node]bool{},
		budget:   MaxYAMLNodes,
	}

	return c.convert(&doc)
}

type anchored struct {
	node *Node
	size int
}

type yamlConverter struct {
	anchors  map[*yaml.Node]anchored
	visiting map[*yaml.Node]bool
	budget   int
	count    int
}

func (c *yamlConverter) spend(n, line int) error {
	c.count += n
	if c.count > c.budget {
		return fmt.Errorf("line %d: %w (limit %d)", line, ErrYAMLTooLarge, c.budget)
	}

	return nil
}

func (c *yamlConverter) convert(node *yaml.Node) (*Node, error) {
	if node.Kind == yaml.AliasNode {
		return c.convertAlias(node)
	}

	if node.Anchor == "" {
		return c.convertValue(node)
	}

	c.visiting[node] = true
	defer delete(c.visiting, node)

	start := c.count

	n, err := c.convertValue(node)
	if err != nil {
		return nil, err
	}

	c.anchors[node] = anchored{node: n, size: c.count - start}

	return n, nil
}

func (c *yamlConverter) convertAlias(node *yaml.Node) (*Node, error) {
	if node.Alias == nil {
		return nil, fmt.Errorf("line %d: alias without anchor", node.Line)
	}

	if c.visiting[node.Alias] {
		return nil, fmt.Errorf("line %d: alias %q refers to itself", node.Line, node.Value)
	}

	a, ok := c.anchors[node.Alias]
	if !ok {
		return c.convert(node.Alias)
	}

	if err := c.spend(a.size, node.Line); err != nil {
		return nil, err
	}

	return a.node, nil
}

func (c *yamlConverter) convertValue(node *yaml.Node) (*Node, error) {
	if node.Kind != yaml.DocumentNode {
		if err := c.spend(1, node.Line); err != nil {
			return nil, err
		}
	}

	switch node.Kind {
	case 0:
		return Null(), nil

	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}

		return c.convert(node.Content[0])

	case yaml.ScalarNode:
		return convertYAMLScalar(node)

	case yaml.SequenceNode:
		items := make([]*Node, 0, len(node.Content))

		for _, item := range node.Content {
			n, err := c.convert(item)
			if err != nil {
				return nil, err
			}

			items = append(items, n)
		}

		return Sequence(items...), nil

	case yaml.MappingNode:
		return c.convertMapping(node)

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %v", node.Line, node.Kind)
	}
}

// convertMapping converts a mapping node. Merge keys ("<<") contribute
// entries that explicit keys of the same mapping override.
func (c *yamlConverter) convertMapping(node *yaml.Node) (*Node, error) {
	if len(node.Content)%2 != 0 {
		return nil, fmt.Errorf("line %d: mapping with odd number of nodes", node.Line)
	}

	var merged, explicit []Entry

	for i := 0; i < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}

		value, err := c.convert(valueNode)
		if err != nil {
			return nil, err
		}

		if keyNode.ShortTag() == "!!merge" {
			entries, err := mergeEntries(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", keyNode.Line, err)
			}

			merged = append(merged, entries...)

			continue
		}

		explicit = append(explicit, Entry{Key: keyNode.Value, Value: value})
	}

	return Mapping(append(merged, explicit...)...), nil
}

func mergeEntries(value *Node) ([]Entry, error) {
	switch value.Kind() {
	case KindMapping:
		entries := make([]Entry, 0, value.Len())
		for _, k := range value.keys {
			entries = append(entries, Entry{Key: k, Value: value.fields[k]})
		}

		return entries, nil

	case KindSequence:
		var entries []Entry

		for _, item := range value.items {
			if !item.IsMapping() {
				return nil, errors.New("merge sequence must contain mappings")
			}

			sub, _ := mergeEntries(item)
			entries = append(entries, sub...)
		}

		return entries, nil

	default:
		return nil, errors.New("merge value must be a mapping or a sequence of mappings")
	}
}

func convertYAMLScalar(node *yaml.Node) (*Node, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil

	case "!!bool":
		var b bool

		err := node.Decode(&b)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return Bool(b).withText(node.Value), nil

	case "!!int":
		var i int64

		err := node.Decode(&i)
		if err != nil {
			// Integers beyond int64 are kept as floats.
			var f float64
			if ferr := node.Decode(&f); ferr != nil {
				return nil, fmt.Errorf("line %d: %w", node.Line, err)
			}

			return Float(f).withText(node.Value), nil
		}

		return Int(i).withText(node.Value), nil

	case "!!float":
		var f float64

		err := node.Decode(&f)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return Float(f).withText(node.Value), nil

	default:
		return String(node.Value), nil
	}
}
