package tree

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ParseTOML parses TOML data into a tree. Table keys keep document order.
func ParseTOML(data []byte) (*Node, error) {
	var raw map[string]any

	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	// toml.Key.String quotes parts that are not bare keys, so "a.b" and a.b
	// do not collide.
	order := make(map[string]int)
	for i, key := range meta.Keys() {
		joined := key.String()
		if _, ok := order[joined]; !ok {
			order[joined] = i
		}
	}

	return fromValue(raw, nil, order), nil
}

// fromValue converts decoded TOML values into a tree. Mapping keys follow
// order; keys it does not know are sorted by name.
func fromValue(v any, prefix toml.Key, order map[string]int) *Node {
	switch val := v.(type) {
	case nil:
		return Null()
	case *Node:
		return val
	case string:
		return String(val)
	case bool:
		return Bool(val)
	case int:
		return Int(int64(val))
	case int32:
		return Int(int64(val))
	case int64:
		return Int(val)
	case float32:
		return Float(float64(val))
	case float64:
		return Float(val)
	case time.Time:
		return String(val.Format(time.RFC3339Nano))
	case fmt.Stringer:
		// toml.LocalDate, toml.LocalTime and toml.LocalDateTime.
		return String(val.String())
	case []any:
		items := make([]*Node, 0, len(val))
		for _, it := range val {
			items = append(items, fromValue(it, prefix, order))
		}

		return Sequence(items...)
	case []map[string]any:
		items := make([]*Node, 0, len(val))
		for _, it := range val {
			items = append(items, fromValue(it, prefix, order))
		}

		return Sequence(items...)
	case []string:
		items := make([]*Node, 0, len(val))
		for _, it := range val {
			items = append(items, String(it))
		}

		return Sequence(items...)
	case map[string]any:
		keys := orderedKeys(val, prefix, order)

		entries := make([]Entry, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, Entry{Key: k, Value: fromValue(val[k], child(prefix, k), order)})
		}

		return Mapping(entries...)
	default:
		return String(fmt.Sprint(val))
	}
}

// orderedKeys sorts keys by document position, falling back to name order
// for keys the document order does not know.
func orderedKeys(m map[string]any, prefix toml.Key, order map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b string) int {
		ia, okA := order[child(prefix, a).String()]
		ib, okB := order[child(prefix, b).String()]

		switch {
		case okA && okB:
			return ia - ib
		case okA:
			return -1
		case okB:
			return 1
		default:
			return strings.Compare(a, b)
		}
	})

	return keys
}

func child(prefix toml.Key, key string) toml.Key {
	return append(prefix[:len(prefix):len(prefix)], key)
}
