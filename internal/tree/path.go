package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a Path: a mapping key or a sequence index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path addresses a node from the root of a file. Paths are immutable;
// Key and Index return extended copies.
type Path struct {
	segments []Segment
}

// NewPath returns a path made of the given keys.
func NewPath(keys ...string) Path {
	var p Path
	for _, k := range keys {
		p = p.Key(k)
	}

	return p
}

// Key returns p extended with a mapping key.
func (p Path) Key(key string) Path {
	return p.with(Segment{Key: key})
}

// Index returns p extended with a sequence index.
func (p Path) Index(i int) Path {
	return p.with(Segment{Index: i, IsIndex: true})
}

func (p Path) with(seg Segment) Path {
	segments := make([]Segment, len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)

	return Path{segments: append(segments, seg)}
}

// IsRoot returns true for the empty path.
func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// String renders the path, e.g. "apple.effect[0].potion-type". Keys that are
// empty or contain path syntax are quoted, as in `"a.b".material`, so the
// result parses back with ParsePath.
func (p Path) String() string {
	var sb strings.Builder

	for i, seg := range p.segments {
		if seg.IsIndex {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(seg.Index))
			sb.WriteByte(']')

			continue
		}

		if i > 0 {
			sb.WriteByte('.')
		}

		sb.WriteString(quoteKey(seg.Key))
	}

	return sb.String()
}

func quoteKey(key string) string {
	if key == "" || strings.ContainsAny(key, ".[]\"\\") {
		return strconv.Quote(key)
	}

	return key
}

// ParsePath parses a path string into a Path.
// Supports: "key", "nested.key", "list[2]", "list[2].key", `"dotted.key".x`.
func ParsePath(path string) (Path, error) {
	if path == "" {
		return Path{}, errors.New("empty path")
	}

	var p Path

	rest := path

	for {
		key, after, err := cutKey(rest)
		if err != nil {
			return Path{}, fmt.Errorf("invalid path %q: %w", path, err)
		}

		p = p.Key(key)

		for strings.HasPrefix(after, "[") {
			idx, tail, ok := strings.Cut(after[1:], "]")
			if !ok {
				return Path{}, fmt.Errorf("invalid path %q: unterminated index", path)
			}

			i, err := strconv.Atoi(idx)
			if err != nil || i < 0 {
				return Path{}, fmt.Errorf("invalid path %q: invalid index %q", path, idx)
			}

			p = p.Index(i)
			after = tail
		}

		if after == "" {
			return p, nil
		}

		if after[0] != '.' {
			return Path{}, fmt.Errorf("invalid path %q: unexpected %q", path, after)
		}

		rest = after[1:]
	}
}

// cutKey splits the leading key, plain or quoted, off s.
func cutKey(s string) (key, rest string, err error) {
	if strings.HasPrefix(s, `"`) {
		quoted, err := strconv.QuotedPrefix(s)
		if err != nil {
			return "", "", errors.New("unterminated quoted key")
		}

		key, err = strconv.Unquote(quoted)
		if err != nil {
			return "", "", fmt.Errorf("bad quoted key %s", quoted)
		}

		return key, s[len(quoted):], nil
	}

	end := strings.IndexAny(s, ".[")
	if end < 0 {
		end = len(s)
	}

	if end == 0 {
		return "", "", errors.New("empty key")
	}

	return s[:end], s[end:], nil
}
