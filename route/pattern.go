package route

import (
	"fmt"
	"sort"
	"strings"
)

type segKind int

const (
	segLiteral segKind = iota
	segParam
	segSplat
)

type segment struct {
	kind  segKind
	value string // literal text or param/splat name
}

// Pattern is a compiled hash-address pattern. Segments are separated by "/";
// ":name" captures one segment, a trailing "*name" captures the rest.
type Pattern struct {
	raw  string
	segs []segment
}

// Compile parses a pattern string. A leading "#/" or "/" is ignored, params
// and splats must be named, and a splat may only appear last.
func Compile(pattern string) (Pattern, error) {
	raw := pattern
	path := trimAddress(pattern)
	p := Pattern{raw: raw}
	if path == "" {
		return p, nil
	}
	parts := strings.Split(path, "/")
	for i, part := range parts {
		switch {
		case strings.HasPrefix(part, ":"):
			name := part[1:]
			if name == "" {
				return Pattern{}, fmt.Errorf("pattern %q: unnamed param", pattern)
			}
			p.segs = append(p.segs, segment{kind: segParam, value: name})
		case strings.HasPrefix(part, "*"):
			name := part[1:]
			if name == "" {
				return Pattern{}, fmt.Errorf("pattern %q: unnamed splat", pattern)
			}
			if i != len(parts)-1 {
				return Pattern{}, fmt.Errorf("pattern %q: splat must be the last segment", pattern)
			}
			p.segs = append(p.segs, segment{kind: segSplat, value: name})
		case part == "":
			return Pattern{}, fmt.Errorf("pattern %q: empty segment", pattern)
		default:
			p.segs = append(p.segs, segment{kind: segLiteral, value: part})
		}
	}
	return p, nil
}

func (p Pattern) String() string {
	return p.raw
}

// Match tests a normalized path (no hash prefix, no query) against the
// pattern and returns captured params.
func (p Pattern) Match(path string) (map[string]string, bool) {
	var parts []string
	if path != "" {
		parts = strings.Split(path, "/")
	}
	var args map[string]string
	capture := func(k, v string) {
		if args == nil {
			args = map[string]string{}
		}
		args[k] = v
	}
	i := 0
	for _, seg := range p.segs {
		if seg.kind == segSplat {
			capture(seg.value, strings.Join(parts[i:], "/"))
			return args, true
		}
		if i >= len(parts) {
			return nil, false
		}
		switch seg.kind {
		case segLiteral:
			if parts[i] != seg.value {
				return nil, false
			}
		case segParam:
			capture(seg.value, parts[i])
		}
		i++
	}
	if i != len(parts) {
		return nil, false
	}
	return args, true
}

// Format substitutes args into the pattern and appends whatever is left over
// as query pairs, sorted for stable output.
func (p Pattern) Format(args map[string]string) string {
	used := map[string]bool{}
	parts := make([]string, 0, len(p.segs))
	for _, seg := range p.segs {
		switch seg.kind {
		case segLiteral:
			parts = append(parts, seg.value)
		case segParam, segSplat:
			parts = append(parts, args[seg.value])
			used[seg.value] = true
		}
	}
	out := "/" + strings.Join(parts, "/")
	var leftover []string
	for k := range args {
		if !used[k] {
			leftover = append(leftover, k)
		}
	}
	if len(leftover) > 0 {
		sort.Strings(leftover)
		pairs := make([]string, len(leftover))
		for i, k := range leftover {
			pairs[i] = k + "=" + args[k]
		}
		out += "?" + strings.Join(pairs, "&")
	}
	return out
}

// trimAddress normalizes a raw address or pattern to a bare path: hash
// prefix, surrounding slashes, and any query part removed.
func trimAddress(address string) string {
	s := strings.TrimPrefix(address, "#")
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(s, "/")
}

// parseQuery splits the query part of an address into key/value args.
func parseQuery(address string) map[string]string {
	i := strings.IndexByte(address, '?')
	if i < 0 || i == len(address)-1 {
		return nil
	}
	args := map[string]string{}
	for _, pair := range strings.Split(address[i+1:], "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		if k != "" {
			args[k] = v
		}
	}
	if len(args) == 0 {
		return nil
	}
	return args
}
