package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type segment struct {
	literal string
	param   string
}

type pattern struct {
	raw      string
	segments []segment
}

func parsePattern(raw string) (pattern, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "/"
	}
	if !strings.HasPrefix(raw, "/") {
		return pattern{}, fmt.Errorf("path %q must start with /", raw)
	}
	if len(raw) > 1 {
		raw = strings.TrimSuffix(raw, "/")
	}
	trimmed := strings.TrimPrefix(raw, "/")
	if trimmed == "" {
		return pattern{raw: "/"}, nil
	}

	parts := strings.Split(trimmed, "/")
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		switch {
		case part == "":
			return pattern{}, fmt.Errorf("path %q has an empty segment", raw)
		case strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}"):
			name := part[1 : len(part)-1]
			if name == "" || strings.ContainsAny(name, "{}") {
				return pattern{}, fmt.Errorf("path %q has malformed parameter %q", raw, part)
			}
			if _, dup := seen[name]; dup {
				return pattern{}, fmt.Errorf("path %q repeats parameter %q", raw, name)
			}
			seen[name] = struct{}{}
			segments = append(segments, segment{param: name})
		case strings.ContainsAny(part, "{}"):
			return pattern{}, fmt.Errorf("path %q has malformed segment %q", raw, part)
		default:
			segments = append(segments, segment{literal: part})
		}
	}
	return pattern{raw: raw, segments: segments}, nil
}

// overlaps reports whether some path would match both patterns.
func (p pattern) overlaps(other pattern) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for idx, a := range p.segments {
		b := other.segments[idx]
		if a.param == "" && b.param == "" && !strings.EqualFold(a.literal, b.literal) {
			return false
		}
	}
	return true
}

func (p pattern) match(segments []string) (map[string]string, bool) {
	if len(segments) != len(p.segments) {
		return nil, false
	}
	var params map[string]string
	for idx, seg := range p.segments {
		value := segments[idx]
		if seg.param == "" {
			if !strings.EqualFold(seg.literal, value) {
				return nil, false
			}
			continue
		}
		if value == "" {
			return nil, false
		}
		if params == nil {
			params = make(map[string]string, len(p.segments))
		}
		params[seg.param] = value
	}
	return params, true
}

var errMissingParam = errors.New("missing path parameter")

func (p pattern) build(params map[string]string) (string, error) {
	if len(p.segments) == 0 {
		return "/", nil
	}
	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteByte('/')
		if seg.param == "" {
			b.WriteString(seg.literal)
			continue
		}
		value := strings.TrimSpace(params[seg.param])
		if value == "" {
			return "", fmt.Errorf("%w %q", errMissingParam, seg.param)
		}
		b.WriteString(url.PathEscape(value))
	}
	return b.String(), nil
}

// pathSegments splits an escaped path into unescaped segments.
func pathSegments(rawPath string) ([]string, bool) {
	if rawPath == "" {
		rawPath = "/"
	}
	if !strings.HasPrefix(rawPath, "/") {
		return nil, false
	}
	if len(rawPath) > 1 {
		rawPath = strings.TrimSuffix(rawPath, "/")
	}
	trimmed := strings.TrimPrefix(rawPath, "/")
	if trimmed == "" {
		return nil, true
	}
	parts := strings.Split(trimmed, "/")
	for idx, part := range parts {
		value, err := url.PathUnescape(part)
		if err != nil {
			return nil, false
		}
		parts[idx] = value
	}
	return parts, true
}
