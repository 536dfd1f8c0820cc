/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package pathtemplates

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/suparena/pathtemplates/errors"
)

// identPattern matches a valid placeholder identifier.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// segment is one piece of a parsed template: either literal text (name is
// empty) or a placeholder with an optional format spec.
type segment struct {
	text string
	name string
	spec string
}

// containsPlaceholder reports whether s holds brace syntax that needs
// resolve-time substitution. Doubled braces are literal text; a stray single
// brace counts as a placeholder so the malformed template is reported when
// it is resolved, not when it is added.
func containsPlaceholder(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '}' {
			if i+1 < len(s) && s[i+1] == s[i] {
				i++
				continue
			}
			return true
		}
	}
	return false
}

// parseTemplate splits a template into literal and placeholder segments.
// The alias is only used in error messages.
func parseTemplate(alias, tpl string) ([]segment, error) {
	var segs []segment
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			segs = append(segs, segment{text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(tpl); i++ {
		switch tpl[i] {
		case '{':
			if i+1 < len(tpl) && tpl[i+1] == '{' {
				text.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tpl[i+1:], '}')
			if end < 0 {
				return nil, errors.NewTemplateError(alias, fmt.Sprintf("unclosed '{' at offset %d", i))
			}
			body := tpl[i+1 : i+1+end]
			name, spec := body, ""
			if colon := strings.IndexByte(body, ':'); colon >= 0 {
				name, spec = body[:colon], body[colon+1:]
			}
			if !identPattern.MatchString(name) {
				return nil, errors.NewTemplateError(alias, fmt.Sprintf("invalid placeholder name %q", name))
			}
			flush()
			segs = append(segs, segment{name: name, spec: spec})
			i += end + 1
		case '}':
			if i+1 < len(tpl) && tpl[i+1] == '}' {
				text.WriteByte('}')
				i++
				continue
			}
			return nil, errors.NewTemplateError(alias, fmt.Sprintf("single '}' at offset %d", i))
		default:
			text.WriteByte(tpl[i])
		}
	}
	flush()

	return segs, nil
}

// substitute fills the placeholders of a template. Argument values take
// precedence over sibling aliases; sibling aliases are resolved recursively
// with no arguments. Placeholders with neither are collected and reported
// together.
func (r *Registry) substitute(tpl string, args Args, stack []string) (string, error) {
	alias := stack[len(stack)-1]

	segs, err := parseTemplate(alias, tpl)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	var missing []string
	reported := make(map[string]bool)

	for _, seg := range segs {
		if seg.name == "" {
			out.WriteString(seg.text)
			continue
		}

		if v, ok := args[seg.name]; ok {
			s, ok := formatValue(v, seg.spec)
			if !ok {
				return "", errors.NewFormatError(alias, seg.name, seg.spec, v)
			}
			out.WriteString(s)
			continue
		}

		if _, ok := r.bindings[seg.name]; ok {
			pv, err := r.resolve(seg.name, nil, stack)
			if err == nil {
				s, ok := formatValue(pv.String(), seg.spec)
				if !ok {
					return "", errors.NewFormatError(alias, seg.name, seg.spec, pv.String())
				}
				out.WriteString(s)
				continue
			}
			if errors.IsCyclicReference(err) {
				return "", err
			}
			// The sibling alias exists but cannot resolve without
			// arguments; the caller may still supply a value directly.
		}

		if !reported[seg.name] {
			reported[seg.name] = true
			missing = append(missing, seg.name)
		}
	}

	if len(missing) > 0 {
		return "", errors.NewPlaceholderError(alias, missing)
	}

	return out.String(), nil
}

// formatValue renders a single placeholder value through fmt. A spec of
// "03d" is applied as "%03d"; an explicit leading '%' is also accepted. A
// "%!" marker in fmt's output means the verb did not apply to the value.
func formatValue(v any, spec string) (string, bool) {
	if spec == "" {
		switch s := v.(type) {
		case string:
			return s, true
		case fmt.Stringer:
			return s.String(), true
		default:
			return fmt.Sprintf("%v", v), true
		}
	}

	verb := spec
	if !strings.HasPrefix(verb, "%") {
		verb = "%" + verb
	}
	out := fmt.Sprintf(verb, v)
	if strings.Contains(out, "%!") {
		return "", false
	}
	return out, true
}
