package parsley

import (
	"strconv"
	"strings"
)

// A Template is one {{name|args}} invocation found in wikitext,
// interpreted structurally rather than expanded.
type Template struct {
	Name      string
	Args      []string
	NamedArgs map[string]string
}

// Arg returns the i-th positional argument, or "" if absent.
func (t *Template) Arg(i int) string {
	if i < 0 || i >= len(t.Args) {
		return ""
	}
	return t.Args[i]
}

// FindTemplates finds all the template invocations within a text span.
//
// Nested templates are reported too, innermost first, and their raw
// text remains part of the enclosing argument. A span with unbalanced
// braces yields no templates; it never fails.
func FindTemplates(text string) []Template {
	var rv []Template
	i := 0
	for i < len(text) {
		switch {
		case strings.HasPrefix(text[i:], "{{{"):
			// {{{...}}} is parameter syntax, which should not occur in
			// page bodies; skip it whole.
			i = skipPast(text, i+3, "}}}")
		case strings.HasPrefix(text[i:], "{{"):
			i, _ = scanTemplate(text, i+2, &rv)
		case strings.HasPrefix(text[i:], "<nowiki>"):
			i = skipPast(text, i+8, "</nowiki>")
		case strings.HasPrefix(text[i:], "<math>"):
			i = skipPast(text, i+6, "</math>")
		default:
			i++
		}
	}
	return rv
}

func skipPast(text string, i int, marker string) int {
	j := strings.Index(text[i:], marker)
	if j < 0 {
		return len(text)
	}
	return i + j + len(marker)
}

type rawArg struct {
	name  string
	named bool
	value string
}

// scanTemplate consumes one template body starting just past its
// opening braces. It returns the position after the closing braces and
// whether the template was balanced; an unbalanced body is dropped.
func scanTemplate(text string, i int, rv *[]Template) (int, bool) {
	var args []rawArg
	start := i
	name := ""
	named := false
	for i < len(text) {
		switch {
		case text[i] == '=' && !named:
			name = text[start:i]
			named = true
			i++
			start = i
		case text[i] == '|':
			args = append(args, rawArg{name, named, text[start:i]})
			i++
			start = i
			name = ""
			named = false
		case strings.HasPrefix(text[i:], "}}"):
			args = append(args, rawArg{name, named, text[start:i]})
			if t, ok := decodeArguments(args); ok {
				*rv = append(*rv, t)
			}
			return i + 2, true
		case strings.HasPrefix(text[i:], "{{{"):
			// Unexpanded parameter inside a template; give up on the
			// whole span.
			return skipPast(text, i+3, "}}}"), false
		case strings.HasPrefix(text[i:], "{{"):
			var ok bool
			i, ok = scanTemplate(text, i+2, rv)
			if !ok {
				return i, false
			}
		case strings.HasPrefix(text[i:], "[["):
			// Links may carry | and ]] delimiters of their own.
			i = skipPast(text, i+2, "]]")
		case strings.HasPrefix(text[i:], "<nowiki>"):
			i = skipPast(text, i+8, "</nowiki>")
		case strings.HasPrefix(text[i:], "<math>"):
			i = skipPast(text, i+6, "</math>")
		case text[i] == '\'':
			// Emphasis markers are plain text as far as templates go.
			for i < len(text) && text[i] == '\'' {
				i++
			}
		default:
			i++
		}
	}
	return i, false
}

// decodeArguments destructures raw template arguments into the name,
// the positional arguments (numbered parameters such as |2= land in
// their positional slot) and the remaining named arguments.
func decodeArguments(args []rawArg) (Template, bool) {
	name := strings.TrimSpace(args[0].value)
	if args[0].named || name == "" {
		return Template{}, false
	}
	t := Template{Name: name}
	next := 1
	for _, a := range args[1:] {
		value := strings.TrimSpace(a.value)
		if !a.named {
			setArg(&t.Args, next, value)
			next++
			continue
		}
		key := strings.TrimSpace(a.name)
		if n, err := strconv.Atoi(key); err == nil && n > 0 {
			setArg(&t.Args, n, value)
			continue
		}
		if t.NamedArgs == nil {
			t.NamedArgs = make(map[string]string)
		}
		t.NamedArgs[key] = value
	}
	return t, true
}

// setArg assigns the n-th (1-based) positional slot, growing as needed.
func setArg(args *[]string, n int, value string) {
	for len(*args) < n {
		*args = append(*args, "")
	}
	(*args)[n-1] = value
}
