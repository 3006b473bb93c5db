package parsley

import (
	"reflect"
	"testing"
)

func TestFindTemplates(t *testing.T) {
	tests := []struct {
		input    string
		expected []Template
	}{
		{
			"# {{plural of|en|dog}}",
			[]Template{{Name: "plural of", Args: []string{"en", "dog"}}},
		},
		{
			"# {{plural of |en| dog }}",
			[]Template{{Name: "plural of", Args: []string{"en", "dog"}}},
		},
		{
			"# {{alt form|en|2=color}}",
			[]Template{{Name: "alt form", Args: []string{"en", "color"}}},
		},
		{
			"# {{alternative form of|en|colour|from=British}}",
			[]Template{{
				Name:      "alternative form of",
				Args:      []string{"en", "colour"},
				NamedArgs: map[string]string{"from": "British"},
			}},
		},
		{
			// Nested templates are reported innermost first; the raw
			// inner text stays part of the outer argument.
			"{{der|en|enm|{{l|enm|dogge}}}}",
			[]Template{
				{Name: "l", Args: []string{"enm", "dogge"}},
				{Name: "der", Args: []string{"en", "enm", "{{l|enm|dogge}}"}},
			},
		},
		{
			// Pipes inside links are not argument separators.
			"{{l|en|[[dog|hound]]}}",
			[]Template{{Name: "l", Args: []string{"en", "[[dog|hound]]"}}},
		},
		{
			"''italic'' and '''bold''' text, no templates",
			nil,
		},
		{
			"{{l|en|it's|don't}}",
			[]Template{{Name: "l", Args: []string{"en", "it's", "don't"}}},
		},
		{
			// Unterminated template: the span yields nothing.
			"# {{plural of|en|cat",
			nil,
		},
		{
			// ...but a balanced sibling on the same span still counts.
			"{{rare}} then {{plural of|en|cat",
			[]Template{{Name: "rare"}},
		},
		{
			"<nowiki>{{plural of|en|dog}}</nowiki>",
			nil,
		},
		{
			"<math>{{a|b}}</math> {{l|en|x}}",
			[]Template{{Name: "l", Args: []string{"en", "x"}}},
		},
		{
			"{{{param}}} {{l|en|x}}",
			[]Template{{Name: "l", Args: []string{"en", "x"}}},
		},
		{
			"{{|no name}}",
			nil,
		},
	}

	for _, test := range tests {
		got := FindTemplates(test.input)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("Expected %#v for %q, got %#v",
				test.expected, test.input, got)
		}
	}
}

func TestTemplateArg(t *testing.T) {
	tmpl := Template{Name: "plural of", Args: []string{"en", "dog"}}
	if got := tmpl.Arg(0); got != "en" {
		t.Errorf("Expected en, got %q", got)
	}
	if got := tmpl.Arg(1); got != "dog" {
		t.Errorf("Expected dog, got %q", got)
	}
	if got := tmpl.Arg(2); got != "" {
		t.Errorf("Expected empty arg off the end, got %q", got)
	}
	if got := tmpl.Arg(-1); got != "" {
		t.Errorf("Expected empty arg for negative index, got %q", got)
	}
}
