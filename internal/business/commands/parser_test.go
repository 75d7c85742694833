package commands

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Command
	}{
		{
			name:     "verb only",
			text:     "next",
			expected: Command{Verb: "next"},
		},
		{
			name:     "multi word values",
			text:     `schedule --who Ada Lovelace --what "The Analytical Engine" --when in two weeks`,
			expected: Command{Verb: "schedule", Who: "Ada Lovelace", What: "The Analytical Engine", When: "in two weeks"},
		},
		{
			name:     "event and silent",
			text:     "add --event fagdag --when 2099-01-01 --silent",
			expected: Command{Verb: "add", Event: "fagdag", When: "2099-01-01", Silent: true},
		},
		{
			name:     "short silent between flags",
			text:     "cancel -s --when 13 nov --what sick",
			expected: Command{Verb: "cancel", When: "13 nov", What: "sick", Silent: true},
		},
		{
			name:     "inline value",
			text:     "clear --when=2099-01-01",
			expected: Command{Verb: "clear", When: "2099-01-01"},
		},
		{
			name:     "typographic quotes",
			text:     "schedule --who “Grace Hopper” --what COBOL --when 2099-01-01",
			expected: Command{Verb: "schedule", Who: "Grace Hopper", What: "COBOL", When: "2099-01-01"},
		},
		{
			name:     "last flag wins",
			text:     "clear --when 2099-01-01 --when 2099-01-08",
			expected: Command{Verb: "clear", When: "2099-01-08"},
		},
		{
			name:     "unknown verb is not a parse error",
			text:     "dance --who me",
			expected: Command{Verb: "dance", Who: "me"},
		},
		{
			name:     "lone dash is a value",
			text:     "schedule --what Go - the language --who me --when 2099-01-01",
			expected: Command{Verb: "schedule", What: "Go - the language", Who: "me", When: "2099-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.text, err)
			}
			if *got != tt.expected {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.text, *got, tt.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"flag first", "--who me"},
		{"unknown flag", "add --foo bar"},
		{"missing value", "schedule --who --what x --when y"},
		{"missing trailing value", "add --when"},
		{"stray positional", "add fagdag"},
		{"event takes one word", "add --event fag dag --when 2099-01-01"},
		{"silent takes no value", "next --silent=yes"},
		{"only quotes", `schedule --who "" --what x --when y`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse(%q) err = %v, want *ParseError", tt.text, err)
			}
			if parseErr.Message == "" {
				t.Error("ParseError without message")
			}
		})
	}
}
