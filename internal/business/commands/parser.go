package commands

import (
	"fmt"
	"strings"
)

// Usage is the generic hint shown when a command line cannot be parsed.
const Usage = "`/c <command> [--who <who>] [--what <what>] [--when <when>] [--event <event>] [--silent]`"

// Command is one parsed command line.
type Command struct {
	Verb   string
	Who    string
	What   string
	When   string
	Event  string
	Silent bool
}

// ParseError reports a malformed command line.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

type arity int

const (
	noValue arity = iota
	oneValue
	manyValues
)

type flagSpec struct {
	name  string
	arity arity
}

var flags = map[string]flagSpec{
	"--who":    {name: "who", arity: manyValues},
	"--what":   {name: "what", arity: manyValues},
	"--when":   {name: "when", arity: manyValues},
	"--event":  {name: "event", arity: oneValue},
	"--silent": {name: "silent", arity: noValue},
	"-s":       {name: "silent", arity: noValue},
}

// Parse splits a command line into its verb and flags. Multi-word values run
// until the next flag. The verb is not validated here.
func Parse(text string) (*Command, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 || isFlag(tokens[0]) {
		return nil, &ParseError{Message: "the following arguments are required: command"}
	}

	cmd := &Command{Verb: strings.ToLower(tokens[0])}

	for i := 1; i < len(tokens); {
		tok := tokens[i]
		if !isFlag(tok) {
			return nil, &ParseError{Message: fmt.Sprintf("unrecognized arguments: %s", strings.Join(tokens[i:], " "))}
		}

		name, inline, hasInline := strings.Cut(tok, "=")
		spec, ok := flags[name]
		if !ok {
			return nil, &ParseError{Message: fmt.Sprintf("unrecognized arguments: %s", tok)}
		}
		i++

		if spec.arity == noValue {
			if hasInline {
				return nil, &ParseError{Message: fmt.Sprintf("argument %s: ignored explicit argument '%s'", name, inline)}
			}
			cmd.Silent = true
			continue
		}

		var words []string
		if hasInline {
			words = append(words, inline)
		}
		for i < len(tokens) && !isFlag(tokens[i]) {
			if spec.arity == oneValue && len(words) == 1 {
				break
			}
			words = append(words, tokens[i])
			i++
		}

		value := cleanValue(strings.Join(words, " "))
		if value == "" {
			if spec.arity == oneValue {
				return nil, &ParseError{Message: fmt.Sprintf("argument %s: expected one argument", name)}
			}
			return nil, &ParseError{Message: fmt.Sprintf("argument %s: expected at least one argument", name)}
		}

		switch spec.name {
		case "who":
			cmd.Who = value
		case "what":
			cmd.What = value
		case "when":
			cmd.When = value
		case "event":
			cmd.Event = value
		}
	}

	return cmd, nil
}

func isFlag(tok string) bool {
	return len(tok) > 1 && strings.HasPrefix(tok, "-")
}

// cleanValue drops the quotes users wrap multi-word values in, including the
// typographic ones Slack clients substitute.
func cleanValue(v string) string {
	return strings.TrimSpace(strings.Trim(v, "\"“”"))
}
