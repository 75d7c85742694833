package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/SergeyKozhin/presenter-bot/internal/model"
	"github.com/SergeyKozhin/presenter-bot/internal/store"
)

type handler func(e *Executor, ctx context.Context, events store.Events, cmd *Command) (string, error)

// Descriptor documents one verb and points at the method executing it.
type Descriptor struct {
	Verb  string
	Help  string
	Usage string
	run   handler
}

var descriptors = []Descriptor{
	{
		Verb:  "next",
		Help:  "Displays the next event.",
		Usage: "`/c next`",
		run:   (*Executor).next,
	},
	{
		Verb:  "upcoming",
		Help:  "Lists all planned events.",
		Usage: "`/c upcoming`",
		run:   (*Executor).upcoming,
	},
	{
		Verb: "schedule",
		Help: "Lets you schedule a new event. " +
			"The date you pick has to exist and be vacant. " +
			"To add a new date, see the `add` command. " +
			"In order to cancel an event, see the `cancel` command. " +
			"(Pro-tip: you don't have to specify an exact date – `in two weeks` and `13 nov` works just as well!)",
		Usage: "`/c schedule --who <who> --what <what> --when <when>`",
		run:   (*Executor).schedule,
	},
	{
		Verb:  "add",
		Help:  "Adds a new (empty) date to the schedule of type <event>. Allowed event types: " + eventTypeList(),
		Usage: "`/c add --event <event> --when yyyy-mm-dd`",
		run:   (*Executor).add,
	},
	{
		Verb:  "remove",
		Help:  "Removes an existing date from the schedule.",
		Usage: "`/c remove --when yyyy-mm-dd`",
		run:   (*Executor).remove,
	},
	{
		Verb:  "help",
		Help:  "Displays this help text.",
		Usage: "`/c help`",
		run:   (*Executor).help,
	},
	{
		Verb:  "clear",
		Help:  "Clears both the current presenter and the topic (`who` and `what`) on the selected date.",
		Usage: "`/c clear --when yyyy-mm-dd`",
		run:   (*Executor).clear,
	},
	{
		Verb:  "cancel",
		Help:  "Cancels the event on the specified date.",
		Usage: "`/c cancel --when yyyy-mm-dd --what <reason>`",
		run:   (*Executor).cancel,
	},
	{
		Verb:  "shorthands",
		Help:  "Displays shorthand versions of the commands",
		Usage: "`/c shorthands`",
		run:   (*Executor).shorthands,
	},
}

// DefaultCatalog is built once at start up and never modified.
var DefaultCatalog = NewCatalog(descriptors)

// Catalog is the ordered verb table together with its shorthands.
type Catalog struct {
	descriptors []Descriptor
	byVerb      map[string]int
	shorthands  map[string]string
	shortByVerb map[string]string
}

func NewCatalog(ds []Descriptor) *Catalog {
	c := &Catalog{
		descriptors: ds,
		byVerb:      make(map[string]int, len(ds)),
		shortByVerb: make(map[string]string, len(ds)),
	}

	verbs := make([]string, len(ds))
	for i, d := range ds {
		verbs[i] = d.Verb
		c.byVerb[d.Verb] = i
	}

	c.shorthands = Shorthands(verbs)
	for short, verb := range c.shorthands {
		c.shortByVerb[verb] = short
	}

	return c
}

// Lookup resolves a shorthand or full verb name.
func (c *Catalog) Lookup(token string) (Descriptor, bool) {
	if verb, ok := c.shorthands[token]; ok {
		token = verb
	}

	i, ok := c.byVerb[token]
	if !ok {
		return Descriptor{}, false
	}

	return c.descriptors[i], true
}

func (c *Catalog) Descriptors() []Descriptor {
	res := make([]Descriptor, len(c.descriptors))
	copy(res, c.descriptors)
	return res
}

func (c *Catalog) Verbs() []string {
	res := make([]string, len(c.descriptors))
	for i, d := range c.descriptors {
		res[i] = d.Verb
	}
	return res
}

// Shorthand returns the shorthand assigned to verb.
func (c *Catalog) Shorthand(verb string) string {
	return c.shortByVerb[verb]
}

func eventTypeList() string {
	names := make([]string, len(model.EventTypes))
	for i, t := range model.EventTypes {
		names[i] = fmt.Sprintf("`%s`", t)
	}
	return strings.Join(names, ", ")
}
