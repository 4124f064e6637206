package main

import (
	"strings"

	"github.com/amp-labs/objectgraph/cli"
)

// chooseInteractively asks for a command, then for whatever arguments it
// takes. Keys are picked from the graph rather than typed.
func chooseInteractively(g *graph) (string, []string, error) {
	name, err := cli.Select("Command", commandNames()...)
	if err != nil {
		return "", nil, err
	}

	var args []string

	switch name {
	case "get":
		key, err := cli.Select("Key", g.SortedKeys()...)
		if err != nil {
			return "", nil, err
		}

		args = []string{key}
	case "values-of":
		field, err := cli.PromptString("Field")
		if err != nil {
			return "", nil, err
		}

		keys, err := cli.MultiSelect("Keys (none for all)", g.SortedKeys()...)
		if err != nil {
			return "", nil, err
		}

		args = append([]string{field}, keys...)
	case "subgraph":
		args, err = cli.MultiSelect("Keys", g.SortedKeys()...)
		if err != nil {
			return "", nil, err
		}
	case "match":
		line, err := cli.PromptStringEmptyOk("Constraints (field=v1,v2 ...)")
		if err != nil {
			return "", nil, err
		}

		args = strings.Fields(line)
	}

	return name, args, nil
}
