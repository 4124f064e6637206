package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/objectgraph/logger"
	"github.com/amp-labs/objectgraph/objectgraph"
	"github.com/amp-labs/objectgraph/recordio"
)

var errUsage = errors.New("usage")

type graph = objectgraph.Graph[objectgraph.Fields]

type command struct {
	name    string
	usage   string
	minArgs int
	run     func(cfg config, g *graph, args []string) (any, error)
}

var commands = []command{ //nolint:gochecknoglobals
	{name: "size", usage: "size", run: sizeCmd},
	{name: "keys", usage: "keys", run: keysCmd},
	{name: "get", usage: "get <key>", minArgs: 1, run: getCmd},
	{name: "values-of", usage: "values-of <field> [key...]", minArgs: 1, run: valuesOfCmd},
	{name: "match", usage: "match field=v1,v2 ...", run: matchCmd},
	{name: "subgraph", usage: "subgraph <key...>", minArgs: 1, run: subgraphCmd},
}

func lookup(name string) (command, error) {
	for _, c := range commands {
		if c.name == name {
			return c, nil
		}
	}

	return command{}, fmt.Errorf("%w: unknown command %q", errUsage, name)
}

func commandNames() []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.name
	}

	return names
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, rest, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}

	ctx = logger.WithMuted(logger.With(ctx, "file", cfg.File), cfg.Quiet)

	g, err := load(ctx, cfg)
	if err != nil {
		return err
	}

	var name string

	if cfg.Interactive {
		name, rest, err = chooseInteractively(g)
		if err != nil {
			return err
		}
	} else {
		if len(rest) == 0 {
			return fmt.Errorf("%w: missing command, one of %s", errUsage, strings.Join(commandNames(), ", "))
		}

		name, rest = rest[0], rest[1:]
	}

	ctx = logger.WithSubsystem(ctx, "objectgraph/"+name)
	logger.Get(ctx).Debug("running command", "args", rest)

	result, err := execute(cfg, g, name, rest)
	if err != nil {
		return err
	}

	return recordio.Write(stdout, result)
}

func execute(cfg config, g *graph, name string, args []string) (any, error) {
	cmd, err := lookup(name)
	if err != nil {
		return nil, err
	}

	if len(args) < cmd.minArgs {
		return nil, fmt.Errorf("%w: %s", errUsage, cmd.usage)
	}

	return cmd.run(cfg, g, args)
}

func load(ctx context.Context, cfg config) (*graph, error) {
	records, err := recordio.ReadFile(cfg.File)
	if err != nil {
		return nil, err
	}

	g, err := objectgraph.New(records, objectgraph.KeyByField[objectgraph.Fields](cfg.KeyField),
		objectgraph.WithReporter(objectgraph.LogReporter(logger.Get(ctx))))
	if err != nil {
		return nil, fmt.Errorf("building graph from %s: %w", cfg.File, err)
	}

	logger.Get(ctx).Debug("loaded records", "key", cfg.KeyField, "size", g.Size())

	return g, nil
}

func sizeCmd(_ config, g *graph, _ []string) (any, error) {
	return g.Size(), nil
}

func keysCmd(cfg config, g *graph, _ []string) (any, error) {
	if cfg.Sorted {
		return g.SortedKeys(), nil
	}

	keys := make([]string, 0, g.Size())
	for k := range g.Keys() {
		keys = append(keys, k)
	}

	return keys, nil
}

func getCmd(_ config, g *graph, args []string) (any, error) {
	return g.Get(args[0])
}

func valuesOfCmd(_ config, g *graph, args []string) (any, error) {
	return g.ValuesOf(args[0], args[1:]...)
}

func subgraphCmd(_ config, g *graph, args []string) (any, error) {
	sub, err := g.Subgraph(args)
	if err != nil {
		return nil, err
	}

	return sub.All(), nil
}

func matchCmd(_ config, g *graph, args []string) (any, error) {
	shape, err := parseShape(args)
	if err != nil {
		return nil, err
	}

	return g.Match(shape)
}

// parseShape turns field=v1,v2 arguments into a Shape. A single value means
// Is, a comma separated list means In. Values are read as YAML scalars.
func parseShape(args []string) (objectgraph.Shape, error) {
	shape := objectgraph.Shape{}

	for _, arg := range args {
		field, values, ok := strings.Cut(arg, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("%w: expected field=value, got %q", errUsage, arg)
		}

		parts := strings.Split(values, ",")
		if len(parts) == 1 {
			shape[field] = objectgraph.Is(recordio.ParseScalar(parts[0]))

			continue
		}

		candidates := make([]any, len(parts))
		for i, p := range parts {
			candidates[i] = recordio.ParseScalar(p)
		}

		shape[field] = objectgraph.In(candidates...)
	}

	return shape, nil
}
