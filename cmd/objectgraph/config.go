package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/objectgraph/envutil"
)

var (
	errNoFile    = errors.New("no record file: pass -file or set OBJECTGRAPH_FILE")
	errBlankName = errors.New("must not be blank")
)

type config struct {
	File        string
	KeyField    string
	Sorted      bool
	Interactive bool
	Quiet       bool
}

// parseFlags reads defaults from the environment, then lets flags override
// them. It returns the remaining positional arguments.
func parseFlags(args []string, output io.Writer) (config, []string, error) {
	cfg := config{
		File:     envutil.String("OBJECTGRAPH_FILE", envutil.Default("")).ValueOrElse(""),
		KeyField: envutil.String("OBJECTGRAPH_KEY_FIELD",
			envutil.Default("id"), envutil.Validate(notBlank)).ValueOrElse("id"),
	}

	fs := flag.NewFlagSet("objectgraph", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.File, "file", cfg.File, "YAML or JSON file holding a list of records")
	fs.StringVar(&cfg.KeyField, "key", cfg.KeyField, "record field used as the key")
	fs.BoolVar(&cfg.Sorted, "sorted", false, "print keys in natural order")
	fs.BoolVar(&cfg.Interactive, "i", false, "choose the command interactively")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress diagnostic logging")

	if err := fs.Parse(args); err != nil {
		return config{}, nil, err
	}

	if cfg.File == "" {
		return config{}, nil, errNoFile
	}

	if cfg.KeyField == "" {
		return config{}, nil, fmt.Errorf("%w: -key must not be empty", errUsage)
	}

	return cfg, fs.Args(), nil
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errBlankName
	}

	return nil
}
