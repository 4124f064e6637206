// Command objectgraph loads a YAML file of records into an object graph and
// runs a single query against it.
//
// Usage:
//
//	objectgraph [-file shirts.yaml] [-key sku] [-sorted] [-i] [-quiet] <command> [args...]
//
// Commands:
//
//	size                     number of records
//	keys                     record keys, in file order (natural order with -sorted)
//	get <key>                one record
//	values-of <field> [key]  distinct values of a field, optionally over some keys
//	match field=v1,v2 ...    records whose fields take one of the listed values
//	subgraph <key...>        the records stored under the given keys
//
// With -i the command and its arguments are chosen interactively.
//
// Environment:
//
//	OBJECTGRAPH_FILE       default for -file
//	OBJECTGRAPH_KEY_FIELD  default for -key (id)
//
// Results are written to stdout as YAML.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/amp-labs/objectgraph/logger"
)

func main() {
	logger.ConfigureLogging("objectgraph")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], os.Stdout)

	stop()

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		logger.Get(ctx).Error("objectgraph failed", "error", err)
		os.Exit(1)
	}
}
