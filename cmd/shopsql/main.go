package main

import (
	"flag"
	"github.com/ansel1/merry"
	"github.com/fpawel/shopsql/internal/app"
	"github.com/fpawel/shopsql/internal/data"
	"github.com/powerman/structlog"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}

// run logs every error it returns.
func run(args []string, w io.Writer) error {
	flags := flag.NewFlagSet("shopsql", flag.ContinueOnError)
	configFile := flags.String("config", "", `config file, .toml or .yaml, created with defaults if missing;
SHOPSQL_DRIVER, SHOPSQL_HOST, SHOPSQL_PORT, SHOPSQL_USER, SHOPSQL_PASSWORD,
SHOPSQL_DATABASE, SHOPSQL_AUTH_MODE, SHOPSQL_SEED_MODE override it`)
	orderID := flags.Int64("order", 0, "order listed in section 4, overrides order_id from config")
	verbose := flags.Bool("v", false, "debug log")
	if err := flags.Parse(args); err != nil {
		return err
	}

	level := structlog.INF
	if *verbose {
		level = structlog.DBG
	}
	app.InitLog(level)
	log := structlog.New()

	c, err := app.LoadConfig(*configFile)
	if err != nil {
		log.PrintErr(err)
		return err
	}
	if *orderID != 0 {
		c.OrderID = *orderID
	}
	log = log.New("driver", c.Driver, "database", c.Database).PrependSuffixKeys("driver", "database")

	err = app.Run(c, w)
	switch {
	case err == nil:
	case data.IsDatabaseError(err):
		log.PrintErr(merry.Prepend(err, "database error"))
	default:
		log.PrintErr(err)
	}
	return err
}
