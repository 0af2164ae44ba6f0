// Package dbfactory parses database demo flags and runs one query through a
// vendor family.
package dbfactory

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/louisbranch/creational/internal/database"
	"github.com/louisbranch/creational/internal/database/sqlite"
	entrypoint "github.com/louisbranch/creational/internal/platform/cmd"
	apperrors "github.com/louisbranch/creational/internal/platform/errors"
)

// Config holds dbfactory command configuration.
type Config struct {
	Vendor     string `env:"DB_VENDOR"`
	SQLitePath string `env:"DB_SQLITE_PATH" envDefault:":memory:"`
	Query      string `env:"DB_QUERY" envDefault:"SELECT * FROM some_table"`
	Locale     string `env:"LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Vendor, "vendor", cfg.Vendor, "Database family: mysql, postgres, oracle or sqlite (default: build tag selection)")
	fs.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "SQLite database path for the sqlite family")
	fs.StringVar(&cfg.Query, "query", cfg.Query, "Query to execute")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale for error messages")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) resolveVendor() database.Vendor {
	if strings.TrimSpace(c.Vendor) == "" {
		return database.DefaultVendor
	}
	return database.ParseVendor(c.Vendor)
}

// Run connects through the selected family, executes the configured query
// and reports the row count to out. Vendor activity is logged to out. A query
// the database rejects is reported on errOut; connection failures are
// returned.
func Run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.DemoDBFactory, func(ctx context.Context) error {
		path := cfg.SQLitePath
		if path == "" {
			path = sqlite.MemoryPath
		}
		factory := database.NewFactory(cfg.resolveVendor(),
			database.WithLogger(log.New(out, "", 0)),
			database.WithSQLitePath(path),
		)

		conn := factory.CreateConnection()
		cmd := factory.CreateCommand()
		if err := conn.Connect(ctx); err != nil {
			return fmt.Errorf("connect %s: %w", factory.Vendor(), err)
		}
		defer func() {
			if err := conn.Close(); err != nil {
				log.Printf("close %s: %v", factory.Vendor(), err)
			}
		}()

		result, err := cmd.Execute(ctx, cfg.Query)
		if apperrors.GetCode(err) == apperrors.CodeDatabaseQueryFailed {
			fmt.Fprintln(errOut, apperrors.LocalizedMessage(err, cfg.Locale))
			return nil
		}
		if err != nil {
			return fmt.Errorf("execute on %s: %w", factory.Vendor(), err)
		}
		fmt.Fprintf(out, "%s: %d rows\n", result.Vendor, result.Rows)
		return nil
	})
}
