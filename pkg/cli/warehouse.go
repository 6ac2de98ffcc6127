package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/lineage/pkg/cli/config"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/infra"
	"github.com/secmon-lab/lineage/pkg/usecase"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
	"github.com/secmon-lab/lineage/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// withWarehouse connects to the configured warehouse and closes it after f returns
func withWarehouse(ctx context.Context, cfg *config.Warehouse, f func(uc *usecase.UseCase) error) error {
	logging.From(ctx).Debug("Warehouse config", slog.Any("Warehouse", cfg))

	wh, err := cfg.New(ctx)
	if err != nil {
		return err
	}
	defer safe.Close(ctx, wh)

	return f(usecase.New(infra.New(infra.WithWarehouse(wh))))
}

func queryArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

func argFlag(dst *[]string) cli.Flag {
	return &cli.StringSliceFlag{
		Name:        "arg",
		Aliases:     []string{"a"},
		Usage:       "Bind argument of the query or procedure in order (repeatable)",
		Destination: dst,
	}
}

func (x *CLI) queryCommand() *cli.Command {
	var (
		wh      config.Warehouse
		query   string
		args    []string
		columns bool
	)

	return &cli.Command{
		Name:  "query",
		Usage: "Run a query and print the result",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "SQL query",
				Required:    true,
				Destination: &query,
			},
			argFlag(&args),
			&cli.BoolFlag{
				Name:        "columns",
				Usage:       "Print values grouped by column name instead of rows",
				Destination: &columns,
			},
		}, wh.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			return withWarehouse(ctx, &wh, func(uc *usecase.UseCase) error {
				if columns {
					values, err := uc.QueryColumns(ctx, query, queryArgs(args)...)
					if err != nil {
						return err
					}
					return writeJSON(x.out, values)
				}

				rows, err := uc.QueryRows(ctx, query, queryArgs(args)...)
				if err != nil {
					return err
				}
				return writeJSON(x.out, rows)
			})
		},
	}
}

func (x *CLI) dumpCommand() *cli.Command {
	var (
		wh     config.Warehouse
		query  string
		output string
	)

	return &cli.Command{
		Name:  "dump",
		Usage: "Write a query result to a ';' separated file with header",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "SQL query",
				Required:    true,
				Destination: &query,
			},
			&cli.StringFlag{
				Name:        "output",
				Usage:       "Output file path. Not created if the result is empty",
				Required:    true,
				Destination: &output,
			},
		}, wh.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			return withWarehouse(ctx, &wh, func(uc *usecase.UseCase) error {
				n, err := uc.DumpToFile(ctx, query, output)
				if err != nil {
					return err
				}
				return writeLine(x.out, n)
			})
		},
	}
}

func (x *CLI) execCommand() *cli.Command {
	var (
		wh        config.Warehouse
		query     string
		procedure string
		args      []string
	)

	return &cli.Command{
		Name:  "exec",
		Usage: "Execute a statement or call a stored procedure in a transaction",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "SQL statement",
				Destination: &query,
			},
			&cli.StringFlag{
				Name:        "procedure",
				Usage:       "Stored procedure name",
				Destination: &procedure,
			},
			argFlag(&args),
		}, wh.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if (query == "") == (procedure == "") {
				return goerr.Wrap(types.ErrInvalidOption, "either --query or --procedure must be specified")
			}

			return withWarehouse(ctx, &wh, func(uc *usecase.UseCase) error {
				if procedure != "" {
					return uc.CallProcedure(ctx, procedure, queryArgs(args)...)
				}
				return uc.Exec(ctx, query, queryArgs(args)...)
			})
		},
	}
}
