package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/interfaces"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/infra/warehouse"
	"github.com/urfave/cli/v3"
)

type Warehouse struct {
	driver   string
	host     string
	port     int
	database string
	user     string
	password string
	sslMode  string

	bigQuery BigQuery
}

func (x *Warehouse) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "warehouse-driver",
			Usage:       "Warehouse driver [oracle|postgres|sqlite|bigquery]",
			Category:    "Warehouse",
			Destination: &x.driver,
			Sources:     cli.EnvVars("LINEAGE_WAREHOUSE_DRIVER"),
		},
		&cli.StringFlag{
			Name:        "warehouse-host",
			Usage:       "Warehouse host name",
			Category:    "Warehouse",
			Destination: &x.host,
			Sources:     cli.EnvVars("LINEAGE_WAREHOUSE_HOST"),
		},
		&cli.IntFlag{
			Name:        "warehouse-port",
			Usage:       "Warehouse port (default: 1521 for oracle, 5432 for postgres)",
			Category:    "Warehouse",
			Destination: &x.port,
			Sources:     cli.EnvVars("LINEAGE_WAREHOUSE_PORT"),
		},
		&cli.StringFlag{
			Name:        "warehouse-database",
			Usage:       "Service name (oracle), database name (postgres) or file path (sqlite)",
			Category:    "Warehouse",
			Destination: &x.database,
			Sources:     cli.EnvVars("LINEAGE_WAREHOUSE_DATABASE"),
		},
		&cli.StringFlag{
			Name:        "warehouse-user",
			Usage:       "Warehouse user",
			Category:    "Warehouse",
			Destination: &x.user,
			Sources:     cli.EnvVars("LINEAGE_WAREHOUSE_USER"),
		},
		&cli.StringFlag{
			Name:        "warehouse-password",
			Usage:       "Warehouse password",
			Category:    "Warehouse",
			Destination: &x.password,
			Sources:     cli.EnvVars("LINEAGE_WAREHOUSE_PASSWORD"),
		},
		&cli.StringFlag{
			Name:        "warehouse-sslmode",
			Usage:       "sslmode of postgres connection",
			Category:    "Warehouse",
			Destination: &x.sslMode,
			Sources:     cli.EnvVars("LINEAGE_WAREHOUSE_SSLMODE"),
		},
	}
	return append(flags, x.bigQuery.Flags()...)
}

func (x *Warehouse) endpoint() *warehouse.Endpoint {
	ep := &warehouse.Endpoint{
		Host:     x.host,
		Port:     x.port,
		Database: x.database,
		User:     x.user,
		Password: types.WarehousePassword(x.password),
	}
	if x.sslMode != "" {
		ep.Options = map[string]string{"sslmode": x.sslMode}
	}
	return ep
}

// New connects to the configured warehouse
func (x *Warehouse) New(ctx context.Context) (interfaces.Warehouse, error) {
	driver := types.WarehouseDriver(x.driver)
	switch driver {
	case "":
		return nil, goerr.Wrap(types.ErrInvalidOption, "warehouse driver is required")

	case types.WarehouseDriverBigQuery:
		return x.bigQuery.New(ctx)

	default:
		dsn, err := x.endpoint().DSN(driver)
		if err != nil {
			return nil, err
		}
		return warehouse.Open(ctx, driver, dsn)
	}
}

func (x *Warehouse) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Driver", x.driver),
		slog.String("Host", x.host),
		slog.Int("Port", x.port),
		slog.String("Database", x.database),
		slog.String("User", x.user),
		slog.Any("Password", types.WarehousePassword(x.password)),
		slog.Any("BigQuery", &x.bigQuery),
	)
}
