package types

import "log/slog"

type (
	WarehouseDriver   string
	WarehousePassword string
	GoogleProjectID   string
)

const (
	WarehouseDriverOracle   WarehouseDriver = "oracle"
	WarehouseDriverPostgres WarehouseDriver = "postgres"
	WarehouseDriverSQLite   WarehouseDriver = "sqlite"
	WarehouseDriverBigQuery WarehouseDriver = "bigquery"
)

func (x WarehouseDriver) String() string {
	return string(x)
}

func (x GoogleProjectID) String() string {
	return string(x)
}

func (x WarehousePassword) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WarehousePassword) String() string {
	return "***********"
}
