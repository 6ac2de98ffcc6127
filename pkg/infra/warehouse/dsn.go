package warehouse

import (
	"net"
	"net/url"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	go_ora "github.com/sijms/go-ora/v2"
)

// Endpoint is connection parameters of a network warehouse. Database is the
// service name for Oracle and the database name for PostgreSQL.
type Endpoint struct {
	Host     string
	Port     int
	Database string
	User     string
	Password types.WarehousePassword
	Options  map[string]string
}

// DSN builds a data source name for driver. For sqlite, Database is the file path.
func (x *Endpoint) DSN(driver types.WarehouseDriver) (string, error) {
	switch driver {
	case types.WarehouseDriverOracle:
		if x.Host == "" || x.Database == "" {
			return "", goerr.Wrap(types.ErrInvalidOption, "oracle requires host and service name")
		}
		port := x.Port
		if port == 0 {
			port = 1521
		}
		return go_ora.BuildUrl(x.Host, port, x.Database, x.User, string(x.Password), x.Options), nil

	case types.WarehouseDriverPostgres:
		if x.Host == "" || x.Database == "" {
			return "", goerr.Wrap(types.ErrInvalidOption, "postgres requires host and database name")
		}
		port := x.Port
		if port == 0 {
			port = 5432
		}
		u := &url.URL{
			Scheme: "postgres",
			Host:   net.JoinHostPort(x.Host, strconv.Itoa(port)),
			Path:   "/" + x.Database,
		}
		if x.User != "" {
			u.User = url.UserPassword(x.User, string(x.Password))
		}
		q := url.Values{}
		for k, v := range x.Options {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
		return u.String(), nil

	case types.WarehouseDriverSQLite:
		if x.Database == "" {
			return "", goerr.Wrap(types.ErrInvalidOption, "sqlite requires database file path")
		}
		return x.Database, nil

	default:
		return "", goerr.Wrap(types.ErrInvalidOption, "unsupported warehouse driver", goerr.V("driver", driver))
	}
}
