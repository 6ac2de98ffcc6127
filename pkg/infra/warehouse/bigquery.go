package warehouse

import (
	"context"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/interfaces"
	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// BigQuery is a warehouse backed by BigQuery jobs. Query arguments are bound
// as positional parameters (`?`).
type BigQuery struct {
	client *bigquery.Client
}

var _ interfaces.Warehouse = (*BigQuery)(nil)

func NewBigQuery(ctx context.Context, projectID types.GoogleProjectID, options ...option.ClientOption) (*BigQuery, error) {
	client, err := bigquery.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}
	return &BigQuery{client: client}, nil
}

func (x *BigQuery) newQuery(query string, args []any) *bigquery.Query {
	q := x.client.Query(query)
	for _, arg := range args {
		q.Parameters = append(q.Parameters, bigquery.QueryParameter{Value: arg})
	}
	return q
}

func (x *BigQuery) Exec(ctx context.Context, query string, args ...any) error {
	logging.From(ctx).Debug("exec BigQuery statement", slog.String("query", query))

	job, err := x.newQuery(query, args).Run(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to run BigQuery job", goerr.V("query", query))
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to wait BigQuery job", goerr.V("query", query), goerr.V("jobID", job.ID()))
	}
	if err := status.Err(); err != nil {
		return goerr.Wrap(err, "BigQuery job failed", goerr.V("query", query), goerr.V("jobID", job.ID()))
	}
	return nil
}

func (x *BigQuery) Query(ctx context.Context, query string, args ...any) (*model.Table, error) {
	logging.From(ctx).Debug("run BigQuery query", slog.String("query", query))

	it, err := x.newQuery(query, args).Read(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to run BigQuery query", goerr.V("query", query))
	}

	table := &model.Table{}
	for {
		var row []bigquery.Value
		if err := it.Next(&row); err == iterator.Done {
			break
		} else if err != nil {
			return nil, goerr.Wrap(err, "failed to read BigQuery row", goerr.V("query", query))
		}

		values := make([]any, len(row))
		for i, v := range row {
			values[i] = v
		}
		table.Rows = append(table.Rows, values)
	}

	for _, field := range it.Schema {
		table.Columns = append(table.Columns, field.Name)
	}

	return table, nil
}

// CallProcedure is not available for BigQuery
func (x *BigQuery) CallProcedure(ctx context.Context, name string, args ...any) error {
	return goerr.Wrap(types.ErrInvalidOption, "stored procedure is not supported by BigQuery warehouse", goerr.V("name", name))
}

func (x *BigQuery) Close() error {
	if err := x.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close BigQuery client")
	}
	return nil
}
