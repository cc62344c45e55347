package contentstore

import (
	"context"
	"encoding/json"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/carebridge/medtour-backend/internal/domain/entities"
	"github.com/carebridge/medtour-backend/internal/domain/providers"
	"github.com/carebridge/medtour-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/carebridge/medtour-backend/pkg/errors"
)

// recordsTable holds one row per synced content record: the record id, its
// collection, the raw JSONB payload and the source creation time.
const recordsTable = "content_records"

// defaultLimit bounds unpaginated queries.
const defaultLimit = 100

// PostgresAdapter implements the ContentStore interface over the synced
// content mirror in PostgreSQL.
type PostgresAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPostgresAdapter creates a new content-store adapter
func NewPostgresAdapter(client *postgres.Client) providers.ContentStore {
	return &PostgresAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Query runs one content query and returns the matching page of raw records
// plus the total match count.
func (a *PostgresAdapter) Query(ctx context.Context, q providers.ContentQuery) ([]entities.Record, int, error) {
	where := []goqu.Expression{goqu.Ex{"collection": string(q.Collection)}}
	if len(q.IDs) > 0 {
		where = append(where, goqu.Ex{"id": q.IDs})
	}
	if q.TextField != "" && q.Text != "" {
		where = append(where, goqu.L("data ->> ? ILIKE ?", q.TextField, "%"+q.Text+"%"))
	}

	countSQL, countArgs, err := a.db.From(recordsTable).
		Select(goqu.COUNT("*")).
		Where(where...).
		ToSQL()
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to build count query", err)
	}

	var total int
	if err := a.client.DB().QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewExternalError("failed to count content records", err)
	}

	ds := a.db.From(recordsTable).
		Select("id", "data").
		Where(where...)
	if q.NewestFirst {
		ds = ds.Order(goqu.I("created_at").Desc())
	} else {
		ds = ds.Order(goqu.I("id").Asc())
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	ds = ds.Limit(uint(limit))
	if q.Offset > 0 {
		ds = ds.Offset(uint(q.Offset))
	}

	querySQL, queryArgs, err := ds.ToSQL()
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to build content query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, querySQL, queryArgs...)
	if err != nil {
		return nil, 0, apperrors.NewExternalError("failed to query content records", err)
	}
	defer rows.Close()

	var records []entities.Record
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, 0, apperrors.NewInternalError("failed to scan content record", err)
		}

		rec := entities.Record{}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &rec); err != nil {
				return nil, 0, apperrors.NewInternalError("failed to decode content record", err)
			}
		}
		// The row id is authoritative even when the payload carries its own.
		rec["id"] = id
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewExternalError("failed to iterate content records", err)
	}

	return records, total, nil
}
