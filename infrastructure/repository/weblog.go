package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/Tumi03-data/dash-dashboard/infrastructure/database/postgres"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
)

const webLogsTable = "web_logs"

// WebLogRepository carrega o dataset de logs web para memória
type WebLogRepository interface {
	ListWebLogRecords(ctx context.Context) (*domain.WebLogDataset, error)
}

type webLogRepository struct {
	conn *postgres.Connection
}

func NewWebLogRepository(conn *postgres.Connection) WebLogRepository {
	return &webLogRepository{
		conn: conn,
	}
}

func (r *webLogRepository) ListWebLogRecords(ctx context.Context) (*domain.WebLogDataset, error) {
	queryBuilder := squirrel.
		Select(domain.WebLogRequiredColumns...).
		From(webLogsTable).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dataset := &domain.WebLogDataset{
		Columns: append([]string{}, domain.WebLogRequiredColumns...),
		Records: []domain.WebLogRecord{},
	}

	for rows.Next() {
		var record domain.WebLogRecord
		err := rows.Scan(
			&record.Country,
			&record.EventType,
			&record.WebTool,
			&record.Amount,
		)
		if err != nil {
			return nil, err
		}

		dataset.Records = append(dataset.Records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dataset, nil
}
