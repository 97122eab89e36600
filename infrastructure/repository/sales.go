package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/Tumi03-data/dash-dashboard/infrastructure/database/postgres"
	"github.com/Tumi03-data/dash-dashboard/internal/domain"
)

const salesRecordsTable = "sales_records"

// SalesRepository carrega o dataset de vendas para memória. O dataset é
// tratado como somente-leitura depois de carregado.
type SalesRepository interface {
	ListSalesRecords(ctx context.Context) (*domain.SalesDataset, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func (r *salesRepository) ListSalesRecords(ctx context.Context) (*domain.SalesDataset, error) {
	queryBuilder := squirrel.
		Select(domain.SalesRequiredColumns...).
		From(salesRecordsTable).
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

	dataset := &domain.SalesDataset{
		Columns: append([]string{}, domain.SalesRequiredColumns...),
		Records: []domain.SalesRecord{},
	}

	for rows.Next() {
		var record domain.SalesRecord
		err := rows.Scan(
			&record.Month,
			&record.CurrentYearRevenue,
			&record.PriorYearRevenue,
			&record.Profit,
			&record.Quantity,
			&record.Channel,
			&record.ProductLine,
			&record.Salesperson,
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
