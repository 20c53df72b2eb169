// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/missed-stops-report/infrastructure/database/postgres"
	"github.com/vfg2006/missed-stops-report/internal/domain"
)

//go:generate mockgen -source=worksheet.go -destination=mocks/worksheet.go -package=mocks

const (
	worksheetTable = "missed_stop_worksheet"

	// limite de linhas por INSERT para ficar abaixo do máximo de parâmetros do postgres
	worksheetBatchSize = 500
)

const createWorksheetTable = `
CREATE TABLE IF NOT EXISTS missed_stop_worksheet (
	customer_id                TEXT          NOT NULL,
	expected_day_of_sale       DATE          NOT NULL,
	run_id                     TEXT          NOT NULL,
	territory                  TEXT          NOT NULL,
	phase                      INTEGER       NOT NULL,
	day_of_week                INTEGER       NOT NULL,
	region                     TEXT,
	invoice_on_expected_day    DATE,
	sale_made_on_expected_day  BOOLEAN       NOT NULL,
	net_sales_for_expected_day NUMERIC(14,2) NOT NULL,
	positive_sale              BOOLEAN       NOT NULL,
	last_sale_date             DATE,
	last_sale_amount           NUMERIC(14,2),
	completion_status          TEXT          NOT NULL,
	survey_result              TEXT          NOT NULL,
	created_at                 TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at                 TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (customer_id, expected_day_of_sale)
)`

var worksheetColumns = []string{
	"customer_id",
	"expected_day_of_sale",
	"run_id",
	"territory",
	"phase",
	"day_of_week",
	"region",
	"invoice_on_expected_day",
	"sale_made_on_expected_day",
	"net_sales_for_expected_day",
	"positive_sale",
	"last_sale_date",
	"last_sale_amount",
	"completion_status",
	"survey_result",
}

type WorksheetRepository interface {
	EnsureSchema(ctx context.Context) error
	SaveWorksheet(ctx context.Context, worksheet *domain.Worksheet) error
	DeleteOlderThan(ctx context.Context, days int, now time.Time) (int64, error)
}

type worksheetRepository struct {
	conn postgres.Conn
}

func NewWorksheetRepository(conn postgres.Conn) WorksheetRepository {
	return &worksheetRepository{
		conn: conn,
	}
}

func (r *worksheetRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.Exec(ctx, createWorksheetTable); err != nil {
		return wrapDatabaseError("erro ao criar tabela da planilha", err)
	}
	return nil
}

// SaveWorksheet grava todas as linhas numa única transação; reprocessar o mesmo dia sobrescreve as linhas
func (r *worksheetRepository) SaveWorksheet(ctx context.Context, worksheet *domain.Worksheet) error {
	if worksheet == nil || len(worksheet.Rows) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for start := 0; start < len(worksheet.Rows); start += worksheetBatchSize {
			end := min(start+worksheetBatchSize, len(worksheet.Rows))

			sqlQuery, args, err := buildWorksheetUpsert(worksheet.RunID, worksheet.Rows[start:end])
			if err != nil {
				return fmt.Errorf("erro ao construir query de inserção: %w", err)
			}

			if _, err := q.Exec(ctx, sqlQuery, args...); err != nil {
				return wrapDatabaseError("erro ao executar query de inserção", err)
			}
		}
		return nil
	})
}

func (r *worksheetRepository) DeleteOlderThan(ctx context.Context, days int, now time.Time) (int64, error) {
	cutoffDate := now.AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete(worksheetTable).
		Where(squirrel.Lt{"expected_day_of_sale": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, wrapDatabaseError("erro ao executar a query", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func buildWorksheetUpsert(runID string, rows []domain.ReconciledRow) (string, []interface{}, error) {
	query := squirrel.StatementBuilder.
		Insert(worksheetTable).
		Columns(worksheetColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		var lastSaleDate *time.Time
		if row.LastSaleDate.Valid {
			date := row.LastSaleDate.Date
			lastSaleDate = &date
		}

		query = query.Values(
			row.CustomerID,
			row.ExpectedDayOfSale.Format("2006-01-02"),
			runID,
			row.Territory,
			row.Phase,
			row.DayOfWeek,
			row.Region,
			row.InvoiceOnExpectedDay,
			row.SaleMadeOnExpectedDay,
			row.NetSalesForExpectedDay,
			row.PositiveSale,
			lastSaleDate,
			row.LastSaleAmount,
			string(row.CompletionStatus),
			row.SurveyResult,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (customer_id, expected_day_of_sale) DO UPDATE SET
			run_id = EXCLUDED.run_id,
			territory = EXCLUDED.territory,
			phase = EXCLUDED.phase,
			day_of_week = EXCLUDED.day_of_week,
			region = EXCLUDED.region,
			invoice_on_expected_day = EXCLUDED.invoice_on_expected_day,
			sale_made_on_expected_day = EXCLUDED.sale_made_on_expected_day,
			net_sales_for_expected_day = EXCLUDED.net_sales_for_expected_day,
			positive_sale = EXCLUDED.positive_sale,
			last_sale_date = EXCLUDED.last_sale_date,
			last_sale_amount = EXCLUDED.last_sale_amount,
			completion_status = EXCLUDED.completion_status,
			survey_result = EXCLUDED.survey_result,
			updated_at = CURRENT_TIMESTAMP
	`)

	return query.ToSql()
}

func wrapDatabaseError(message string, err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("%s: erro no banco de dados: %w (código: %s)", message, pqErr, pqErr.Code)
	}
	return fmt.Errorf("%s: %w", message, err)
}
