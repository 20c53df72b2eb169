package reconciling

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/utils"
)

// SaleCorrelator relaciona cada parada esperada às notas do cliente
type SaleCorrelator struct {
	window  domain.LookbackWindow
	runDate time.Time
	workers int
}

// NewSaleCorrelator cria o correlacionador. runDate é o dia da execução: notas desse dia
// ainda não estão fechadas e são sempre descartadas.
func NewSaleCorrelator(window domain.LookbackWindow, runDate time.Time, workers int) *SaleCorrelator {
	if workers < 1 {
		workers = 1
	}
	return &SaleCorrelator{
		window:  window,
		runDate: utils.DateOnly(runDate),
		workers: workers,
	}
}

// eligible aplica a exclusão do dia da execução e a janela de dias, que sempre inclui o dia esperado
func (c *SaleCorrelator) eligible(date, expectedDay time.Time) bool {
	if date.Equal(c.runDate) {
		return false
	}
	return c.window.Covering(expectedDay, c.runDate).Contains(date, c.runDate)
}

// index agrupa por cliente as notas que não são do dia da execução, preservando a ordem de entrada
func (c *SaleCorrelator) index(invoices []domain.InvoiceRecord) map[string][]domain.InvoiceRecord {
	byCustomer := make(map[string][]domain.InvoiceRecord)
	for _, invoice := range invoices {
		invoice.Date = utils.DateOnly(invoice.Date)
		if invoice.Date.Equal(c.runDate) {
			continue
		}
		byCustomer[invoice.CustomerID] = append(byCustomer[invoice.CustomerID], invoice)
	}
	return byCustomer
}

// Correlate preenche as colunas de venda de cada linha. Com mais de um worker as linhas são
// particionadas entre goroutines; cada linha depende apenas das notas do próprio cliente.
func (c *SaleCorrelator) Correlate(ctx context.Context, rows []domain.ReconciledRow, invoices []domain.InvoiceRecord) error {
	history := c.index(invoices)

	if c.workers == 1 || len(rows) < 2 {
		for i := range rows {
			c.correlateRow(&rows[i], history[rows[i].CustomerID])
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	chunk := (len(rows) + c.workers - 1) / c.workers
	for start := 0; start < len(rows); start += chunk {
		part := rows[start:min(start+chunk, len(rows))]
		g.Go(func() error {
			for i := range part {
				if err := gctx.Err(); err != nil {
					return err
				}
				c.correlateRow(&part[i], history[part[i].CustomerID])
			}
			return nil
		})
	}

	return g.Wait()
}

func (c *SaleCorrelator) correlateRow(row *domain.ReconciledRow, invoices []domain.InvoiceRecord) {
	netSales := decimal.Zero
	var lastSale *domain.InvoiceRecord

	expectedDay := utils.DateOnly(row.ExpectedDayOfSale)
	for i := range invoices {
		invoice := &invoices[i]
		if !c.eligible(invoice.Date, expectedDay) {
			continue
		}

		if invoice.Date.Equal(expectedDay) {
			if row.InvoiceOnExpectedDay == nil {
				date := invoice.Date
				row.InvoiceOnExpectedDay = &date
			}
			netSales = netSales.Add(invoice.CaseCount)
		}

		// empate na data: vale a última nota na ordem de entrada
		if invoice.IsSale() && (lastSale == nil || !invoice.Date.Before(lastSale.Date)) {
			lastSale = invoice
		}
	}

	row.SaleMadeOnExpectedDay = row.InvoiceOnExpectedDay != nil
	row.NetSalesForExpectedDay = netSales.Round(2)
	row.PositiveSale = !row.NetSalesForExpectedDay.IsZero()

	if lastSale == nil {
		row.LastSaleDate = domain.LastSaleDate{}
		row.LastSaleAmount = decimal.NullDecimal{}
		return
	}

	row.LastSaleDate = domain.LastSaleDate{Date: lastSale.Date, Valid: true}
	row.LastSaleAmount = decimal.NullDecimal{Decimal: lastSale.CaseCount, Valid: true}
}
