package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRecord representa uma nota de venda (ou visita sem venda, com zero caixas)
type InvoiceRecord struct {
	CustomerID string
	Date       time.Time
	CaseCount  decimal.Decimal
}

// IsSale indica se a nota registra uma venda efetiva
func (i InvoiceRecord) IsSale() bool {
	return !i.CaseCount.IsZero()
}

// SurveyResponse é a justificativa registrada pelo vendedor para uma visita sem venda
type SurveyResponse struct {
	CustomerID    string
	DateCompleted time.Time
	Reason        string
}
