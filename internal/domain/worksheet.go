package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompletionStatus é a classificação de uma parada esperada
type CompletionStatus string

const (
	StatusCompleted                CompletionStatus = "Completed"
	StatusServiceCompletedRecently CompletionStatus = "Service Completed In Last 6 Days"
	StatusSixDayNonBuy             CompletionStatus = "6 Day Non Buy"
	StatusUnknown                  CompletionStatus = "Unknown"
)

// Valores derivados gravados em "Survey Results" quando não há resposta de pesquisa
const (
	SurveyMissedStop = "Missed Stop"
	SurveyCompleted  = "Completed"
)

// NoSaleInWindow é o valor gravado em "Last Sale Date" quando não há venda na janela
const NoSaleInWindow = "No Sale Last 6 Days"

// LastSaleDate guarda a data da última venda ou o marcador de "sem venda na janela"
type LastSaleDate struct {
	Date  time.Time
	Valid bool
}

// IsNoSale indica que o cliente não teve venda na janela
func (d LastSaleDate) IsNoSale() bool {
	return !d.Valid
}

func (d LastSaleDate) String() string {
	if !d.Valid {
		return NoSaleInWindow
	}
	return d.Date.Format(time.DateOnly)
}

// ReconciledRow é uma linha da planilha final, uma por cliente
type ReconciledRow struct {
	CustomerID             string
	Territory              string
	Phase                  int
	DayOfWeek              int
	Region                 *string
	ExpectedDayOfSale      time.Time
	InvoiceOnExpectedDay   *time.Time
	SaleMadeOnExpectedDay  bool
	NetSalesForExpectedDay decimal.Decimal
	PositiveSale           bool
	LastSaleDate           LastSaleDate
	LastSaleAmount         decimal.NullDecimal
	CompletionStatus       CompletionStatus
	SurveyResult           string
	SurveyAnswered         bool // true quando SurveyResult veio de uma resposta real
}

// Worksheet é o resultado de uma execução do pipeline
type Worksheet struct {
	RunID        string
	TargetDate   time.Time
	RunDate      time.Time
	Slot         ScheduleSlot
	Rows         []ReconciledRow
	StatusCounts map[CompletionStatus]int
	UnknownCount int
	GeneratedAt  time.Time
}

// WorksheetSummary é o resumo de uma execução, serializado junto com a planilha
type WorksheetSummary struct {
	RunID         string         `json:"run_id"`
	TargetDate    string         `json:"target_date"`
	RunDate       string         `json:"run_date"`
	DayOfWeek     int            `json:"day_of_week"`
	Phase         int            `json:"phase"`
	Rows          int            `json:"rows"`
	StatusCounts  map[string]int `json:"status_counts"`
	SurveyResults map[string]int `json:"survey_results"`
	UnknownCount  int            `json:"unknown_count"`
	GeneratedAt   time.Time      `json:"generated_at"`
}

// Summary monta o resumo da planilha
func (w *Worksheet) Summary() WorksheetSummary {
	statusCounts := make(map[string]int, len(w.StatusCounts))
	for status, count := range w.StatusCounts {
		statusCounts[string(status)] = count
	}

	surveyResults := make(map[string]int)
	for _, row := range w.Rows {
		surveyResults[row.SurveyResult]++
	}

	return WorksheetSummary{
		RunID:         w.RunID,
		TargetDate:    w.TargetDate.Format(time.DateOnly),
		RunDate:       w.RunDate.Format(time.DateOnly),
		DayOfWeek:     w.Slot.DayOfWeek,
		Phase:         w.Slot.Phase,
		Rows:          len(w.Rows),
		StatusCounts:  statusCounts,
		SurveyResults: surveyResults,
		UnknownCount:  w.UnknownCount,
		GeneratedAt:   w.GeneratedAt,
	}
}
