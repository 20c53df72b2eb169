package reconciling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/missed-stops-report/internal/domain"
)

func TestSurveyReconciler_Reconcile(t *testing.T) {
	expected := day(2024, 1, 15)
	saleDate := domain.LastSaleDate{Date: day(2024, 1, 13), Valid: true}

	tests := []struct {
		name    string
		policy  domain.SurveyOverridePolicy
		row     domain.ReconciledRow
		surveys []domain.SurveyResponse
		want    string
		answer  bool
	}{
		{
			name:    "Resposta existente nunca é sobrescrita",
			policy:  domain.SurveyOverrideStrict,
			row:     domain.ReconciledRow{CustomerID: "W", CompletionStatus: domain.StatusSixDayNonBuy},
			surveys: []domain.SurveyResponse{{CustomerID: "W", DateCompleted: expected, Reason: "Store Closed"}},
			want:    "Store Closed",
			answer:  true,
		},
		{
			name:    "Resposta de outro dia não casa",
			policy:  domain.SurveyOverrideStrict,
			row:     domain.ReconciledRow{CustomerID: "W", CompletionStatus: domain.StatusSixDayNonBuy},
			surveys: []domain.SurveyResponse{{CustomerID: "W", DateCompleted: day(2024, 1, 14), Reason: "Store Closed"}},
			want:    domain.SurveyMissedStop,
		},
		{
			name:    "Resposta em branco é tratada como ausente",
			policy:  domain.SurveyOverrideStrict,
			row:     domain.ReconciledRow{CustomerID: "W", CompletionStatus: domain.StatusSixDayNonBuy},
			surveys: []domain.SurveyResponse{{CustomerID: "W", DateCompleted: expected, Reason: "  "}},
			want:    domain.SurveyMissedStop,
		},
		{
			name:   "Sem venda na janela e 6 Day Non Buy vira parada perdida",
			policy: domain.SurveyOverrideLenient,
			row:    domain.ReconciledRow{CustomerID: "Y", CompletionStatus: domain.StatusSixDayNonBuy},
			want:   domain.SurveyMissedStop,
		},
		{
			name:   "Política strict preserva serviço recente",
			policy: domain.SurveyOverrideStrict,
			row:    domain.ReconciledRow{CustomerID: "Z", CompletionStatus: domain.StatusServiceCompletedRecently, LastSaleDate: saleDate},
			want:   string(domain.StatusServiceCompletedRecently),
		},
		{
			name:   "Política lenient colapsa serviço recente em Completed",
			policy: domain.SurveyOverrideLenient,
			row:    domain.ReconciledRow{CustomerID: "Z", CompletionStatus: domain.StatusServiceCompletedRecently, LastSaleDate: saleDate},
			want:   domain.SurveyCompleted,
		},
		{
			name:   "Completed permanece Completed",
			policy: domain.SurveyOverrideStrict,
			row:    domain.ReconciledRow{CustomerID: "X", CompletionStatus: domain.StatusCompleted, LastSaleDate: saleDate},
			want:   domain.SurveyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := tt.row
			row.ExpectedDayOfSale = expected
			rows := []domain.ReconciledRow{row}

			NewSurveyReconciler(tt.policy).Reconcile(rows, tt.surveys)

			assert.Equal(t, tt.want, rows[0].SurveyResult)
			assert.Equal(t, tt.answer, rows[0].SurveyAnswered)
		})
	}
}

func TestSurveyReconciler_FirstResponseWins(t *testing.T) {
	expected := day(2024, 1, 15)
	rows := []domain.ReconciledRow{{CustomerID: "W", ExpectedDayOfSale: expected}}
	surveys := []domain.SurveyResponse{
		{CustomerID: "W", DateCompleted: expected, Reason: "Store Closed"},
		{CustomerID: "W", DateCompleted: expected, Reason: "No Order Needed"},
	}

	NewSurveyReconciler("").Reconcile(rows, surveys)

	assert.Equal(t, "Store Closed", rows[0].SurveyResult)
}
