package reconciling

import (
	"strings"
	"time"

	"github.com/vfg2006/missed-stops-report/internal/domain"
)

// SurveyReconciler junta as respostas da pesquisa de "sem venda" às linhas e preenche o
// resultado derivado quando não há resposta
type SurveyReconciler struct {
	policy domain.SurveyOverridePolicy
}

// NewSurveyReconciler cria o reconciliador com a política de preenchimento escolhida
func NewSurveyReconciler(policy domain.SurveyOverridePolicy) *SurveyReconciler {
	if policy == "" {
		policy = domain.SurveyOverrideStrict
	}
	return &SurveyReconciler{policy: policy}
}

type surveyKey struct {
	customerID string
	date       string
}

// Reconcile associa a primeira resposta de cada (cliente, dia esperado) e aplica as regras
// de preenchimento
func (r *SurveyReconciler) Reconcile(rows []domain.ReconciledRow, surveys []domain.SurveyResponse) {
	reasons := make(map[surveyKey]string, len(surveys))
	for _, survey := range surveys {
		reason := strings.TrimSpace(survey.Reason)
		if reason == "" {
			continue
		}
		key := surveyKey{customerID: survey.CustomerID, date: survey.DateCompleted.Format(time.DateOnly)}
		if _, exists := reasons[key]; exists {
			continue
		}
		reasons[key] = reason
	}

	for i := range rows {
		row := &rows[i]
		key := surveyKey{customerID: row.CustomerID, date: row.ExpectedDayOfSale.Format(time.DateOnly)}
		if reason, ok := reasons[key]; ok {
			row.SurveyResult = reason
			row.SurveyAnswered = true
		}
		row.SurveyResult = r.resolve(*row)
	}
}

// resolve aplica a precedência: resposta existente, parada perdida, serviço recente, concluído
func (r *SurveyReconciler) resolve(row domain.ReconciledRow) string {
	switch {
	case row.SurveyAnswered:
		return row.SurveyResult
	case row.LastSaleDate.String() == domain.NoSaleInWindow && row.CompletionStatus == domain.StatusSixDayNonBuy:
		return domain.SurveyMissedStop
	case r.policy == domain.SurveyOverrideStrict && row.CompletionStatus == domain.StatusServiceCompletedRecently:
		return string(domain.StatusServiceCompletedRecently)
	default:
		return domain.SurveyCompleted
	}
}
