package reconciling

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/missed-stops-report/internal/domain"
)

// Classify aplica a tabela de decisão de conclusão, na ordem de prioridade:
//
//	venda no dia esperado e último valor != 0        -> Completed
//	sem venda no dia, último valor presente e != 0   -> Service Completed In Last 6 Days
//	sem venda no dia e sem último valor              -> 6 Day Non Buy
//	qualquer outro caso                              -> Unknown
//
// Um último valor ausente não é igual a zero, então uma nota de zero caixas no dia esperado
// sem outras vendas na janela ainda resulta em Completed.
func Classify(saleMade bool, lastSaleAmount decimal.NullDecimal) domain.CompletionStatus {
	zeroAmount := lastSaleAmount.Valid && lastSaleAmount.Decimal.IsZero()

	switch {
	case saleMade && !zeroAmount:
		return domain.StatusCompleted
	case !saleMade && lastSaleAmount.Valid && !zeroAmount:
		return domain.StatusServiceCompletedRecently
	case !saleMade && !lastSaleAmount.Valid:
		return domain.StatusSixDayNonBuy
	default:
		return domain.StatusUnknown
	}
}

// ClassifyRows preenche CompletionStatus em todas as linhas
func ClassifyRows(rows []domain.ReconciledRow) {
	for i := range rows {
		rows[i].CompletionStatus = Classify(rows[i].SaleMadeOnExpectedDay, rows[i].LastSaleAmount)
	}
}

// CountStatuses conta as linhas por status e devolve também o total de Unknown
func CountStatuses(rows []domain.ReconciledRow) (map[domain.CompletionStatus]int, int) {
	counts := make(map[domain.CompletionStatus]int)
	for _, row := range rows {
		counts[row.CompletionStatus]++
	}
	return counts, counts[domain.StatusUnknown]
}
