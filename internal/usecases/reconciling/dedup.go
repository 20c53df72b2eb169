package reconciling

import "github.com/vfg2006/missed-stops-report/internal/domain"

// Deduplicate mantém a primeira linha de cada cliente, na ordem do pipeline
func Deduplicate(rows []domain.ReconciledRow) []domain.ReconciledRow {
	seen := make(map[string]struct{}, len(rows))
	unique := make([]domain.ReconciledRow, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.CustomerID]; ok {
			continue
		}
		seen[row.CustomerID] = struct{}{}
		unique = append(unique, row)
	}
	return unique
}
