package reporting

import (
	"context"

	"github.com/vfg2006/missed-stops-report/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// SourceLoader carrega as cinco tabelas de entrada de uma execução
type SourceLoader interface {
	Load(ctx context.Context) (*domain.SourceTables, error)
}

// WorksheetWriter grava a planilha final em um destino (arquivo, resumo, banco)
type WorksheetWriter interface {
	Write(ctx context.Context, worksheet *domain.Worksheet) error
}

// ReportService executa o relatório diário de ponta a ponta
type ReportService interface {
	Run(ctx context.Context) (*domain.Worksheet, error)
}
