package writer

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/missed-stops-report/infrastructure/repository"
	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/log"
)

// DatabaseWriter grava a planilha no postgres e opcionalmente remove execuções antigas
type DatabaseWriter struct {
	repo          repository.WorksheetRepository
	retentionDays int
}

func NewDatabaseWriter(repo repository.WorksheetRepository, retentionDays int) *DatabaseWriter {
	return &DatabaseWriter{
		repo:          repo,
		retentionDays: retentionDays,
	}
}

func (w *DatabaseWriter) Write(ctx context.Context, worksheet *domain.Worksheet) error {
	logger := log.ForContext(ctx)

	if err := w.repo.SaveWorksheet(ctx, worksheet); err != nil {
		return errors.Wrap(err, "erro ao salvar planilha no banco")
	}

	if w.retentionDays > 0 {
		deleted, err := w.repo.DeleteOlderThan(ctx, w.retentionDays, worksheet.TargetDate)
		if err != nil {
			// a planilha do dia já foi gravada; falha na limpeza não invalida a execução
			logger.WithError(err).Warn("Erro ao remover linhas antigas")
		} else if deleted > 0 {
			logger.WithField("deleted", deleted).Info("Linhas antigas removidas")
		}
	}

	logger.WithField("rows", len(worksheet.Rows)).Info("Planilha gravada no banco")
	return nil
}
