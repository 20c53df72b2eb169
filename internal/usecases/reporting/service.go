// Package reporting orquestra uma execução do relatório: datas, carga das fontes,
// reconciliação e gravação nos destinos configurados
package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/internal/usecases/reconciling"
	"github.com/vfg2006/missed-stops-report/pkg/log"
	"github.com/vfg2006/missed-stops-report/pkg/utils"
)

type Options struct {
	// TargetDate fixa o dia analisado; nil usa o dia útil anterior à execução
	TargetDate   *time.Time
	Window       domain.LookbackWindow
	SurveyPolicy domain.SurveyOverridePolicy
	Workers      int
}

type Service struct {
	loader     SourceLoader
	reconciler reconciling.Reconciler
	writers    []WorksheetWriter
	options    Options
	now        func() time.Time
}

func NewReportService(
	loader SourceLoader,
	reconciler reconciling.Reconciler,
	writers []WorksheetWriter,
	options Options,
) *Service {
	return &Service{
		loader:     loader,
		reconciler: reconciler,
		writers:    writers,
		options:    options,
		now:        time.Now,
	}
}

// WithClock troca o relógio usado para a data de execução
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Run(ctx context.Context) (*domain.Worksheet, error) {
	startTime := time.Now()

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da execução")
	}
	ctx = log.WithRunID(ctx, runID)
	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)

	runDate := utils.DateOnly(s.now())
	targetDate := PreviousBusinessDay(runDate)
	if s.options.TargetDate != nil {
		targetDate = utils.DateOnly(*s.options.TargetDate)
	}

	logger.WithFields(log.Fields{
		"run_date":    runDate.Format(time.DateOnly),
		"target_date": targetDate.Format(time.DateOnly),
		"window":      s.options.Window,
		"policy":      s.options.SurveyPolicy,
	}).Info("Iniciando relatório de paradas perdidas")

	tables, err := s.loader.Load(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao carregar as fontes")
		return nil, errors.Wrap(err, "erro ao carregar as fontes")
	}

	worksheet, err := s.reconciler.Reconcile(ctx, tables, reconciling.Params{
		TargetDate:   targetDate,
		RunDate:      runDate,
		Window:       s.options.Window,
		SurveyPolicy: s.options.SurveyPolicy,
		Workers:      s.options.Workers,
	})
	if err != nil {
		logger.WithError(err).Error("Erro ao reconciliar as paradas")
		return nil, errors.Wrap(err, "erro ao reconciliar as paradas")
	}

	worksheet.RunID = runID
	worksheet.GeneratedAt = s.now()

	for _, writer := range s.writers {
		if err := writer.Write(ctx, worksheet); err != nil {
			logger.WithError(err).Error("Erro ao gravar a planilha")
			return nil, errors.Wrap(err, "erro ao gravar a planilha")
		}
	}

	logger.WithFields(log.Fields{
		"rows":          len(worksheet.Rows),
		"status_counts": worksheet.StatusCounts,
		"unknown":       worksheet.UnknownCount,
		"duration":      time.Since(startTime).String(),
	}).Info("Relatório de paradas perdidas concluído")

	return worksheet, nil
}
