// Package reconciling implementa o pipeline que cruza agenda de paradas, calendário de fases,
// notas e pesquisas para montar a planilha de paradas perdidas
package reconciling

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/log"
	"github.com/vfg2006/missed-stops-report/pkg/utils"
)

// Params são as entradas escalares de uma execução
type Params struct {
	TargetDate   time.Time
	RunDate      time.Time
	Window       domain.LookbackWindow
	SurveyPolicy domain.SurveyOverridePolicy
	Workers      int
}

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Reconciler transforma as tabelas de entrada na planilha final
type Reconciler interface {
	Reconcile(ctx context.Context, tables *domain.SourceTables, params Params) (*domain.Worksheet, error)
}

type Service struct{}

func NewService() Reconciler {
	return &Service{}
}

// Reconcile executa calendário -> filtro -> região -> vendas -> classificação -> pesquisa -> deduplicação.
// Qualquer erro aborta a execução sem planilha parcial.
func (s *Service) Reconcile(ctx context.Context, tables *domain.SourceTables, params Params) (*domain.Worksheet, error) {
	if tables == nil {
		return nil, errors.New("tabelas de entrada não informadas")
	}
	if params.TargetDate.IsZero() || params.RunDate.IsZero() {
		return nil, errors.New("data alvo e data de execução são obrigatórias")
	}
	if params.Window.Enabled && params.Window.Days < 0 {
		return nil, errors.Errorf("janela de dias inválida: %d", params.Window.Days)
	}

	logger := log.ForContext(ctx)
	targetDate := utils.DateOnly(params.TargetDate)

	slot, err := ResolveSlot(targetDate, tables.Calendar)
	if err != nil {
		return nil, err
	}

	stops := FilterStops(tables.Stops, slot)
	logger.WithFields(log.Fields{
		"target_date": targetDate.Format(time.DateOnly),
		"day_of_week": slot.DayOfWeek,
		"phase":       slot.Phase,
		"stops":       len(stops),
	}).Debug("Paradas filtradas para o slot da data alvo")

	rows := AnnotateRegions(stops, tables.Regions, targetDate)

	correlator := NewSaleCorrelator(params.Window, params.RunDate, params.Workers)
	if err := correlator.Correlate(ctx, rows, tables.Invoices); err != nil {
		return nil, errors.Wrap(err, "erro ao correlacionar vendas")
	}

	ClassifyRows(rows)
	NewSurveyReconciler(params.SurveyPolicy).Reconcile(rows, tables.Surveys)

	rows = Deduplicate(rows)
	statusCounts, unknown := CountStatuses(rows)

	if unknown > 0 {
		logger.WithFields(log.Fields{
			"unknown": unknown,
		}).Warn("Linhas classificadas como Unknown: verificar qualidade dos dados de notas")
	}

	return &domain.Worksheet{
		TargetDate:   targetDate,
		RunDate:      utils.DateOnly(params.RunDate),
		Slot:         slot,
		Rows:         rows,
		StatusCounts: statusCounts,
		UnknownCount: unknown,
	}, nil
}
