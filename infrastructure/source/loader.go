// Package source carrega os relatórios exportados (CSV e planilhas Excel) para as tabelas do domínio
package source

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/log"
)

// Paths são os caminhos dos cinco arquivos de entrada
type Paths struct {
	Stops        string
	Phases       string
	PhasesSheet  string
	Regions      string
	RegionsSheet string
	Invoices     string
	Surveys      string
}

type FileLoader struct {
	paths Paths
}

func NewFileLoader(paths Paths) *FileLoader {
	return &FileLoader{paths: paths}
}

// Load lê os arquivos em paralelo; o primeiro erro cancela os demais
func (l *FileLoader) Load(ctx context.Context) (*domain.SourceTables, error) {
	startTime := time.Now()
	tables := &domain.SourceTables{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stops, err := ReadStops(gctx, l.paths.Stops)
		tables.Stops = stops
		return err
	})
	g.Go(func() error {
		calendar, err := ReadCalendar(gctx, l.paths.Phases, l.paths.PhasesSheet)
		tables.Calendar = calendar
		return err
	})
	g.Go(func() error {
		regions, err := ReadRegions(gctx, l.paths.Regions, l.paths.RegionsSheet)
		tables.Regions = regions
		return err
	})
	g.Go(func() error {
		invoices, err := ReadInvoices(gctx, l.paths.Invoices)
		tables.Invoices = invoices
		return err
	})
	g.Go(func() error {
		surveys, err := ReadSurveys(gctx, l.paths.Surveys)
		tables.Surveys = surveys
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"stops":    len(tables.Stops),
		"calendar": len(tables.Calendar),
		"regions":  len(tables.Regions),
		"invoices": len(tables.Invoices),
		"surveys":  len(tables.Surveys),
		"duration": time.Since(startTime).String(),
	}).Info("Fontes carregadas")

	return tables, nil
}
