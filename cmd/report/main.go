package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/missed-stops-report/infrastructure/database/postgres"
	"github.com/vfg2006/missed-stops-report/infrastructure/repository"
	"github.com/vfg2006/missed-stops-report/infrastructure/source"
	"github.com/vfg2006/missed-stops-report/infrastructure/writer"
	"github.com/vfg2006/missed-stops-report/internal/config"
	"github.com/vfg2006/missed-stops-report/internal/usecases/reconciling"
	"github.com/vfg2006/missed-stops-report/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loader := source.NewFileLoader(source.Paths{
		Stops:        cfg.Sources.StopsReportPath,
		Phases:       cfg.Sources.PhasesPath,
		PhasesSheet:  cfg.Sources.PhasesSheet,
		Regions:      cfg.Sources.RegionLookupPath,
		RegionsSheet: cfg.Sources.RegionLookupSheet,
		Invoices:     cfg.Sources.InvoicesReportPath,
		Surveys:      cfg.Sources.SurveyReportPath,
	})

	worksheetWriter, err := writer.NewWorksheetWriter(cfg.Output.WorksheetFormat, cfg.Output.WorksheetPath)
	if err != nil {
		logrus.Fatal(err)
	}
	writers := []reporting.WorksheetWriter{worksheetWriter}

	if cfg.Output.SummaryPath != "" {
		writers = append(writers, writer.NewSummaryWriter(cfg.Output.SummaryPath))
	}

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		worksheetRepo := repository.NewWorksheetRepository(pgConn)
		if err := worksheetRepo.EnsureSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar tabela da planilha")
		}
		writers = append(writers, writer.NewDatabaseWriter(worksheetRepo, cfg.Database.RetentionDays))
	}

	targetDate, err := cfg.TargetDate()
	if err != nil {
		logrus.Fatal(err)
	}

	reportService := reporting.NewReportService(
		loader,
		reconciling.NewService(),
		writers,
		reporting.Options{
			TargetDate:   targetDate,
			Window:       cfg.LookbackWindow(),
			SurveyPolicy: cfg.SurveyPolicy(),
			Workers:      cfg.Reconciliation.CorrelatorWorkers,
		},
	)

	if _, err := reportService.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar o relatório de paradas perdidas")
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
