package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/missed-stops-report/infrastructure/database/postgres"
	"github.com/vfg2006/missed-stops-report/infrastructure/repository"
	"github.com/vfg2006/missed-stops-report/internal/config"
)

const createStatusIndex = `CREATE INDEX IF NOT EXISTS missed_stop_worksheet_status_idx
	ON missed_stop_worksheet (expected_day_of_sale, completion_status)`

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func tableExists(ctx context.Context, conn postgres.Queryer) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_name = 'missed_stop_worksheet'
		)
	`).Scan(&exists)
	return exists, err
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	exists, err := tableExists(ctx, conn)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao verificar tabela existente")
	}

	worksheetRepo := repository.NewWorksheetRepository(conn)

	if exists {
		logrus.Info("Tabela missed_stop_worksheet já existe")
	} else {
		if err := worksheetRepo.EnsureSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("ERRO ao criar tabela missed_stop_worksheet")
		}
		logrus.Info("Tabela missed_stop_worksheet criada com sucesso")
	}

	if _, err := conn.Exec(ctx, createStatusIndex); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar índice de status")
	}
	logrus.Info("Índice de status verificado")

	if cfg.Database.RetentionDays > 0 {
		startTime := time.Now()
		deleted, err := worksheetRepo.DeleteOlderThan(ctx, cfg.Database.RetentionDays, time.Now())
		if err != nil {
			logrus.WithError(err).Fatal("ERRO ao remover linhas antigas")
		}
		logrus.WithFields(logrus.Fields{
			"deleted":  deleted,
			"days":     cfg.Database.RetentionDays,
			"duration": time.Since(startTime).String(),
		}).Info("Limpeza de linhas antigas concluída")
	}

	logrus.Info("Migração concluída")
}
