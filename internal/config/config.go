package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/utils"
)

// Formatos aceitos para a planilha de saída
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Sources        Sources        `mapstructure:",squash"`
	Output         Output         `mapstructure:",squash"`
	Reconciliation Reconciliation `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Sources struct {
	StopsReportPath    string `mapstructure:"stops_report_path"`
	PhasesPath         string `mapstructure:"phases_path"`
	PhasesSheet        string `mapstructure:"phases_sheet"`
	RegionLookupPath   string `mapstructure:"region_lookup_path"`
	RegionLookupSheet  string `mapstructure:"region_lookup_sheet"`
	InvoicesReportPath string `mapstructure:"invoices_report_path"`
	SurveyReportPath   string `mapstructure:"survey_report_path"`
}

type Output struct {
	WorksheetPath   string `mapstructure:"worksheet_path"`
	WorksheetFormat string `mapstructure:"worksheet_format"`
	SummaryPath     string `mapstructure:"summary_path"`
}

type Reconciliation struct {
	LookbackWindowEnabled bool   `mapstructure:"lookback_window_enabled"`
	LookbackWindowDays    int    `mapstructure:"lookback_window_days"`
	SurveyOverridePolicy  string `mapstructure:"survey_override_policy"`
	CorrelatorWorkers     int    `mapstructure:"correlator_workers"`
	TargetDate            string `mapstructure:"target_date"`
}

type Database struct {
	Enabled       bool   `mapstructure:"database_enabled"`
	RetentionDays int    `mapstructure:"database_retention_days"`
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("STOPS_REPORT_PATH", "Stops_Report.csv")
	viper.SetDefault("PHASES_PATH", "config/phases.xlsx")
	viper.SetDefault("PHASES_SHEET", "")
	viper.SetDefault("REGION_LOOKUP_PATH", "config/region lookup.xlsx")
	viper.SetDefault("REGION_LOOKUP_SHEET", "")
	viper.SetDefault("INVOICES_REPORT_PATH", "Invoices_Report.csv")
	viper.SetDefault("SURVEY_REPORT_PATH", "No_Sale_Survey.csv")

	viper.SetDefault("WORKSHEET_PATH", "Stops_Worksheet.csv")
	viper.SetDefault("WORKSHEET_FORMAT", FormatCSV)
	viper.SetDefault("SUMMARY_PATH", "") // vazio desabilita o resumo JSON

	viper.SetDefault("LOOKBACK_WINDOW_ENABLED", true)
	viper.SetDefault("LOOKBACK_WINDOW_DAYS", domain.DefaultLookbackDays)
	viper.SetDefault("SURVEY_OVERRIDE_POLICY", string(domain.SurveyOverrideStrict))
	viper.SetDefault("CORRELATOR_WORKERS", 1)
	viper.SetDefault("TARGET_DATE", "") // vazio usa o último dia útil

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_RETENTION_DAYS", 0) // zero mantém todo o histórico
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/reports?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Output.WorksheetFormat = strings.ToLower(strings.TrimSpace(config.Output.WorksheetFormat))
	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica as combinações de valores que o pipeline não aceita
func (c *Config) Validate() error {
	if _, err := domain.ParseSurveyOverridePolicy(c.Reconciliation.SurveyOverridePolicy); err != nil {
		return err
	}
	if c.Reconciliation.LookbackWindowDays < 0 {
		return fmt.Errorf("LOOKBACK_WINDOW_DAYS não pode ser negativo: %d", c.Reconciliation.LookbackWindowDays)
	}
	if c.Reconciliation.CorrelatorWorkers < 1 {
		return fmt.Errorf("CORRELATOR_WORKERS deve ser maior que zero: %d", c.Reconciliation.CorrelatorWorkers)
	}
	if c.Output.WorksheetFormat != FormatCSV && c.Output.WorksheetFormat != FormatXLSX {
		return fmt.Errorf("WORKSHEET_FORMAT inválido: %q (valores aceitos: csv, xlsx)", c.Output.WorksheetFormat)
	}
	if c.Database.RetentionDays < 0 {
		return fmt.Errorf("DATABASE_RETENTION_DAYS não pode ser negativo: %d", c.Database.RetentionDays)
	}
	if _, err := c.TargetDate(); err != nil {
		return fmt.Errorf("TARGET_DATE inválida: %w", err)
	}
	return nil
}

// LookbackWindow monta a janela de dias do correlacionador
func (c *Config) LookbackWindow() domain.LookbackWindow {
	return domain.LookbackWindow{
		Enabled: c.Reconciliation.LookbackWindowEnabled,
		Days:    c.Reconciliation.LookbackWindowDays,
	}
}

// SurveyPolicy retorna a política de preenchimento do resultado da pesquisa
func (c *Config) SurveyPolicy() domain.SurveyOverridePolicy {
	policy, err := domain.ParseSurveyOverridePolicy(c.Reconciliation.SurveyOverridePolicy)
	if err != nil {
		return domain.SurveyOverrideStrict
	}
	return policy
}

// TargetDate retorna a data alvo fixada por configuração, ou nil para usar o último dia útil
func (c *Config) TargetDate() (*time.Time, error) {
	return utils.ParseDate(strings.TrimSpace(c.Reconciliation.TargetDate))
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
