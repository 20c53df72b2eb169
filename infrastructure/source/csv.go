package source

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/log"
	"github.com/vfg2006/missed-stops-report/pkg/utils"
)

const (
	stopsTable    = "stops"
	invoicesTable = "invoices"
	surveysTable  = "surveys"
)

type stopRow struct {
	CustomerID string `csv:"Customer ID"`
	Territory  string `csv:"Territory"`
	Phase      string `csv:"Phase"`
	DayOfWeek  string `csv:"Day Of Week"`
}

type invoiceRow struct {
	CustomerID string `csv:"Customer ID"`
	Date       string `csv:"Date"`
	TotalCases string `csv:"Total Cases"`
}

type surveyRow struct {
	CustomerNum   string `csv:"Customer Num"`
	DateCompleted string `csv:"Date Completed"`
	Reason        string `csv:"Please select a reason why no sale took place:"`
}

var (
	stopColumns    = []string{"Customer ID", "Territory", "Phase", "Day Of Week"}
	invoiceColumns = []string{"Customer ID", "Date", "Total Cases"}
	surveyColumns  = []string{"Customer Num", "Date Completed", "Please select a reason why no sale took place:"}
)

// readCSV decodifica o arquivo inteiro em T, chamando fn por linha com o número da linha no arquivo
func readCSV[T any](ctx context.Context, path, table string, required []string, fn func(line int, row T) error) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao abrir %s", table)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return &domain.SchemaError{Table: table, Columns: required}
	}
	if err != nil {
		return errors.Wrapf(err, "erro ao ler cabeçalho de %s", table)
	}
	header = cleanHeader(header)

	if missing := missingColumns(header, required); len(missing) > 0 {
		return &domain.SchemaError{Table: table, Columns: missing}
	}

	decoder, err := csvutil.NewDecoder(reader, header...)
	if err != nil {
		return errors.Wrapf(err, "erro ao preparar leitura de %s", table)
	}

	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var row T
		if err := decoder.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return errors.Wrapf(err, "erro ao ler %s na linha %d", table, line+1)
		}
		line++

		if err := fn(line, row); err != nil {
			return err
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"table": table,
		"path":  path,
		"lines": line - 1,
	}).Debug("Arquivo CSV carregado")

	return nil
}

// ReadStops lê o relatório de paradas agendadas. Linhas com fase ou dia da semana inválidos
// não pertencem a nenhum slot e são descartadas com aviso.
func ReadStops(ctx context.Context, path string) ([]domain.StopRecord, error) {
	var stops []domain.StopRecord
	logger := log.ForContext(ctx)

	err := readCSV(ctx, path, stopsTable, stopColumns, func(line int, row stopRow) error {
		customerID := NormalizeCustomerID(row.CustomerID)
		if customerID == "" {
			return nil
		}

		phase, err := parseCode(row.Phase)
		if err != nil {
			logger.WithError(&ParseError{Table: stopsTable, Line: line, Column: "Phase", Value: row.Phase, Err: err}).
				WithField("customer_id", customerID).
				Warn("Parada com fase inválida ignorada")
			return nil
		}
		dayOfWeek, err := parseCode(row.DayOfWeek)
		if err != nil {
			logger.WithError(&ParseError{Table: stopsTable, Line: line, Column: "Day Of Week", Value: row.DayOfWeek, Err: err}).
				WithField("customer_id", customerID).
				Warn("Parada com dia da semana inválido ignorada")
			return nil
		}

		stops = append(stops, domain.StopRecord{
			CustomerID: customerID,
			Territory:  normalizeKey(row.Territory),
			Phase:      phase,
			DayOfWeek:  dayOfWeek,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stops, nil
}

// ReadInvoices lê o relatório de notas; quantidade em branco conta como zero
func ReadInvoices(ctx context.Context, path string) ([]domain.InvoiceRecord, error) {
	var invoices []domain.InvoiceRecord

	err := readCSV(ctx, path, invoicesTable, invoiceColumns, func(line int, row invoiceRow) error {
		customerID := NormalizeCustomerID(row.CustomerID)
		if customerID == "" {
			return nil
		}

		date, err := utils.ParseFlexibleDate(row.Date)
		if err != nil {
			return &ParseError{Table: invoicesTable, Line: line, Column: "Date", Value: row.Date, Err: err}
		}

		caseCount := decimal.Zero
		if raw := strings.ReplaceAll(strings.TrimSpace(row.TotalCases), ",", ""); raw != "" {
			caseCount, err = decimal.NewFromString(raw)
			if err != nil {
				return &ParseError{Table: invoicesTable, Line: line, Column: "Total Cases", Value: row.TotalCases, Err: err}
			}
		}

		invoices = append(invoices, domain.InvoiceRecord{
			CustomerID: customerID,
			Date:       date,
			CaseCount:  caseCount,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return invoices, nil
}

// ReadSurveys lê as respostas da pesquisa de não venda; respostas sem data são ignoradas
func ReadSurveys(ctx context.Context, path string) ([]domain.SurveyResponse, error) {
	var surveys []domain.SurveyResponse
	logger := log.ForContext(ctx)

	err := readCSV(ctx, path, surveysTable, surveyColumns, func(line int, row surveyRow) error {
		customerID := NormalizeCustomerID(row.CustomerNum)
		if customerID == "" {
			return nil
		}

		if strings.TrimSpace(row.DateCompleted) == "" {
			logger.WithFields(log.Fields{
				"line":        line,
				"customer_id": customerID,
			}).Debug("Resposta de pesquisa sem data ignorada")
			return nil
		}

		date, err := utils.ParseFlexibleDate(row.DateCompleted)
		if err != nil {
			return &ParseError{Table: surveysTable, Line: line, Column: "Date Completed", Value: row.DateCompleted, Err: err}
		}

		surveys = append(surveys, domain.SurveyResponse{
			CustomerID:    customerID,
			DateCompleted: date,
			Reason:        strings.TrimSpace(row.Reason),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return surveys, nil
}
