package source

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx/v2"

	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/log"
	"github.com/vfg2006/missed-stops-report/pkg/utils"
)

const (
	calendarTable = "phases"
	regionsTable  = "regions"
)

var (
	calendarColumns = []string{"Date", "Day Of Week", "Phase"}
	regionColumns   = []string{"Territory", "Region"}
)

// sheetRow dá acesso às células de uma linha pelo nome da coluna
type sheetRow struct {
	line    int
	columns map[string]int
	cells   []*xlsx.Cell
}

func (r sheetRow) value(column string) string {
	idx, ok := r.columns[column]
	if !ok || idx >= len(r.cells) || r.cells[idx] == nil {
		return ""
	}
	return strings.TrimSpace(r.cells[idx].Value)
}

func (r sheetRow) empty() bool {
	for _, cell := range r.cells {
		if cell != nil && strings.TrimSpace(cell.Value) != "" {
			return false
		}
	}
	return true
}

// readSheet abre a planilha e percorre as linhas de dados da aba escolhida (primeira aba se vazio)
func readSheet(ctx context.Context, path, sheetName, table string, required []string, fn func(file *xlsx.File, row sheetRow) error) error {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao abrir %s", table)
	}

	sheet, err := getSheet(file, sheetName)
	if err != nil {
		return errors.Wrapf(err, "erro ao abrir %s", table)
	}

	if len(sheet.Rows) == 0 {
		return &domain.SchemaError{Table: table, Columns: required}
	}

	header := make([]string, len(sheet.Rows[0].Cells))
	for i, cell := range sheet.Rows[0].Cells {
		header[i] = cell.Value
	}
	header = cleanHeader(header)

	if missing := missingColumns(header, required); len(missing) > 0 {
		return &domain.SchemaError{Table: table, Columns: missing}
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}

	for i, r := range sheet.Rows[1:] {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r == nil {
			continue
		}

		row := sheetRow{line: i + 2, columns: columns, cells: r.Cells}
		if row.empty() {
			continue
		}
		if err := fn(file, row); err != nil {
			return err
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"table": table,
		"path":  path,
		"sheet": sheet.Name,
		"lines": len(sheet.Rows) - 1,
	}).Debug("Planilha carregada")

	return nil
}

func getSheet(file *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name != "" {
		sheet, ok := file.Sheet[name]
		if !ok {
			return nil, errors.Errorf("aba %q não encontrada", name)
		}
		return sheet, nil
	}

	if len(file.Sheets) == 0 {
		return nil, errors.New("arquivo sem abas")
	}
	return file.Sheets[0], nil
}

// parseSheetDate aceita o número serial do Excel ou uma data em texto
func parseSheetDate(file *xlsx.File, value string) (time.Time, error) {
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		return utils.DateOnly(xlsx.TimeFromExcelTime(serial, file.Date1904)), nil
	}
	return utils.ParseFlexibleDate(value)
}

// ReadCalendar lê a planilha de fases: data, nome do dia da semana e nome da fase
func ReadCalendar(ctx context.Context, path, sheetName string) ([]domain.CalendarEntry, error) {
	var entries []domain.CalendarEntry

	err := readSheet(ctx, path, sheetName, calendarTable, calendarColumns, func(file *xlsx.File, row sheetRow) error {
		raw := row.value("Date")
		date, err := parseSheetDate(file, raw)
		if err != nil {
			return &ParseError{Table: calendarTable, Line: row.line, Column: "Date", Value: raw, Err: err}
		}

		entries = append(entries, domain.CalendarEntry{
			Date:      date,
			DayOfWeek: row.value("Day Of Week"),
			Phase:     row.value("Phase"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// ReadRegions lê a tabela de território para região
func ReadRegions(ctx context.Context, path, sheetName string) ([]domain.RegionLookup, error) {
	var regions []domain.RegionLookup

	err := readSheet(ctx, path, sheetName, regionsTable, regionColumns, func(_ *xlsx.File, row sheetRow) error {
		territory := normalizeKey(row.value("Territory"))
		if territory == "" {
			return nil
		}

		regions = append(regions, domain.RegionLookup{
			Territory: territory,
			Region:    row.value("Region"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return regions, nil
}
