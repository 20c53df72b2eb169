package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// cellValue é uma célula de fixture: data vira número serial, o resto vai como texto
type cellValue any

func writeWorkbook(t *testing.T, dir, name, sheetName string, rows [][]cellValue) string {
	t.Helper()

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	require.NoError(t, err)

	for _, values := range rows {
		row := sheet.AddRow()
		for _, value := range values {
			cell := row.AddCell()
			switch v := value.(type) {
			case time.Time:
				cell.SetDate(v)
			case string:
				cell.SetString(v)
			}
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, file.Save(path))
	return path
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
