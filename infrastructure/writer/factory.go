package writer

import (
	"fmt"

	"github.com/vfg2006/missed-stops-report/internal/config"
	"github.com/vfg2006/missed-stops-report/internal/usecases/reporting"
)

// NewWorksheetWriter escolhe o gravador de arquivo pelo formato configurado
func NewWorksheetWriter(format, path string) (reporting.WorksheetWriter, error) {
	switch format {
	case config.FormatCSV, "":
		return NewCSVWriter(path), nil
	case config.FormatXLSX:
		return NewXLSXWriter(path), nil
	}
	return nil, fmt.Errorf("formato de planilha não suportado: %q", format)
}
