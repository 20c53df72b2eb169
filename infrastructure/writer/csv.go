package writer

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/pkg/errors"

	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/log"
)

type CSVWriter struct {
	path string
}

func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

func (w *CSVWriter) Write(ctx context.Context, worksheet *domain.Worksheet) error {
	err := writeAtomically(ctx, w.path, func(file *os.File) error {
		csvWriter := csv.NewWriter(file)
		encoder := csvutil.NewEncoder(csvWriter)

		// cabeçalho mesmo sem linhas
		if err := encoder.EncodeHeader(worksheetRecord{}); err != nil {
			return errors.Wrap(err, "erro ao escrever cabeçalho")
		}

		for _, row := range worksheet.Rows {
			if err := encoder.Encode(newWorksheetRecord(row)); err != nil {
				return errors.Wrapf(err, "erro ao escrever cliente %s", row.CustomerID)
			}
		}

		csvWriter.Flush()
		return errors.Wrap(csvWriter.Error(), "erro ao gravar CSV")
	})
	if err != nil {
		return err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"path": w.path,
		"rows": len(worksheet.Rows),
	}).Info("Planilha CSV gravada")

	return nil
}
