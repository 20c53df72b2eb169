package writer

import (
	"context"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SummaryWriter grava o resumo JSON da execução (contagens por status e por resultado de pesquisa)
type SummaryWriter struct {
	path string
}

func NewSummaryWriter(path string) *SummaryWriter {
	return &SummaryWriter{path: path}
}

func (w *SummaryWriter) Write(ctx context.Context, worksheet *domain.Worksheet) error {
	data, err := json.MarshalIndent(worksheet.Summary(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar resumo")
	}

	err = writeAtomically(ctx, w.path, func(file *os.File) error {
		_, err := file.Write(append(data, '\n'))
		return errors.Wrap(err, "erro ao gravar resumo")
	})
	if err != nil {
		return err
	}

	log.ForContext(ctx).WithField("path", w.path).Info("Resumo da execução gravado")
	return nil
}
