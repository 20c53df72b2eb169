package utils

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts são os formatos aceitos nos relatórios exportados (CSV e planilhas)
var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"1/2/2006",
	"01/02/2006",
	"1/2/2006 15:04",
	"1/2/06",
	"01-02-06",
	"2006/01/02",
}

// ParseDate converte uma data YYYY-MM-DD; string vazia retorna nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseFlexibleDate tenta os formatos conhecidos e devolve apenas a parte de data
func ParseFlexibleDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return DateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("formato de data não reconhecido: %q", value)
}

// DateOnly descarta hora e fuso, mantendo o dia civil em UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EqualDate compara apenas ano, mês e dia
func EqualDate(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() && date1.Month() == date2.Month() && date1.Day() == date2.Day()
}
