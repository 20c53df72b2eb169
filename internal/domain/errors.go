package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Erros fatais do pipeline
var (
	ErrCalendarLookup = errors.New("calendar lookup failed")
	ErrSchema         = errors.New("required column missing")
)

// CalendarLookupError indica que a data alvo não resolve para exatamente um slot da agenda
type CalendarLookupError struct {
	Date    time.Time
	Matches int
	Reason  string
}

// Error implementa a interface error
func (e *CalendarLookupError) Error() string {
	msg := fmt.Sprintf("%s: %s (%d entries)", ErrCalendarLookup.Error(), e.Date.Format(time.DateOnly), e.Matches)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap retorna o erro sentinela
func (e *CalendarLookupError) Unwrap() error {
	return ErrCalendarLookup
}

// SchemaError indica que uma tabela de entrada não possui colunas obrigatórias
type SchemaError struct {
	Table   string
	Columns []string
}

// Error implementa a interface error
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s [%s]", ErrSchema.Error(), e.Table, strings.Join(e.Columns, ", "))
}

// Unwrap retorna o erro sentinela
func (e *SchemaError) Unwrap() error {
	return ErrSchema
}
