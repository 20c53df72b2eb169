package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultLookbackDays é a janela usada pelos relatórios de "últimos 6 dias"
const DefaultLookbackDays = 6

// LookbackWindow define quantos dias de notas são considerados na correlação
type LookbackWindow struct {
	Enabled bool
	Days    int
}

// DefaultLookbackWindow retorna a janela padrão de 6 dias habilitada
func DefaultLookbackWindow() LookbackWindow {
	return LookbackWindow{Enabled: true, Days: DefaultLookbackDays}
}

// Contains indica se a data está dentro da janela que termina (exclusive) em runDate
func (w LookbackWindow) Contains(date, runDate time.Time) bool {
	if !w.Enabled {
		return true
	}
	start := runDate.AddDate(0, 0, -w.Days)
	return !date.Before(start) && date.Before(runDate)
}

// Covering alarga a janela até alcançar expectedDay; uma janela curta nunca esconde a venda do dia esperado
func (w LookbackWindow) Covering(expectedDay, runDate time.Time) LookbackWindow {
	if !w.Enabled || !expectedDay.Before(runDate) {
		return w
	}
	if gap := int(runDate.Sub(expectedDay).Hours() / 24); gap > w.Days {
		w.Days = gap
	}
	return w
}

// SurveyOverridePolicy define como o resultado da pesquisa é preenchido quando não há resposta
type SurveyOverridePolicy string

const (
	// SurveyOverrideStrict preserva "Service Completed In Last 6 Days" no resultado da pesquisa
	SurveyOverrideStrict SurveyOverridePolicy = "strict"
	// SurveyOverrideLenient colapsa tudo que não é parada perdida em "Completed"
	SurveyOverrideLenient SurveyOverridePolicy = "lenient"
)

// ParseSurveyOverridePolicy valida o nome da política vindo da configuração
func ParseSurveyOverridePolicy(value string) (SurveyOverridePolicy, error) {
	switch SurveyOverridePolicy(strings.ToLower(strings.TrimSpace(value))) {
	case SurveyOverrideStrict, "":
		return SurveyOverrideStrict, nil
	case SurveyOverrideLenient:
		return SurveyOverrideLenient, nil
	}
	return "", fmt.Errorf("política de pesquisa inválida: %q (valores aceitos: strict, lenient)", value)
}
