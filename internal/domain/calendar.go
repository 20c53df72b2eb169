package domain

import (
	"fmt"
	"strings"
	"time"
)

// CalendarEntry associa uma data do calendário a um slot da agenda de entregas
type CalendarEntry struct {
	Date      time.Time
	DayOfWeek string
	Phase     string
}

// ScheduleSlot é o par (dia da semana, fase) já convertido para os códigos numéricos
type ScheduleSlot struct {
	DayOfWeek int
	Phase     int
}

func (s ScheduleSlot) String() string {
	return fmt.Sprintf("day=%d phase=%d", s.DayOfWeek, s.Phase)
}

var dayOfWeekCodes = map[string]int{
	"sunday":    1,
	"monday":    2,
	"tuesday":   3,
	"wednesday": 4,
	"thursday":  5,
	"friday":    6,
	"saturday":  7,
}

var phaseCodes = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
}

// DayOfWeekCode converte o nome do dia ("Monday") para o código usado na agenda de paradas
func DayOfWeekCode(name string) (int, bool) {
	code, ok := dayOfWeekCodes[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// PhaseCode converte o nome da fase ("Two") para o código usado na agenda de paradas
func PhaseCode(name string) (int, bool) {
	code, ok := phaseCodes[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}
