package reconciling

import (
	"fmt"
	"time"

	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/log"
	"github.com/vfg2006/missed-stops-report/pkg/utils"
)

// ResolveSlot encontra o par (dia da semana, fase) da data alvo no calendário de fases.
// Entradas repetidas para a mesma data são aceitas apenas se resolverem para o mesmo slot.
func ResolveSlot(target time.Time, calendar []domain.CalendarEntry) (domain.ScheduleSlot, error) {
	target = utils.DateOnly(target)

	var (
		slot    domain.ScheduleSlot
		matches int
	)
	for _, entry := range calendar {
		if !utils.EqualDate(entry.Date, target) {
			continue
		}
		matches++

		day, ok := domain.DayOfWeekCode(entry.DayOfWeek)
		if !ok {
			return domain.ScheduleSlot{}, &domain.CalendarLookupError{
				Date:    target,
				Matches: matches,
				Reason:  fmt.Sprintf("unknown day of week %q", entry.DayOfWeek),
			}
		}

		phase, ok := domain.PhaseCode(entry.Phase)
		if !ok {
			return domain.ScheduleSlot{}, &domain.CalendarLookupError{
				Date:    target,
				Matches: matches,
				Reason:  fmt.Sprintf("unknown phase %q", entry.Phase),
			}
		}

		candidate := domain.ScheduleSlot{DayOfWeek: day, Phase: phase}
		if matches > 1 && candidate != slot {
			return domain.ScheduleSlot{}, &domain.CalendarLookupError{
				Date:    target,
				Matches: matches,
				Reason:  fmt.Sprintf("ambiguous slots %s and %s", slot, candidate),
			}
		}
		slot = candidate
	}

	if matches == 0 {
		return domain.ScheduleSlot{}, &domain.CalendarLookupError{
			Date:   target,
			Reason: "date not found in calendar",
		}
	}

	if matches > 1 {
		log.L.WithFields(log.Fields{
			"target_date": target.Format(time.DateOnly),
			"matches":     matches,
			"slot":        slot.String(),
		}).Warn("Calendário de fases com linhas repetidas para a data alvo")
	}

	return slot, nil
}
