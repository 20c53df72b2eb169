package reporting

import (
	"time"

	"github.com/vfg2006/missed-stops-report/pkg/utils"
)

// PreviousBusinessDay retorna o dia útil anterior à data de execução.
// Segunda volta para sexta e domingo volta para sexta; sábado volta para sexta normalmente.
func PreviousBusinessDay(runDate time.Time) time.Time {
	day := utils.DateOnly(runDate)
	switch day.Weekday() {
	case time.Monday:
		return day.AddDate(0, 0, -3)
	case time.Sunday:
		return day.AddDate(0, 0, -2)
	default:
		return day.AddDate(0, 0, -1)
	}
}
