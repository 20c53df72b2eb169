package reconciling

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/missed-stops-report/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func cases(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func invoice(customerID string, date time.Time, caseCount string) domain.InvoiceRecord {
	return domain.InvoiceRecord{CustomerID: customerID, Date: date, CaseCount: cases(caseCount)}
}
