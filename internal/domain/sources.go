package domain

// SourceTables agrupa as tabelas de entrada já carregadas em memória
type SourceTables struct {
	Stops    []StopRecord
	Calendar []CalendarEntry
	Regions  []RegionLookup
	Invoices []InvoiceRecord
	Surveys  []SurveyResponse
}
