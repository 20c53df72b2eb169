// Package domain contém as estruturas de dados do domínio do relatório de paradas perdidas
package domain

// StopRecord representa uma visita recorrente esperada para um cliente
type StopRecord struct {
	CustomerID string
	Territory  string
	Phase      int
	DayOfWeek  int
}

// RegionLookup associa um território à sua região
type RegionLookup struct {
	Territory string
	Region    string
}
