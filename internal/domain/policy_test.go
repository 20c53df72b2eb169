package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLookbackWindow_Contains(t *testing.T) {
	runDate := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	window := DefaultLookbackWindow()

	tests := []struct {
		name     string
		window   LookbackWindow
		date     time.Time
		expected bool
	}{
		{name: "Primeiro dia da janela", window: window, date: runDate.AddDate(0, 0, -6), expected: true},
		{name: "Véspera da janela", window: window, date: runDate.AddDate(0, 0, -7), expected: false},
		{name: "Dia anterior à execução", window: window, date: runDate.AddDate(0, 0, -1), expected: true},
		{name: "Dia da execução", window: window, date: runDate, expected: false},
		{name: "Janela desabilitada", window: LookbackWindow{}, date: runDate.AddDate(-1, 0, 0), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.window.Contains(tt.date, runDate))
		})
	}
}

func TestLookbackWindow_Covering(t *testing.T) {
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		window   LookbackWindow
		expected LookbackWindow
	}{
		{name: "Janela zero alcança a sexta", window: LookbackWindow{Enabled: true, Days: 0}, expected: LookbackWindow{Enabled: true, Days: 3}},
		{name: "Janela de dois dias alcança a sexta", window: LookbackWindow{Enabled: true, Days: 2}, expected: LookbackWindow{Enabled: true, Days: 3}},
		{name: "Janela padrão não muda", window: DefaultLookbackWindow(), expected: DefaultLookbackWindow()},
		{name: "Janela desabilitada não muda", window: LookbackWindow{Days: 0}, expected: LookbackWindow{Days: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			covering := tt.window.Covering(friday, monday)
			assert.Equal(t, tt.expected, covering)
			assert.True(t, covering.Contains(friday, monday))
		})
	}
}
