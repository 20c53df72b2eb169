package source

import (
	"strconv"
	"strings"
)

// NormalizeCustomerID remove espaços e o ".0" que planilhas acrescentam a códigos numéricos
func NormalizeCustomerID(raw string) string {
	return normalizeKey(raw)
}

func normalizeKey(raw string) string {
	value := strings.TrimSpace(raw)
	if integral, ok := strings.CutSuffix(value, ".0"); ok && isDigits(integral) {
		return integral
	}
	return value
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseCode lê códigos inteiros (fase, dia da semana) aceitando "2" e "2.0"
func parseCode(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	if code, err := strconv.Atoi(value); err == nil {
		return code, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != float64(int(f)) {
		return 0, strconv.ErrSyntax
	}
	return int(f), nil
}

func cleanHeader(header []string) []string {
	cleaned := make([]string, len(header))
	for i, name := range header {
		cleaned[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}
	return cleaned
}

func missingColumns(header []string, required []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		present[name] = struct{}{}
	}

	var missing []string
	for _, name := range required {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
