package common

import (
	"strconv"
	"strings"
)

// ParsePositiveInt converte o parâmetro em inteiro não negativo; valor vazio
// ou inválido cai no fallback.
func ParsePositiveInt(raw string, fallback int) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback, false
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil || value < 0 {
		return fallback, false
	}
	return value, true
}
