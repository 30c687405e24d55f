package utils

import (
	"strconv"
	"strings"
)

// ParseLenientInt aceita vazio como zero e números exportados como data (ex: 1200-01-01),
// usando apenas o trecho antes do primeiro hífen. Decimais e negativos são rejeitados.
func ParseLenientInt(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	digits, _, _ := strings.Cut(value, "-")
	if digits == "" {
		return 0, &strconv.NumError{Func: "ParseLenientInt", Num: value, Err: strconv.ErrSyntax}
	}

	return strconv.ParseInt(digits, 10, 64)
}

// ParseLenientFloat aceita vazio como zero
func ParseLenientFloat(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	return strconv.ParseFloat(value, 64)
}
