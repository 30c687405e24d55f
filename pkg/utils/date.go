package utils

import (
	"strings"
	"time"
)

// ParseDate lê uma data no formato YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(value))
}

// ParseOptionalDate retorna nil quando o valor vem vazio
func ParseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	date, err := ParseDate(value)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
