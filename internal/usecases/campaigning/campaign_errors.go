package campaigning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de campanhas
var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrDatabaseOperation = errors.New("database operation error")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err          error  // Erro base
	Code         string // Código de erro para API
	CampaignName string // Campanha envolvida (quando aplicável)
	Details      string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, campaignName string, details string) *CampaignError {
	return &CampaignError{
		Err:          err,
		Code:         code,
		CampaignName: campaignName,
		Details:      details,
	}
}
