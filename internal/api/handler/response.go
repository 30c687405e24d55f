package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error encoding response", nil)
	}
}

// writeServiceError traduz os erros do serviço de campanhas para a resposta HTTP
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		if errors.Is(err, campaigning.ErrCampaignNotFound) {
			logger.WithField("campaign_name", campaignErr.CampaignName).Debug("Campanha não encontrada")
			apiErrors.WriteError(w, campaignErr.Code, "Campaign not found", nil)
			return
		}

		logger.Error("Erro ao consultar campanhas")
		apiErrors.WriteError(w, campaignErr.Code, "Database operation error", nil)
		return
	}

	logger.Error("Erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
}
