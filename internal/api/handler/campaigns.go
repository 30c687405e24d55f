package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

// parseCampaignFilters valida os parâmetros da listagem e acumula todos os campos inválidos
func parseCampaignFilters(query url.Values) (domain.CampaignFilters, []apiErrors.FieldError) {
	filters := domain.CampaignFilters{
		Skip:         0,
		Limit:        domain.DefaultPageSize,
		CampaignType: query.Get("tipo_campania"),
		Search:       query.Get("search"),
	}
	fieldErrors := make([]apiErrors.FieldError, 0)

	// presente porém vazio é inválido; ausente usa o padrão
	if _, ok := query["skip"]; ok {
		value := query.Get("skip")
		skip, err := strconv.Atoi(value)
		switch {
		case err != nil:
			fieldErrors = append(fieldErrors, apiErrors.FieldError{Field: "skip", Value: value, Reason: "must be an integer"})
		case skip < 0:
			fieldErrors = append(fieldErrors, apiErrors.FieldError{Field: "skip", Value: value, Reason: "must be greater than or equal to 0"})
		default:
			filters.Skip = skip
		}
	}

	if _, ok := query["limit"]; ok {
		value := query.Get("limit")
		limit, err := strconv.Atoi(value)
		switch {
		case err != nil:
			fieldErrors = append(fieldErrors, apiErrors.FieldError{Field: "limit", Value: value, Reason: "must be an integer"})
		case limit < 1 || limit > domain.MaxPageSize:
			fieldErrors = append(fieldErrors, apiErrors.FieldError{
				Field:  "limit",
				Value:  value,
				Reason: "must be between 1 and " + strconv.Itoa(domain.MaxPageSize),
			})
		default:
			filters.Limit = limit
		}
	}

	for _, field := range []string{"fecha_inicio", "fecha_fin"} {
		value := query.Get(field)
		date, err := utils.ParseOptionalDate(value)
		if err != nil {
			fieldErrors = append(fieldErrors, apiErrors.FieldError{Field: field, Value: value, Reason: "must be a date in YYYY-MM-DD format"})
			continue
		}

		if field == "fecha_inicio" {
			filters.StartDate = date
		} else {
			filters.EndDate = date
		}
	}

	return filters, fieldErrors
}

func ListCampaigns(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, fieldErrors := parseCampaignFilters(r.URL.Query())
		if len(fieldErrors) > 0 {
			log.ForContext(r.Context()).WithField("filter_errors", len(fieldErrors)).Debug("Parâmetros inválidos")
			apiErrors.WriteValidationError(w, fieldErrors)
			return
		}

		campaigns, err := service.ListCampaigns(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, campaigns)
	})
}

func GetCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.GetCampaignDetail(r.Context(), name)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, campaign)
	})
}

func GetSitesSummary(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("id")

		summary, err := service.GetSitesSummary(r.Context(), name)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, summary)
	})
}

func GetPeriodsSummary(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("id")

		summary, err := service.GetPeriodsSummary(r.Context(), name)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, summary)
	})
}

func GetCampaignSummary(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("id")

		summary, err := service.GetDemographicSummary(r.Context(), name)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, summary)
	})
}
