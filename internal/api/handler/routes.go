package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/campaigning"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/campaigns/",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/campaigns/:id",
			Method:  http.MethodGet,
			Handler: GetCampaign(service),
		},
		{
			Path:    "/campaigns/:id/sites/summary",
			Method:  http.MethodGet,
			Handler: GetSitesSummary(service),
		},
		{
			Path:    "/campaigns/:id/periods/summary",
			Method:  http.MethodGet,
			Handler: GetPeriodsSummary(service),
		},
		{
			Path:    "/campaigns/:id/summary",
			Method:  http.MethodGet,
			Handler: GetCampaignSummary(service),
		},
	}
}
