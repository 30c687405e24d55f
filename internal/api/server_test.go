package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestNewHandler_ChainAppliesCors(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)

	service.EXPECT().
		ListCampaigns(gomock.Any(), gomock.Any()).
		Return(domain.NewPaginatedCampaigns(nil, 0, 0, 5), nil)

	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"*"}

	h := NewHandler(cfg, service)

	req := httptest.NewRequest(http.MethodGet, "/campaigns/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestNewHandler_TrailingSlashRedirect(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	h := NewHandler(&config.Config{}, mocks.NewMockCampaignService(ctrl))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaigns", nil))

	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/campaigns/", rec.Header().Get("Location"))
}
