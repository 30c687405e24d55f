package campaigning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	campaigns *mocks.MockCampaignRepository
	sites     *mocks.MockCampaignSiteRepository
	periods   *mocks.MockCampaignPeriodRepository
}

func newTestService(t *testing.T) (CampaignService, serviceMocks) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		campaigns: mocks.NewMockCampaignRepository(ctrl),
		sites:     mocks.NewMockCampaignSiteRepository(ctrl),
		periods:   mocks.NewMockCampaignPeriodRepository(ctrl),
	}

	return NewService(m.campaigns, m.sites, m.periods), m
}

func TestService_ListCampaigns(t *testing.T) {
	ctx := context.Background()

	t.Run("Itens recebem contagem de sitios e períodos", func(t *testing.T) {
		service, m := newTestService(t)
		filters := domain.CampaignFilters{Skip: 5, Limit: 5}

		m.campaigns.EXPECT().
			List(gomock.Any(), filters).
			Return([]*domain.Campaign{{Name: "A"}, {Name: "B"}}, 12, nil)
		m.sites.EXPECT().CountByCampaign(gomock.Any(), "A").Return(3, nil)
		m.periods.EXPECT().CountByCampaign(gomock.Any(), "A").Return(2, nil)
		m.sites.EXPECT().CountByCampaign(gomock.Any(), "B").Return(0, nil)
		m.periods.EXPECT().CountByCampaign(gomock.Any(), "B").Return(0, nil)

		result, err := service.ListCampaigns(ctx, filters)

		require.NoError(t, err)
		assert.Equal(t, 12, result.Total)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 5, result.PageSize)
		assert.Equal(t, 3, result.TotalPages)
		require.Len(t, result.Data, 2)
		assert.Equal(t, "A", result.Data[0].Name)
		assert.Equal(t, 3, result.Data[0].SitesCount)
		assert.Equal(t, 2, result.Data[0].PeriodsCount)
		assert.Equal(t, 0, result.Data[1].SitesCount)
	})

	t.Run("Skip além do total retorna página vazia com total", func(t *testing.T) {
		service, m := newTestService(t)
		filters := domain.CampaignFilters{Skip: 50, Limit: 10}

		m.campaigns.EXPECT().List(gomock.Any(), filters).Return([]*domain.Campaign{}, 12, nil)

		result, err := service.ListCampaigns(ctx, filters)

		require.NoError(t, err)
		assert.Empty(t, result.Data)
		assert.NotNil(t, result.Data)
		assert.Equal(t, 12, result.Total)
		assert.Equal(t, 5, result.Page)
		assert.Equal(t, 2, result.TotalPages)
	})

	t.Run("Erro no banco é propagado", func(t *testing.T) {
		service, m := newTestService(t)

		m.campaigns.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("connection refused"))

		result, err := service.ListCampaigns(ctx, domain.CampaignFilters{Limit: 5})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrDatabaseOperation)

		var campaignErr *CampaignError
		require.ErrorAs(t, err, &campaignErr)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, campaignErr.Code)
	})

	t.Run("Erro na contagem de sitios é propagado", func(t *testing.T) {
		service, m := newTestService(t)

		m.campaigns.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.Campaign{{Name: "A"}}, 1, nil)
		m.sites.EXPECT().CountByCampaign(gomock.Any(), "A").Return(0, errors.New("timeout"))

		_, err := service.ListCampaigns(ctx, domain.CampaignFilters{Limit: 5})

		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

func TestService_GetCampaignDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Campanha com períodos e sitios", func(t *testing.T) {
		service, m := newTestService(t)

		m.campaigns.EXPECT().GetByName(gomock.Any(), "A").Return(&domain.Campaign{Name: "A", CampaignType: "Digital"}, nil)
		m.periods.EXPECT().ListByCampaign(gomock.Any(), "A").Return([]*domain.CampaignPeriod{{ID: 1, Period: "2023-01"}}, nil)
		m.sites.EXPECT().ListByCampaign(gomock.Any(), "A").Return(nil, nil)

		detail, err := service.GetCampaignDetail(ctx, "A")

		require.NoError(t, err)
		assert.Equal(t, "Digital", detail.CampaignType)
		assert.Len(t, detail.Periods, 1)
		assert.NotNil(t, detail.Sites)
		assert.Empty(t, detail.Sites)
	})

	t.Run("Campanha inexistente", func(t *testing.T) {
		service, m := newTestService(t)

		m.campaigns.EXPECT().GetByName(gomock.Any(), "X").Return(nil, nil)

		detail, err := service.GetCampaignDetail(ctx, "X")

		assert.Nil(t, detail)
		assert.ErrorIs(t, err, ErrCampaignNotFound)

		var campaignErr *CampaignError
		require.ErrorAs(t, err, &campaignErr)
		assert.Equal(t, apiErrors.ErrCampaignNotFound, campaignErr.Code)
		assert.Equal(t, "X", campaignErr.CampaignName)
	})
}

func TestService_Summaries(t *testing.T) {
	ctx := context.Background()

	t.Run("Resumo de sitios", func(t *testing.T) {
		service, m := newTestService(t)

		m.campaigns.EXPECT().GetByName(gomock.Any(), "A").Return(&domain.Campaign{Name: "A"}, nil)
		m.sites.EXPECT().ListByCampaign(gomock.Any(), "A").Return([]*domain.CampaignSite{
			{FurnitureType: "Billboard", Municipality: "Monterrey", MonthlyImpacts: 10},
			{FurnitureType: "Billboard", Municipality: "", MonthlyImpacts: 5},
		}, nil)

		summary, err := service.GetSitesSummary(ctx, "A")

		require.NoError(t, err)
		assert.Equal(t, 2, summary.TotalSites)
		require.Len(t, summary.ByType, 1)
		assert.Equal(t, int64(15), summary.ByType[0].TotalImpacts)
		assert.Len(t, summary.ByMunicipality, 2)
	})

	t.Run("Resumo de períodos", func(t *testing.T) {
		service, m := newTestService(t)

		m.campaigns.EXPECT().GetByName(gomock.Any(), "A").Return(&domain.Campaign{Name: "A"}, nil)
		m.periods.EXPECT().ListByCampaign(gomock.Any(), "A").Return([]*domain.CampaignPeriod{
			{Period: "2023-02"},
			{Period: "2023-01"},
		}, nil)

		summary, err := service.GetPeriodsSummary(ctx, "A")

		require.NoError(t, err)
		assert.Equal(t, 2, summary.TotalPeriods)
		assert.Equal(t, "2023-01", summary.Data[0].Period)
	})

	t.Run("Resumo demográfico", func(t *testing.T) {
		service, m := newTestService(t)

		m.campaigns.EXPECT().GetByName(gomock.Any(), "A").Return(&domain.Campaign{Name: "A", Men: 40, Women: 60}, nil)

		summary, err := service.GetDemographicSummary(ctx, "A")

		require.NoError(t, err)
		assert.Equal(t, 40.0, summary.GenderDistribution[0].Value)
		assert.Equal(t, 60.0, summary.GenderDistribution[1].Value)
	})

	t.Run("Resumos de campanha inexistente não consultam sitios nem períodos", func(t *testing.T) {
		service, m := newTestService(t)

		m.campaigns.EXPECT().GetByName(gomock.Any(), "X").Return(nil, nil).Times(3)

		_, err := service.GetSitesSummary(ctx, "X")
		assert.ErrorIs(t, err, ErrCampaignNotFound)

		_, err = service.GetPeriodsSummary(ctx, "X")
		assert.ErrorIs(t, err, ErrCampaignNotFound)

		_, err = service.GetDemographicSummary(ctx, "X")
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("Erro ao buscar campanha", func(t *testing.T) {
		service, m := newTestService(t)

		m.campaigns.EXPECT().GetByName(gomock.Any(), "A").Return(nil, errors.New("boom"))

		_, err := service.GetDemographicSummary(ctx, "A")

		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assert.NotErrorIs(t, err, ErrCampaignNotFound)
	})
}
