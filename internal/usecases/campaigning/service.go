package campaigning

import (
	"context"
	"fmt"

	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/summarizing"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
)

type CampaignService interface {
	ListCampaigns(ctx context.Context, filters domain.CampaignFilters) (*domain.PaginatedCampaigns, error)
	GetCampaignDetail(ctx context.Context, name string) (*domain.CampaignDetail, error)
	GetSitesSummary(ctx context.Context, name string) (*domain.SitesSummary, error)
	GetPeriodsSummary(ctx context.Context, name string) (*domain.PeriodsSummary, error)
	GetDemographicSummary(ctx context.Context, name string) (*domain.CampaignSummary, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
	siteRepository     repository.CampaignSiteRepository
	periodRepository   repository.CampaignPeriodRepository
}

func NewService(
	campaignRepository repository.CampaignRepository,
	siteRepository repository.CampaignSiteRepository,
	periodRepository repository.CampaignPeriodRepository,
) CampaignService {
	return &Service{
		campaignRepository: campaignRepository,
		siteRepository:     siteRepository,
		periodRepository:   periodRepository,
	}
}

func databaseError(name string, err error) *CampaignError {
	return NewCampaignError(
		fmt.Errorf("%w: %v", ErrDatabaseOperation, err),
		apiErrors.ErrDatabaseOperation,
		name,
		"",
	)
}

func (s *Service) ListCampaigns(ctx context.Context, filters domain.CampaignFilters) (*domain.PaginatedCampaigns, error) {
	logger := log.ForContext(ctx)

	campaigns, total, err := s.campaignRepository.List(ctx, filters)
	if err != nil {
		logger.WithError(err).Error("Erro ao listar campanhas")
		return nil, databaseError("", err)
	}

	items := make([]*domain.CampaignListItem, 0, len(campaigns))
	for _, campaign := range campaigns {
		sitesCount, err := s.siteRepository.CountByCampaign(ctx, campaign.Name)
		if err != nil {
			return nil, databaseError(campaign.Name, err)
		}

		periodsCount, err := s.periodRepository.CountByCampaign(ctx, campaign.Name)
		if err != nil {
			return nil, databaseError(campaign.Name, err)
		}

		items = append(items, &domain.CampaignListItem{
			Campaign:     *campaign,
			SitesCount:   sitesCount,
			PeriodsCount: periodsCount,
		})
	}

	logger.WithFields(log.Fields{
		"campaigns_total":    total,
		"campaigns_returned": len(items),
		"filter_skip":        filters.Skip,
		"filter_limit":       filters.Limit,
	}).Debug("Campanhas listadas")

	return domain.NewPaginatedCampaigns(items, total, filters.Skip, filters.Limit), nil
}

// getCampaign traduz a ausência da campanha em ErrCampaignNotFound
func (s *Service) getCampaign(ctx context.Context, name string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepository.GetByName(ctx, name)
	if err != nil {
		log.ForContext(ctx).WithField("campaign_name", name).WithError(err).Error("Erro ao buscar campanha")
		return nil, databaseError(name, err)
	}

	if campaign == nil {
		return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, name, "")
	}

	return campaign, nil
}

func (s *Service) GetCampaignDetail(ctx context.Context, name string) (*domain.CampaignDetail, error) {
	campaign, err := s.getCampaign(ctx, name)
	if err != nil {
		return nil, err
	}

	periods, err := s.periodRepository.ListByCampaign(ctx, name)
	if err != nil {
		return nil, databaseError(name, err)
	}

	sites, err := s.siteRepository.ListByCampaign(ctx, name)
	if err != nil {
		return nil, databaseError(name, err)
	}

	if periods == nil {
		periods = make([]*domain.CampaignPeriod, 0)
	}
	if sites == nil {
		sites = make([]*domain.CampaignSite, 0)
	}

	return &domain.CampaignDetail{
		Campaign: *campaign,
		Periods:  periods,
		Sites:    sites,
	}, nil
}

func (s *Service) GetSitesSummary(ctx context.Context, name string) (*domain.SitesSummary, error) {
	if _, err := s.getCampaign(ctx, name); err != nil {
		return nil, err
	}

	sites, err := s.siteRepository.ListByCampaign(ctx, name)
	if err != nil {
		return nil, databaseError(name, err)
	}

	return summarizing.SummarizeSites(sites), nil
}

func (s *Service) GetPeriodsSummary(ctx context.Context, name string) (*domain.PeriodsSummary, error) {
	if _, err := s.getCampaign(ctx, name); err != nil {
		return nil, err
	}

	periods, err := s.periodRepository.ListByCampaign(ctx, name)
	if err != nil {
		return nil, databaseError(name, err)
	}

	return summarizing.SummarizePeriods(periods), nil
}

func (s *Service) GetDemographicSummary(ctx context.Context, name string) (*domain.CampaignSummary, error) {
	campaign, err := s.getCampaign(ctx, name)
	if err != nil {
		return nil, err
	}

	return summarizing.SummarizeDemographics(campaign), nil
}
