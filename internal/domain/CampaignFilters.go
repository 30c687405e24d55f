package domain

import "time"

const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// CampaignFilters são os filtros aceitos pela listagem de campanhas.
// O intervalo de datas só é aplicado quando as duas datas são informadas.
type CampaignFilters struct {
	Skip         int
	Limit        int
	CampaignType string
	StartDate    *time.Time
	EndDate      *time.Time
	Search       string
}

// HasDateRange indica se o filtro de sobreposição de datas deve ser aplicado
func (f *CampaignFilters) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// PaginatedCampaigns é a resposta paginada da listagem
type PaginatedCampaigns struct {
	Data       []*CampaignListItem `json:"data"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// NewPaginatedCampaigns calcula página (base zero) e total de páginas a partir de skip/limit
func NewPaginatedCampaigns(items []*CampaignListItem, total, skip, limit int) *PaginatedCampaigns {
	if items == nil {
		items = make([]*CampaignListItem, 0)
	}

	page, totalPages := 0, 0
	if limit > 0 {
		page = skip / limit
		totalPages = (total + limit - 1) / limit
	}

	return &PaginatedCampaigns{
		Data:       items,
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: totalPages,
	}
}
