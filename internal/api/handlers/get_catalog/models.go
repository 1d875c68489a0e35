package get_catalog

import "github.com/m04kA/kstudio-agenda/internal/service/catalog/models"

// CatalogResponse HTTP response model
type CatalogResponse struct {
	BufferMinutes int               `json:"bufferMinutes"`
	StepMinutes   int               `json:"stepMinutes"`
	HoldMinutes   int               `json:"holdMinutes"`
	Services      []ServiceResponse `json:"services"`
	Sessions      []SessionResponse `json:"sessions"`
}

// ServiceResponse услуга каталога
type ServiceResponse struct {
	Name            string `json:"name"`
	BaseMinutes     int    `json:"baseMinutes"`
	DurationMinutes int    `json:"durationMinutes"`
	DurationLabel   string `json:"durationLabel"`
}

// SessionResponse рабочее окно
type SessionResponse struct {
	Label         string `json:"label"`
	Start         string `json:"start"`
	End           string `json:"end"`
	LengthMinutes int    `json:"lengthMinutes"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.CatalogResponse) *CatalogResponse {
	services := make([]ServiceResponse, len(resp.Services))
	for i, s := range resp.Services {
		services[i] = ServiceResponse{
			Name:            s.Name,
			BaseMinutes:     s.BaseMinutes,
			DurationMinutes: s.DurationMinutes,
			DurationLabel:   s.DurationLabel,
		}
	}

	sessions := make([]SessionResponse, len(resp.Sessions))
	for i, s := range resp.Sessions {
		sessions[i] = SessionResponse{
			Label:         s.Label,
			Start:         s.Start,
			End:           s.End,
			LengthMinutes: s.LengthMinutes,
		}
	}

	return &CatalogResponse{
		BufferMinutes: resp.BufferMinutes,
		StepMinutes:   resp.StepMinutes,
		HoldMinutes:   resp.HoldMinutes,
		Services:      services,
		Sessions:      sessions,
	}
}
