package get_catalog_service

import "github.com/m04kA/kstudio-agenda/internal/service/catalog/models"

// ServiceDetailsResponse HTTP response model
type ServiceDetailsResponse struct {
	Name            string             `json:"name"`
	BaseMinutes     int                `json:"baseMinutes"`
	DurationMinutes int                `json:"durationMinutes"`
	DurationLabel   string             `json:"durationLabel"`
	Sessions        []SessionSlotCount `json:"sessions"`
}

// SessionSlotCount количество стартов услуги в сессии
type SessionSlotCount struct {
	Session string `json:"session"`
	Slots   int    `json:"slots"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ServiceDetailsResponse) *ServiceDetailsResponse {
	sessions := make([]SessionSlotCount, len(resp.SlotCounts))
	for i, c := range resp.SlotCounts {
		sessions[i] = SessionSlotCount{Session: c.Session, Slots: c.Slots}
	}

	return &ServiceDetailsResponse{
		Name:            resp.Service.Name,
		BaseMinutes:     resp.Service.BaseMinutes,
		DurationMinutes: resp.Service.DurationMinutes,
		DurationLabel:   resp.Service.DurationLabel,
		Sessions:        sessions,
	}
}
