package models

import "github.com/m04kA/kstudio-agenda/internal/domain"

// CatalogResponse каталог студии
type CatalogResponse struct {
	BufferMinutes int
	StepMinutes   int
	HoldMinutes   int
	Services      []ServiceResponse
	Sessions      []SessionResponse
}

// ServiceResponse услуга с длительностью, включающей буфер
type ServiceResponse struct {
	Name            string
	BaseMinutes     int
	DurationMinutes int
	DurationLabel   string
}

// SessionResponse рабочее окно
type SessionResponse struct {
	Label         string
	Start         string
	End           string
	LengthMinutes int
}

// ServiceDetailsResponse услуга и число стартов в каждой сессии
type ServiceDetailsResponse struct {
	Service    ServiceResponse
	SlotCounts []SessionSlotCount
}

// SessionSlotCount количество возможных стартов услуги в сессии
type SessionSlotCount struct {
	Session string
	Slots   int
}

// FromDomainService конвертирует доменную услугу
func FromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		Name:            s.Name,
		BaseMinutes:     s.BaseMinutes,
		DurationMinutes: s.DurationMinutes,
		DurationLabel:   s.DurationLabel(),
	}
}

// FromDomainSession конвертирует доменную сессию
func FromDomainSession(s domain.Session) SessionResponse {
	return SessionResponse{
		Label:         s.Label,
		Start:         s.Start.String(),
		End:           s.End.String(),
		LengthMinutes: s.LengthMinutes(),
	}
}
