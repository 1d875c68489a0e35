package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	"github.com/m04kA/kstudio-agenda/internal/scheduling"
	"github.com/m04kA/kstudio-agenda/internal/service/catalog/models"
)

// Service сервис чтения каталога услуг и сессий
type Service struct {
	catalog     *domain.Catalog
	stepMinutes int
	holdMinutes int
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalog *domain.Catalog, stepMinutes, holdMinutes int, logger Logger) *Service {
	return &Service{
		catalog:     catalog,
		stepMinutes: stepMinutes,
		holdMinutes: holdMinutes,
		logger:      logger,
	}
}

// GetCatalog возвращает каталог целиком
func (s *Service) GetCatalog(_ context.Context) (*models.CatalogResponse, error) {
	services := s.catalog.Services()
	sessions := s.catalog.Sessions()

	resp := &models.CatalogResponse{
		BufferMinutes: s.catalog.BufferMinutes(),
		StepMinutes:   s.stepMinutes,
		HoldMinutes:   s.holdMinutes,
		Services:      make([]models.ServiceResponse, 0, len(services)),
		Sessions:      make([]models.SessionResponse, 0, len(sessions)),
	}
	for _, svc := range services {
		resp.Services = append(resp.Services, models.FromDomainService(svc))
	}
	for _, session := range sessions {
		resp.Sessions = append(resp.Sessions, models.FromDomainSession(session))
	}

	s.logger.Info("GetCatalog: services=%d, sessions=%d", len(resp.Services), len(resp.Sessions))
	return resp, nil
}

// GetService возвращает услугу и сколько стартов помещается в каждую сессию
func (s *Service) GetService(_ context.Context, name string) (*models.ServiceDetailsResponse, error) {
	svc, ok := s.catalog.Service(name)
	if !ok {
		s.logger.Warn("GetService: service %q not found", name)
		return nil, ErrServiceNotFound
	}

	sessions := s.catalog.Sessions()
	counts := make([]models.SessionSlotCount, 0, len(sessions))
	for _, session := range sessions {
		starts, err := scheduling.GenerateSlots(session.Start, session.End, svc.DurationMinutes, s.stepMinutes)
		if err != nil {
			s.logger.Error("GetService: failed to generate slots for %q in %s: %v", name, session.Label, err)
			return nil, fmt.Errorf("%w: generate slots: %v", ErrInternal, err)
		}
		counts = append(counts, models.SessionSlotCount{Session: session.Label, Slots: len(starts)})
	}

	return &models.ServiceDetailsResponse{
		Service:    models.FromDomainService(svc),
		SlotCounts: counts,
	}, nil
}
