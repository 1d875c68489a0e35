package get_catalog_service

import (
	"context"

	"github.com/m04kA/kstudio-agenda/internal/service/catalog/models"
)

type CatalogService interface {
	GetService(ctx context.Context, name string) (*models.ServiceDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
