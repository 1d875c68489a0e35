package create_hold

import (
	"fmt"
	"strings"
	"time"

	createHold "github.com/m04kA/kstudio-agenda/internal/usecase/create_hold"
)

// CreateHoldRequest HTTP request model
type CreateHoldRequest struct {
	StartISO     string `json:"startIso"`
	EndISO       string `json:"endIso"`
	Service      string `json:"service"`
	ExpiresAtISO string `json:"expiresAtIso"`
	Strategic    bool   `json:"strategic,omitempty"`
}

// CreateHoldResponse HTTP response model
type CreateHoldResponse struct {
	ID string `json:"id"`
}

// HasRequiredFields true, если заполнены все обязательные поля. Пробелы не считаются значением.
func (r *CreateHoldRequest) HasRequiredFields() bool {
	return strings.TrimSpace(r.StartISO) != "" &&
		strings.TrimSpace(r.EndISO) != "" &&
		strings.TrimSpace(r.Service) != "" &&
		strings.TrimSpace(r.ExpiresAtISO) != ""
}

// ToUseCaseRequest парсит временные метки в формате RFC3339
func (r *CreateHoldRequest) ToUseCaseRequest() (*createHold.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartISO)
	if err != nil {
		return nil, fmt.Errorf("startIso: %w", err)
	}
	end, err := time.Parse(time.RFC3339, r.EndISO)
	if err != nil {
		return nil, fmt.Errorf("endIso: %w", err)
	}
	expiresAt, err := time.Parse(time.RFC3339, r.ExpiresAtISO)
	if err != nil {
		return nil, fmt.Errorf("expiresAtIso: %w", err)
	}

	return &createHold.Request{
		Start:     start,
		End:       end,
		Service:   r.Service,
		ExpiresAt: expiresAt,
		Strategic: r.Strategic,
	}, nil
}
