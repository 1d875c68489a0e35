package start_dispute

import (
	"time"

	startDispute "github.com/m04kA/kstudio-agenda/internal/usecase/start_dispute"
	"github.com/m04kA/kstudio-agenda/pkg/types"
)

// StartDisputeRequest HTTP request model
type StartDisputeRequest struct {
	Session   string `json:"session"`
	StartTime string `json:"startTime"` // HH:MM
}

// ToUseCaseRequest конвертирует HTTP request в usecase request
func (r *StartDisputeRequest) ToUseCaseRequest() (*startDispute.Request, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	return &startDispute.Request{
		Session:   r.Session,
		StartTime: start,
	}, nil
}

// StartDisputeResponse созданный холд
type StartDisputeResponse struct {
	ID               string `json:"id"`
	Session          string `json:"session"`
	StartTime        string `json:"startTime"`
	Service          string `json:"service"`
	Strategic        bool   `json:"strategic"`
	StartISO         string `json:"startIso"`
	EndISO           string `json:"endIso"`
	ExpiresAtISO     string `json:"expiresAtIso"`
	CountdownSeconds int    `json:"countdownSeconds"`
}

// FromUseCaseResponse конвертирует usecase response в HTTP response
func FromUseCaseResponse(resp *startDispute.Response) *StartDisputeResponse {
	return &StartDisputeResponse{
		ID:               resp.ID,
		Session:          resp.Session,
		StartTime:        resp.StartTime.String(),
		Service:          resp.Service,
		Strategic:        resp.Strategic,
		StartISO:         resp.Start.Format(time.RFC3339),
		EndISO:           resp.End.Format(time.RFC3339),
		ExpiresAtISO:     resp.ExpiresAt.Format(time.RFC3339),
		CountdownSeconds: resp.CountdownSeconds,
	}
}
