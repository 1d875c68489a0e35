package list_events

import (
	listEvents "github.com/m04kA/kstudio-agenda/internal/usecase/list_events"
)

// EventResponse событие календаря
type EventResponse struct {
	ID        string `json:"id"`
	Summary   string `json:"summary"`
	Status    string `json:"status"`
	Start     string `json:"start"`
	End       string `json:"end"`
	HTMLLink  string `json:"htmlLink,omitempty"`
	Hold      bool   `json:"hold"`
	Strategic bool   `json:"strategic"`
	Service   string `json:"service,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listEvents.Response) []EventResponse {
	events := make([]EventResponse, len(resp.Events))
	for i, e := range resp.Events {
		events[i] = EventResponse{
			ID:        e.ID,
			Summary:   e.Summary,
			Status:    e.Status,
			Start:     e.Start,
			End:       e.End,
			HTMLLink:  e.HTMLLink,
			Hold:      e.Hold,
			Strategic: e.Strategic,
			Service:   e.Service,
			ExpiresAt: e.ExpiresAt,
		}
	}
	return events
}
