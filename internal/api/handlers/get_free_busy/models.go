package get_free_busy

import (
	"time"

	getFreeBusy "github.com/m04kA/kstudio-agenda/internal/usecase/get_free_busy"
)

// FreeBusyResponse HTTP response model
type FreeBusyResponse struct {
	Busy []BusyInterval `json:"busy"`
}

// BusyInterval занятый интервал в формате календаря
type BusyInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ToUseCaseRequest парсит start и end в формате RFC3339
func ToUseCaseRequest(startStr, endStr string) (*getFreeBusy.Request, error) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil, err
	}

	return &getFreeBusy.Request{TimeMin: start, TimeMax: end}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeBusy.Response) *FreeBusyResponse {
	busy := make([]BusyInterval, len(resp.Busy))
	for i, b := range resp.Busy {
		busy[i] = BusyInterval{Start: b.Start, End: b.End}
	}
	return &FreeBusyResponse{Busy: busy}
}
