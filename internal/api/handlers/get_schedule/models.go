package get_schedule

import (
	"github.com/m04kA/kstudio-agenda/internal/domain"
	"github.com/m04kA/kstudio-agenda/pkg/countdown"
	"github.com/m04kA/kstudio-agenda/pkg/types"
)

// ScheduleResponse текущий выбор и сетка слотов
type ScheduleResponse struct {
	Selection SelectionResponse `json:"selection"`
	Service   ServiceResponse   `json:"service"`
	Strategic []string          `json:"strategic"`
	Sessions  []SessionResponse `json:"sessions"`
}

// SelectionResponse выбранные услуга, дата и длительность холда
type SelectionResponse struct {
	Service     string `json:"service"`
	Date        string `json:"date"`
	HoldMinutes int    `json:"holdMinutes"`
}

// ServiceResponse выбранная услуга
type ServiceResponse struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	DurationLabel   string `json:"durationLabel"`
}

// SessionResponse колонка сессии
type SessionResponse struct {
	Label string         `json:"label"`
	Start string         `json:"start"`
	End   string         `json:"end"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse слот сетки. Поля отсчета заполнены только для disputed слотов.
type SlotResponse struct {
	StartTime        string `json:"startTime"`
	DurationMinutes  int    `json:"durationMinutes"`
	Status           string `json:"status"`
	Strategic        bool   `json:"strategic"`
	CountdownSeconds *int   `json:"countdownSeconds,omitempty"`
	Countdown        string `json:"countdown,omitempty"`
	CountdownRunning bool   `json:"countdownRunning,omitempty"`
	HoldID           string `json:"holdId,omitempty"`
}

// FromGrid конвертирует сетку доски в HTTP response
func FromGrid(grid domain.SlotGrid, strategic []types.TimeString) *ScheduleResponse {
	times := make([]string, len(strategic))
	for i, t := range strategic {
		times[i] = t.String()
	}

	sessions := make([]SessionResponse, len(grid.Sessions))
	for i, column := range grid.Sessions {
		slots := make([]SlotResponse, len(column.Slots))
		for j, slot := range column.Slots {
			slots[j] = fromSlot(slot)
		}
		sessions[i] = SessionResponse{
			Label: column.Session.Label,
			Start: column.Session.Start.String(),
			End:   column.Session.End.String(),
			Slots: slots,
		}
	}

	return &ScheduleResponse{
		Selection: SelectionResponse{
			Service:     grid.Selection.Service,
			Date:        grid.Selection.Date.Format(domain.DateFormat),
			HoldMinutes: grid.Selection.HoldMinutes(),
		},
		Service: ServiceResponse{
			Name:            grid.Service.Name,
			DurationMinutes: grid.Service.DurationMinutes,
			DurationLabel:   grid.Service.DurationLabel(),
		},
		Strategic: times,
		Sessions:  sessions,
	}
}

func fromSlot(slot domain.Slot) SlotResponse {
	resp := SlotResponse{
		StartTime:       slot.StartTime.String(),
		DurationMinutes: slot.DurationMinutes,
		Status:          string(slot.Status),
		Strategic:       slot.Strategic,
	}

	if slot.IsDisputed() {
		seconds := slot.CountdownSeconds
		resp.CountdownSeconds = &seconds
		resp.Countdown = countdown.FormatClock(seconds)
		resp.CountdownRunning = slot.CountdownRunning
		resp.HoldID = slot.HoldID
	}

	return resp
}
