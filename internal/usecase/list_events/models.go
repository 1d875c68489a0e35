package list_events

import "github.com/m04kA/kstudio-agenda/internal/domain"

// Request параметры списка. MaxResults 0 означает лимит по умолчанию.
type Request struct {
	MaxResults int64
}

// Response ближайшие события по возрастанию начала
type Response struct {
	Events []domain.Event
}
