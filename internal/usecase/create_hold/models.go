package create_hold

import "time"

// Request данные холда
type Request struct {
	Start     time.Time
	End       time.Time
	Service   string
	ExpiresAt time.Time
	Strategic bool
}

// Response идентификатор созданного события
type Response struct {
	ID string
}
