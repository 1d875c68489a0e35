package start_dispute

import (
	"time"

	"github.com/m04kA/kstudio-agenda/pkg/types"
)

// Request слот, за который начинается спор
type Request struct {
	Session   string
	StartTime types.TimeString
}

// Response созданный холд
type Response struct {
	ID               string
	Session          string
	StartTime        types.TimeString
	Service          string
	Strategic        bool
	Start            time.Time
	End              time.Time
	ExpiresAt        time.Time
	CountdownSeconds int
}
