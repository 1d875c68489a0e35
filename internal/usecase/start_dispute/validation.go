package start_dispute

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Session) == "" {
		return fmt.Errorf("%w: session is required", ErrInvalidInput)
	}
	return nil
}
