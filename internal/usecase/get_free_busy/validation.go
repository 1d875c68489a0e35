package get_free_busy

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TimeMin.IsZero() || req.TimeMax.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.TimeMax.After(req.TimeMin) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	return nil
}
