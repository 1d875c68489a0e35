package list_events

import "fmt"

// maxResultsLimit верхняя граница Calendar API для events.list
const maxResultsLimit = 2500

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.MaxResults < 0 || req.MaxResults > maxResultsLimit {
		return fmt.Errorf("%w: maxResults must be in 1..%d", ErrInvalidInput, maxResultsLimit)
	}
	return nil
}
