package domain

import "errors"

// ErrInvalidCatalog возвращается при некорректной конфигурации услуг или сессий
var ErrInvalidCatalog = errors.New("domain: invalid catalog")
