package domain

import (
	"fmt"

	"github.com/m04kA/kstudio-agenda/pkg/types"
)

// Service is a catalog entry. DurationMinutes already includes the buffer.
type Service struct {
	Name            string
	BaseMinutes     int
	DurationMinutes int
}

// DurationLabel returns the total duration as "2h00"
func (s Service) DurationLabel() string {
	return FormatDuration(s.DurationMinutes)
}

// Session is a named working window inside a day
type Session struct {
	Label string
	Start types.TimeString
	End   types.TimeString
}

// LengthMinutes returns the size of the session window
func (s Session) LengthMinutes() int {
	return s.End.Minutes() - s.Start.Minutes()
}

// Catalog is the immutable set of services and sessions of the studio.
// It is built once at startup and shared read-only.
type Catalog struct {
	bufferMinutes int
	services      []Service
	sessions      []Session
	byName        map[string]int
	byLabel       map[string]int
}

// NewCatalog validates the input and computes service durations (base + buffer)
func NewCatalog(bufferMinutes int, services []Service, sessions []Session) (*Catalog, error) {
	if bufferMinutes < 0 {
		return nil, fmt.Errorf("%w: buffer must not be negative", ErrInvalidCatalog)
	}
	if len(services) == 0 {
		return nil, fmt.Errorf("%w: at least one service is required", ErrInvalidCatalog)
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("%w: at least one session is required", ErrInvalidCatalog)
	}

	c := &Catalog{
		bufferMinutes: bufferMinutes,
		services:      make([]Service, 0, len(services)),
		sessions:      make([]Session, 0, len(sessions)),
		byName:        make(map[string]int, len(services)),
		byLabel:       make(map[string]int, len(sessions)),
	}

	for _, s := range services {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: service name is required", ErrInvalidCatalog)
		}
		if s.BaseMinutes <= 0 {
			return nil, fmt.Errorf("%w: service %q: duration must be positive", ErrInvalidCatalog, s.Name)
		}
		if _, exists := c.byName[s.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate service %q", ErrInvalidCatalog, s.Name)
		}
		s.DurationMinutes = s.BaseMinutes + bufferMinutes
		c.byName[s.Name] = len(c.services)
		c.services = append(c.services, s)
	}

	for _, s := range sessions {
		if s.Label == "" {
			return nil, fmt.Errorf("%w: session label is required", ErrInvalidCatalog)
		}
		if !s.Start.IsBefore(s.End) {
			return nil, fmt.Errorf("%w: session %q: start %s must be before end %s",
				ErrInvalidCatalog, s.Label, s.Start, s.End)
		}
		if _, exists := c.byLabel[s.Label]; exists {
			return nil, fmt.Errorf("%w: duplicate session %q", ErrInvalidCatalog, s.Label)
		}
		c.byLabel[s.Label] = len(c.sessions)
		c.sessions = append(c.sessions, s)
	}

	return c, nil
}

// DefaultServices returns the studio price list without buffer applied
func DefaultServices() []Service {
	return []Service{
		{Name: "Manutenção 100–150g", BaseMinutes: 105},
		{Name: "Manutenção 200–250g", BaseMinutes: 150},
		{Name: "Aplicação 100–150g", BaseMinutes: 120},
		{Name: "Aplicação 200–250g", BaseMinutes: 180},
		{Name: "Escovar e modelar", BaseMinutes: 45},
		{Name: "Lavar", BaseMinutes: 25},
	}
}

// DefaultSessions returns the morning and afternoon windows
func DefaultSessions() []Session {
	return []Session{
		{Label: "Manhã", Start: types.MustTimeString("09:30"), End: types.MustTimeString("13:00")},
		{Label: "Tarde", Start: types.MustTimeString("14:30"), End: types.MustTimeString("19:00")},
	}
}

// DefaultCatalog returns the built-in studio catalog
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultBufferMinutes, DefaultServices(), DefaultSessions())
	if err != nil {
		panic(err)
	}
	return c
}

// BufferMinutes returns the turnaround buffer added to every service
func (c *Catalog) BufferMinutes() int {
	return c.bufferMinutes
}

// Services returns services in catalog order
func (c *Catalog) Services() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// Sessions returns sessions in catalog order
func (c *Catalog) Sessions() []Session {
	out := make([]Session, len(c.sessions))
	copy(out, c.sessions)
	return out
}

// Service looks up a service by name
func (c *Catalog) Service(name string) (Service, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Service{}, false
	}
	return c.services[i], true
}

// Session looks up a session by label
func (c *Catalog) Session(label string) (Session, bool) {
	i, ok := c.byLabel[label]
	if !ok {
		return Session{}, false
	}
	return c.sessions[i], true
}

// DefaultService returns the first service of the catalog
func (c *Catalog) DefaultService() Service {
	return c.services[0]
}

// FormatDuration formats minutes as "1h05"
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}
