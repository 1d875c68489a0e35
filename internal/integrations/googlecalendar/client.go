package googlecalendar

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/m04kA/kstudio-agenda/internal/domain"
)

// Client клиент Google Calendar для одного календаря студии.
// Сервис API создается лениво при первом вызове: отсутствие учетных данных
// обнаруживается именно там и возвращается как ErrNotConfigured.
type Client struct {
	cfg     Config
	log     Logger
	metrics MetricsRecorder
	now     func() time.Time

	newService func(ctx context.Context) (*calendar.Service, error)

	mu  sync.Mutex
	svc *calendar.Service
}

// NewClient создает клиент с авторизацией через сервисный аккаунт (JWT)
func NewClient(cfg Config, log Logger, metrics MetricsRecorder) *Client {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	c := &Client{
		cfg:     cfg,
		log:     log,
		metrics: metrics,
		now:     time.Now,
	}
	c.newService = c.serviceAccountService
	return c
}

// NewClientWithService создает клиент поверх готового сервиса API
// (собственный транспорт, эмулятор, тесты)
func NewClientWithService(cfg Config, svc *calendar.Service, log Logger, metrics MetricsRecorder) *Client {
	c := NewClient(cfg, log, metrics)
	c.newService = func(context.Context) (*calendar.Service, error) {
		if cfg.CalendarID == "" {
			return nil, fmt.Errorf("%w: calendar id is empty", ErrNotConfigured)
		}
		return svc, nil
	}
	return c
}

// QueryFreeBusy возвращает занятые интервалы календаря в диапазоне [timeMin, timeMax)
func (c *Client) QueryFreeBusy(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error) {
	var busy []domain.BusyInterval

	err := c.call(ctx, opFreeBusy, func(svc *calendar.Service) error {
		resp, err := svc.Freebusy.Query(&calendar.FreeBusyRequest{
			TimeMin: timeMin.Format(time.RFC3339),
			TimeMax: timeMax.Format(time.RFC3339),
			Items:   []*calendar.FreeBusyRequestItem{{Id: c.cfg.CalendarID}},
		}).Context(ctx).Do()
		if err != nil {
			return err
		}

		cal, ok := resp.Calendars[c.cfg.CalendarID]
		if !ok {
			busy = []domain.BusyInterval{}
			return nil
		}
		if len(cal.Errors) > 0 {
			reasons := make([]string, 0, len(cal.Errors))
			for _, e := range cal.Errors {
				reasons = append(reasons, e.Domain+"/"+e.Reason)
			}
			return fmt.Errorf("calendar %s: %s", c.cfg.CalendarID, strings.Join(reasons, ", "))
		}

		busy = make([]domain.BusyInterval, 0, len(cal.Busy))
		for _, period := range cal.Busy {
			busy = append(busy, domain.BusyInterval{Start: period.Start, End: period.End})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return busy, nil
}

// CreateHold создает предварительное (tentative) событие-холд с приватными метаданными
func (c *Client) CreateHold(ctx context.Context, hold domain.Hold) (string, error) {
	event := &calendar.Event{
		Summary:     holdSummaryPrefix + hold.Service,
		Description: holdDescription,
		Start: &calendar.EventDateTime{
			DateTime: hold.Start.Format(time.RFC3339),
			TimeZone: c.cfg.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: hold.End.Format(time.RFC3339),
			TimeZone: c.cfg.Timezone,
		},
		Status: statusTentative,
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				domain.HoldPropertyHold:      "true",
				domain.HoldPropertyStrategic: strconv.FormatBool(hold.Strategic),
				domain.HoldPropertyService:   hold.Service,
				domain.HoldPropertyExpiresAt: hold.ExpiresAt.Format(time.RFC3339),
			},
		},
	}

	var id string
	err := c.call(ctx, opCreateHold, func(svc *calendar.Service) error {
		created, err := svc.Events.Insert(c.cfg.CalendarID, event).Context(ctx).Do()
		if err != nil {
			return err
		}
		id = created.Id
		return nil
	})
	if err != nil {
		return "", err
	}

	c.log.Info("Hold created in calendar: id=%s, service=%s, start=%s, expires_at=%s",
		id, hold.Service, hold.Start.Format(time.RFC3339), hold.ExpiresAt.Format(time.RFC3339))
	return id, nil
}

// ListUpcoming возвращает ближайшие события начиная с текущего момента, по возрастанию начала
func (c *Client) ListUpcoming(ctx context.Context, maxResults int64) ([]domain.Event, error) {
	var events []domain.Event

	err := c.call(ctx, opListUpcoming, func(svc *calendar.Service) error {
		resp, err := svc.Events.List(c.cfg.CalendarID).
			TimeMin(c.now().Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy(orderByStartTime).
			MaxResults(maxResults).
			Context(ctx).
			Do()
		if err != nil {
			return err
		}

		events = make([]domain.Event, 0, len(resp.Items))
		for _, item := range resp.Items {
			events = append(events, toDomainEvent(item))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}

// call получает сервис, выполняет операцию и учитывает ее в логах и метриках.
// Ошибки удаленного сервиса заворачиваются в ErrGateway с исходным сообщением.
func (c *Client) call(ctx context.Context, op string, fn func(svc *calendar.Service) error) error {
	start := time.Now()

	svc, err := c.service(ctx)
	if err != nil {
		c.log.Error("Calendar %s: client not ready: %v", op, err)
		c.metrics.ObserveGatewayCall(op, err, time.Since(start))
		return err
	}

	err = fn(svc)
	c.metrics.ObserveGatewayCall(op, err, time.Since(start))
	if err != nil {
		c.log.Error("Calendar %s failed: calendar_id=%s, error=%v", op, c.cfg.CalendarID, err)
		return fmt.Errorf("%w: %v", ErrGateway, err)
	}

	return nil
}

// service возвращает закешированный сервис API, создавая его при первом успешном вызове
func (c *Client) service(ctx context.Context) (*calendar.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.svc != nil {
		return c.svc, nil
	}

	svc, err := c.newService(ctx)
	if err != nil {
		return nil, err
	}
	c.svc = svc
	return svc, nil
}

// serviceAccountService авторизуется как сервисный аккаунт с областью calendar
func (c *Client) serviceAccountService(ctx context.Context) (*calendar.Service, error) {
	if !c.cfg.IsComplete() {
		return nil, fmt.Errorf("%w: set client email, private key and calendar id", ErrNotConfigured)
	}

	jwtCfg := &jwt.Config{
		Email:      c.cfg.ClientEmail,
		PrivateKey: []byte(c.cfg.PrivateKey),
		Scopes:     []string{calendar.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}

	base := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   c.cfg.Timeout,
	}
	// токен обновляется в фоне, поэтому контекст запроса здесь не используется
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := jwtCfg.Client(tokenCtx)
	httpClient.Timeout = c.cfg.Timeout

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return svc, nil
}

func toDomainEvent(item *calendar.Event) domain.Event {
	ev := domain.Event{
		ID:       item.Id,
		Summary:  item.Summary,
		Status:   item.Status,
		Start:    eventTime(item.Start),
		End:      eventTime(item.End),
		HTMLLink: item.HtmlLink,
	}

	if item.ExtendedProperties != nil {
		private := item.ExtendedProperties.Private
		ev.Hold = private[domain.HoldPropertyHold] == "true"
		ev.Strategic = private[domain.HoldPropertyStrategic] == "true"
		ev.Service = private[domain.HoldPropertyService]
		ev.ExpiresAt = private[domain.HoldPropertyExpiresAt]
	}

	return ev
}

// eventTime возвращает dateTime, а для событий на весь день дату
func eventTime(t *calendar.EventDateTime) string {
	if t == nil {
		return ""
	}
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}

type noopMetrics struct{}

func (noopMetrics) ObserveGatewayCall(string, error, time.Duration) {}
