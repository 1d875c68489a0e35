// Package presentation держит состояние сетки слотов: выбранную услугу и дату,
// стратегические блокировки и отсчеты холдов по слотам.
package presentation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	"github.com/m04kA/kstudio-agenda/internal/scheduling"
	"github.com/m04kA/kstudio-agenda/pkg/countdown"
	"github.com/m04kA/kstudio-agenda/pkg/types"
)

// slotTimer отсчет одного disputed слота
type slotTimer struct {
	cd      *countdown.Countdown
	stop    func()
	pending bool   // запрос холда в календарь в процессе
	holdID  string // событие календаря, созданное для слота
}

// Board состояние сетки слотов. Безопасна для конкурентного использования.
//
// Каждый disputed слот текущей сетки владеет своим отсчетом. Отсчеты запускаются
// при построении сетки и останавливаются, когда слот пропадает из нее
// (смена услуги или даты, снятие стратегической блокировки).
type Board struct {
	catalog    *domain.Catalog
	classifier scheduling.Classifier
	step       int
	clock      clockwork.Clock
	loc        *time.Location
	log        Logger
	metrics    Metrics

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	closed    bool
	selection domain.Selection
	overlay   *domain.StrategicOverlay
	timers    map[domain.SlotKey]*slotTimer
}

// NewBoard создает доску с первой услугой каталога на сегодняшнюю дату
func NewBoard(opts Options) (*Board, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("%w: catalog is required", domain.ErrInvalidCatalog)
	}
	if opts.Classifier == nil {
		opts.Classifier = scheduling.ArithmeticClassifier{}
	}
	if opts.StepMinutes == 0 {
		opts.StepMinutes = domain.DefaultStepMinutes
	}
	if opts.StepMinutes < 0 {
		return nil, fmt.Errorf("%w: %d", scheduling.ErrInvalidStep, opts.StepMinutes)
	}
	if opts.HoldSeconds <= 0 {
		opts.HoldSeconds = domain.DefaultHoldSeconds
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	if opts.Metrics == nil {
		opts.Metrics = noopMetrics{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	b := &Board{
		catalog:    opts.Catalog,
		classifier: opts.Classifier,
		step:       opts.StepMinutes,
		clock:      opts.Clock,
		loc:        opts.Location,
		log:        opts.Logger,
		metrics:    opts.Metrics,
		ctx:        ctx,
		cancel:     cancel,
		overlay:    domain.NewStrategicOverlay(),
		timers:     make(map[domain.SlotKey]*slotTimer),
	}
	b.selection = domain.Selection{
		Service:     opts.Catalog.DefaultService().Name,
		Date:        b.dateOf(opts.Clock.Now()),
		HoldSeconds: opts.HoldSeconds,
	}

	return b, nil
}

// Catalog возвращает каталог доски
func (b *Board) Catalog() *domain.Catalog {
	return b.catalog
}

// StepMinutes возвращает шаг сетки
func (b *Board) StepMinutes() int {
	return b.step
}

// Selection возвращает текущий выбор
func (b *Board) Selection() domain.Selection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selection
}

// StrategicTimes возвращает стратегически заблокированные времена по возрастанию
func (b *Board) StrategicTimes() []types.TimeString {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.overlay.Keys()
}

// Select меняет услугу, дату и длительность холда. Пустые значения оставляют текущие.
// Смена услуги или даты сбрасывает все отсчеты: прежние слоты больше не существуют.
func (b *Board) Select(ctx context.Context, serviceName string, date time.Time, holdMinutes int) (domain.SlotGrid, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return domain.SlotGrid{}, ErrClosed
	}

	next := b.selection
	if serviceName != "" {
		if _, ok := b.catalog.Service(serviceName); !ok {
			return domain.SlotGrid{}, fmt.Errorf("%w: %q", ErrUnknownService, serviceName)
		}
		next.Service = serviceName
	}
	if !date.IsZero() {
		y, m, d := date.Date()
		next.Date = time.Date(y, m, d, 0, 0, 0, 0, b.loc)
	}
	if holdMinutes != 0 {
		if holdMinutes < domain.MinHoldMinutes || holdMinutes > domain.MaxHoldMinutes {
			return domain.SlotGrid{}, fmt.Errorf("%w: %d not in %d..%d",
				ErrInvalidHoldMinutes, holdMinutes, domain.MinHoldMinutes, domain.MaxHoldMinutes)
		}
		next.HoldSeconds = holdMinutes * 60
	}

	if next.Service != b.selection.Service || !next.Date.Equal(b.selection.Date) {
		stopped := b.stopAllLocked()
		if stopped > 0 {
			b.log.Info("Board selection changed: service=%s, date=%s, stopped_countdowns=%d",
				next.Service, next.Date.Format(domain.DateFormat), stopped)
		}
	}
	b.selection = next

	grid, err := b.gridLocked(ctx)
	if err != nil {
		return domain.SlotGrid{}, err
	}
	b.metrics.IncGridRendered()
	return grid, nil
}

// Grid строит сетку для текущего выбора
func (b *Board) Grid(ctx context.Context) (domain.SlotGrid, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return domain.SlotGrid{}, ErrClosed
	}

	grid, err := b.gridLocked(ctx)
	if err != nil {
		return domain.SlotGrid{}, err
	}
	b.metrics.IncGridRendered()
	return grid, nil
}

// ToggleStrategic переключает стратегическую блокировку времени и возвращает новое состояние.
// Статус слотов меняется при следующем построении сетки.
func (b *Board) ToggleStrategic(start types.TimeString) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return false, ErrClosed
	}

	on := b.overlay.Toggle(start)
	b.log.Info("Strategic block toggled: time=%s, strategic=%t", start, on)
	return on, nil
}

// PrepareDispute резервирует disputed слот под создание холда.
// Окно холда: начало слота в выбранную дату плюс длительность услуги,
// истечение через оставшееся время отсчета слота. Результат нужно завершить
// через CompleteDispute или AbortDispute.
func (b *Board) PrepareDispute(ctx context.Context, session string, start types.TimeString) (Dispute, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return Dispute{}, ErrClosed
	}

	grid, err := b.gridLocked(ctx)
	if err != nil {
		return Dispute{}, err
	}

	slot, ok := findSlot(grid, session, start)
	if !ok {
		return Dispute{}, fmt.Errorf("%w: %s@%s", ErrSlotNotFound, session, start)
	}
	if !slot.IsDisputed() {
		return Dispute{}, fmt.Errorf("%w: %s@%s is %s", ErrSlotNotDisputed, session, start, slot.Status)
	}

	key := slot.Key()
	timer := b.timers[key]
	if timer.pending || timer.holdID != "" {
		return Dispute{}, fmt.Errorf("%w: %s", ErrDisputeInProgress, key)
	}
	remaining := timer.cd.Remaining()
	if timer.cd.Expired() || remaining == 0 {
		return Dispute{}, fmt.Errorf("%w: %s", ErrHoldExpired, key)
	}
	timer.pending = true

	startAt := start.On(b.selection.Date, b.loc)
	return Dispute{
		Key:              key,
		Service:          grid.Service.Name,
		Strategic:        slot.Strategic,
		Start:            startAt,
		End:              startAt.Add(time.Duration(grid.Service.DurationMinutes) * time.Minute),
		ExpiresAt:        b.clock.Now().Add(time.Duration(remaining) * time.Second),
		CountdownSeconds: remaining,
		timer:            timer,
	}, nil
}

// CompleteDispute привязывает созданный холд к слоту.
// Если слот уже пропал из сетки, привязка игнорируется.
func (b *Board) CompleteDispute(d Dispute, holdID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timers[d.Key] != d.timer || d.timer == nil {
		b.log.Warn("Hold created for slot no longer in view: slot=%s, hold_id=%s", d.Key, holdID)
		return
	}
	d.timer.pending = false
	d.timer.holdID = holdID
}

// AbortDispute снимает резерв слота после неудачного создания холда
func (b *Board) AbortDispute(d Dispute) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timers[d.Key] == d.timer && d.timer != nil {
		d.timer.pending = false
	}
}

// Close останавливает все отсчеты. Повторный вызов безопасен.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.stopAllLocked()
	b.cancel()
}

// gridLocked строит сетку и синхронизирует отсчеты с disputed слотами
func (b *Board) gridLocked(ctx context.Context) (domain.SlotGrid, error) {
	service, ok := b.catalog.Service(b.selection.Service)
	if !ok {
		return domain.SlotGrid{}, fmt.Errorf("%w: %q", ErrUnknownService, b.selection.Service)
	}

	sessions := b.catalog.Sessions()
	grid := domain.SlotGrid{
		Selection: b.selection,
		Service:   service,
		Sessions:  make([]domain.SessionSlots, 0, len(sessions)),
	}
	inView := make(map[domain.SlotKey]struct{})

	for _, session := range sessions {
		starts, err := scheduling.GenerateSlots(session.Start, session.End, service.DurationMinutes, b.step)
		if err != nil {
			return domain.SlotGrid{}, err
		}

		slots := make([]domain.Slot, 0, len(starts))
		for _, start := range starts {
			slot := domain.Slot{
				Session:         session.Label,
				StartTime:       start,
				DurationMinutes: service.DurationMinutes,
				Status:          b.classifier.Classify(ctx, b.selection.Date, start, b.overlay),
				Strategic:       b.overlay.Contains(start),
			}

			if slot.IsDisputed() {
				key := slot.Key()
				inView[key] = struct{}{}
				timer := b.ensureTimerLocked(key)
				slot.CountdownSeconds = timer.cd.Remaining()
				slot.CountdownRunning = !timer.cd.Expired()
				slot.HoldID = timer.holdID
			}

			slots = append(slots, slot)
		}

		grid.Sessions = append(grid.Sessions, domain.SessionSlots{Session: session, Slots: slots})
	}

	for key, timer := range b.timers {
		if _, ok := inView[key]; !ok {
			timer.stop()
			delete(b.timers, key)
		}
	}

	return grid, nil
}

func (b *Board) ensureTimerLocked(key domain.SlotKey) *slotTimer {
	if timer, ok := b.timers[key]; ok {
		return timer
	}

	timer := &slotTimer{}
	timer.cd = countdown.New(b.selection.HoldSeconds, func() { b.onExpire(key, timer) })
	timer.stop = timer.cd.Start(b.ctx, b.clock)
	b.timers[key] = timer
	b.metrics.IncCountdownStarted()

	return timer
}

// onExpire вызывается из горутины отсчета. Таймер остается в сетке с нулем,
// чтобы слот не начал отсчет заново, пока не пропадет из нее.
func (b *Board) onExpire(key domain.SlotKey, timer *slotTimer) {
	b.mu.Lock()
	current, ok := b.timers[key]
	holdID := timer.holdID
	b.mu.Unlock()

	if !ok || current != timer {
		return
	}

	b.metrics.IncCountdownExpired()
	if holdID != "" {
		b.log.Warn("Hold expired without confirmation: slot=%s, hold_id=%s", key, holdID)
		return
	}
	b.log.Info("Dispute countdown expired: slot=%s", key)
}

func (b *Board) stopAllLocked() int {
	n := len(b.timers)
	for key, timer := range b.timers {
		timer.stop()
		delete(b.timers, key)
	}
	return n
}

// dateOf возвращает полночь текущей даты момента t в таймзоне доски
func (b *Board) dateOf(t time.Time) time.Time {
	y, m, d := t.In(b.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, b.loc)
}

func findSlot(grid domain.SlotGrid, session string, start types.TimeString) (domain.Slot, bool) {
	for _, column := range grid.Sessions {
		if column.Session.Label != session {
			continue
		}
		for _, slot := range column.Slots {
			if slot.StartTime == start {
				return slot, true
			}
		}
	}
	return domain.Slot{}, false
}
