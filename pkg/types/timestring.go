package types

import (
	"fmt"
	"strconv"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// TimeString wall-clock время в формате HH:MM в пределах одних суток.
// Хранится как количество минут от полуночи, поэтому пригодно как ключ map.
type TimeString struct {
	minutes int
}

// ToMinutes парсит строку HH:MM в минуты от полуночи.
// Ожидается строго две цифры часа и две цифры минут, часы 00-23, минуты 00-59.
func ToMinutes(hhmm string) (int, error) {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, hhmm)
	}

	hours, err := parseTwoDigits(hhmm[0:2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: hours: %v", ErrInvalidFormat, hhmm, err)
	}
	mins, err := parseTwoDigits(hhmm[3:5])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: minutes: %v", ErrInvalidFormat, hhmm, err)
	}

	if hours > 23 {
		return 0, fmt.Errorf("%w: %q: hour out of range", ErrInvalidFormat, hhmm)
	}
	if mins > 59 {
		return 0, fmt.Errorf("%w: %q: minute out of range", ErrInvalidFormat, hhmm)
	}

	return hours*60 + mins, nil
}

// FromMinutes обратная к ToMinutes операция.
// Значения вне [0, 1440) приводятся по модулю суток.
func FromMinutes(minutes int) TimeString {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return TimeString{minutes: minutes}
}

// FormatMinutes форматирует минуты от полуночи как HH:MM
func FormatMinutes(minutes int) string {
	return FromMinutes(minutes).String()
}

// NewTimeStringFromString создает TimeString из строки HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := ToMinutes(s)
	if err != nil {
		return TimeString{}, err
	}
	return TimeString{minutes: minutes}, nil
}

// MustTimeString как NewTimeStringFromString, но паникует на некорректном значении.
// Используется только для статических значений по умолчанию.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// NewTimeString создает TimeString из часов и минут time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute()}
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() int {
	return t.minutes
}

// Digits возвращает часы и минуты, склеенные в одно число: "09:30" -> 930
func (t TimeString) Digits() int {
	return (t.minutes/60)*100 + t.minutes%60
}

// AddMinutes возвращает время, сдвинутое на n минут.
// Переход через границу суток считается ошибкой.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	result := t.minutes + n
	if result < 0 || result >= MinutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %s%+d min", ErrOutOfDay, t, n)
	}
	return TimeString{minutes: result}, nil
}

// IsBefore true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// On возвращает момент времени t в указанную дату и таймзону
func (t TimeString) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.minutes/60, t.minutes%60, 0, 0, loc)
}

// String возвращает HH:MM с ведущими нулями
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// MarshalText реализует encoding.TextMarshaler (JSON, TOML)
func (t TimeString) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler (JSON, TOML)
func (t *TimeString) UnmarshalText(text []byte) error {
	parsed, err := NewTimeStringFromString(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// parseTwoDigits разбирает ровно две десятичные цифры
func parseTwoDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric value %q", s)
		}
	}
	return strconv.Atoi(s)
}
