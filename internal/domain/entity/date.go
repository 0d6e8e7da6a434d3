package entity

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout formato ISO de fecha de calendario usado en almacenamiento y API.
const DateLayout = "2006-01-02"

// Date fecha de calendario sin hora. Internamente medianoche UTC.
type Date struct {
	t time.Time
}

// NewDate construye la fecha a partir de año, mes y día.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf toma el día de calendario de t en su propia zona horaria.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate interpreta una fecha YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// IsZero indica si la fecha no fue asignada.
func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays desplaza la fecha n días.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Before compara estrictamente.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After compara estrictamente.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Equal compara por día de calendario.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// Time devuelve la medianoche UTC del día.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON serializa como "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON acepta "YYYY-MM-DD"; cadena vacía o null deja la fecha en cero.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
