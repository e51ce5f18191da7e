package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Despensa-api/internal/domain/stock"
)

// DateLayout formato de fechas en la API.
const DateLayout = "2006-01-02"

// Date fecha sin hora serializada como "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate envuelve t; nil devuelve nil.
func NewDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: stock.DateOf(*t)}
}

// ParseDate interpreta "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q, se espera %s", s, DateLayout)
	}
	return Date{Time: t}, nil
}

// TimePtr devuelve la fecha como *time.Time (medianoche UTC); nil si d es nil.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := stock.DateOf(d.Time)
	return &t
}

func (d Date) String() string {
	return d.Time.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("fecha inválida %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
