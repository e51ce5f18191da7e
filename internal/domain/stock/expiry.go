// Package stock contiene la lógica de dominio de la despensa: clasificación de vencimiento
// y agregación de existencias. No depende de infraestructura.
package stock

import "time"

// DefaultWindowDays días de anticipación para considerar un lote "por vencer".
const DefaultWindowDays = 30

// ExpiryStatus estado de vencimiento de un lote, derivado de la fecha actual.
type ExpiryStatus string

const (
	ExpiryNone        ExpiryStatus = ""
	ExpiryApproaching ExpiryStatus = "APPROACHING"
	ExpiryExpired     ExpiryStatus = "EXPIRED"
)

// ExpiryPolicy clasifica fechas de vencimiento contra el día actual.
// Now se consulta en cada evaluación: la misma fecha guardada cambia de estado con el tiempo.
type ExpiryPolicy struct {
	WindowDays int
	Now        func() time.Time
}

// NewExpiryPolicy construye la política con el reloj del sistema.
func NewExpiryPolicy(windowDays int) ExpiryPolicy {
	if windowDays < 0 {
		windowDays = DefaultWindowDays
	}
	return ExpiryPolicy{WindowDays: windowDays, Now: time.Now}
}

// Today fecha actual (medianoche UTC del día calendario de Now).
func (p ExpiryPolicy) Today() time.Time {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return DateOf(now())
}

// Status devuelve EXPIRED si expiry < hoy, APPROACHING si hoy <= expiry <= hoy+WindowDays,
// y ExpiryNone si no hay fecha o está más lejos que la ventana.
func (p ExpiryPolicy) Status(expiry *time.Time) ExpiryStatus {
	return Classify(expiry, p.Today(), p.WindowDays)
}

// Classify versión pura de ExpiryPolicy.Status con el día explícito.
func Classify(expiry *time.Time, today time.Time, windowDays int) ExpiryStatus {
	if expiry == nil {
		return ExpiryNone
	}
	d := DateOf(*expiry)
	today = DateOf(today)
	if d.Before(today) {
		return ExpiryExpired
	}
	if !d.After(today.AddDate(0, 0, windowDays)) {
		return ExpiryApproaching
	}
	return ExpiryNone
}

// DateOf trunca t a su día calendario (en la zona de t) y lo expresa como medianoche UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
