// Package agenda implements the order scheduling rules: the Wednesday/Saturday
// shipment calendar, urgency and payout classification, intra-day delivery
// windows and the default list ordering. Everything here is a pure function
// over (now, pedidos) — callers fetch a snapshot first and pass it in.
package agenda

import (
	"fmt"
	"time"
)

// FormatoFecha is the only accepted delivery-date layout on the wire.
const FormatoFecha = "2006-01-02"

// ParseFechaLocal interprets a YYYY-MM-DD string as a local calendar date.
// The date is built from its components instead of time.Parse so the result
// never shifts a day when the host runs in a non-UTC timezone.
func ParseFechaLocal(fecha string) (time.Time, error) {
	if len(fecha) != 10 {
		return time.Time{}, fmt.Errorf("fecha invalida %q: se espera YYYY-MM-DD", fecha)
	}
	var y, m, d int
	if _, err := fmt.Sscanf(fecha, "%4d-%2d-%2d", &y, &m, &d); err != nil {
		return time.Time{}, fmt.Errorf("fecha invalida %q: %w", fecha, err)
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("fecha fuera de rango %q", fecha)
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), nil
}

// Dia truncates a time to its local calendar date.
func Dia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Shipment days are fixed company-wide: encomiendas leave the warehouse on
// Wednesdays and Saturdays.
func esDiaEnvio(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Wednesday || wd == time.Saturday
}

// ProximoDiaEnvio returns now itself when it falls on a shipment day,
// otherwise the nearest upcoming Wednesday or Saturday.
func ProximoDiaEnvio(now time.Time) time.Time {
	d := Dia(now)
	for !esDiaEnvio(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// UltimoDiaEnvio walks backward one day at a time until it hits a shipment
// day, returning now itself when it already is one.
func UltimoDiaEnvio(now time.Time) time.Time {
	d := Dia(now)
	for !esDiaEnvio(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// FechaLimiteUrgencia is the packing deadline: one full shipment cycle past
// the last shipment day on or before now. Pending orders scheduled before it
// risk missing their cycle.
func FechaLimiteUrgencia(now time.Time) time.Time {
	return UltimoDiaEnvio(now).AddDate(0, 0, 7)
}

// NombreDia returns the Spanish weekday name for a date, as cached in
// Pedido.DiaEntrega.
func NombreDia(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return "lunes"
	case time.Tuesday:
		return "martes"
	case time.Wednesday:
		return "miercoles"
	case time.Thursday:
		return "jueves"
	case time.Friday:
		return "viernes"
	case time.Saturday:
		return "sabado"
	default:
		return "domingo"
	}
}
