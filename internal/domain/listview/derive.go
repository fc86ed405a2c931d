// Package listview contiene las reglas puras de las pantallas de listado de la consola:
// campos derivados de cada registro (días restantes, clases de badge) y el filtrado
// por pestaña y búsqueda. No hace I/O.
package listview

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExpiringSoonDays ventana (en días) en la que un contrato activo se considera "por vencer".
const ExpiringSoonDays = 30

const secondsPerDay = 24 * 60 * 60

// Etiquetas de días restantes.
const (
	LabelUnknown = "—"
	LabelExpired = "Vencido"
)

// BadgeClass clase de presentación de un badge de estado o prioridad.
type BadgeClass string

const (
	BadgeDanger  BadgeClass = "badge-danger"
	BadgeWarning BadgeClass = "badge-warning"
	BadgeSuccess BadgeClass = "badge-success"
	BadgeInfo    BadgeClass = "badge-info"
	BadgeNeutral BadgeClass = "badge-neutral"
)

// DaysLeft resultado del cálculo de días restantes.
// Valid == false equivale a "desconocido" (fecha ausente o mal formada).
type DaysLeft struct {
	Days  int
	Valid bool
}

// Label texto a mostrar: LabelUnknown ("—") si es desconocido, "Vencido" si ya pasó, "N días" en otro caso.
func (d DaysLeft) Label() string {
	switch {
	case !d.Valid:
		return LabelUnknown
	case d.Days <= 0:
		return LabelExpired
	case d.Days == 1:
		return "1 día"
	default:
		return fmt.Sprintf("%d días", d.Days)
	}
}

// Expired indica si la fecha ya pasó. Un valor desconocido nunca está vencido.
func (d DaysLeft) Expired() bool {
	return d.Valid && d.Days <= 0
}

// Derived agrupa los campos derivados de un registro. Se recalculan en cada render
// y nunca se persisten; cada entidad llena solo los que aplican.
type Derived struct {
	DaysLeft      DaysLeft
	DaysLeftLabel string
	ExpiringSoon  bool
	StatusLabel   string
	StatusBadge   BadgeClass
	PriorityLabel string
	PriorityBadge BadgeClass
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseInstant interpreta una fecha ISO 8601. Las fechas sin zona horaria se toman en UTC.
func ParseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysUntil calcula ceil((end - now) / 1 día). El redondeo es hacia arriba:
// un contrato que vence en 23 horas reporta 1 día, no 0.
// La diferencia se toma en segundos Unix: time.Duration satura a ~292 años.
func DaysUntil(end string, now time.Time) DaysLeft {
	t, ok := ParseInstant(end)
	if !ok {
		return DaysLeft{}
	}
	secs := float64(t.Unix()-now.Unix()) + float64(t.Nanosecond()-now.Nanosecond())/1e9
	days := math.Ceil(secs / secondsPerDay)
	return DaysLeft{Days: int(days), Valid: true}
}

// ExpiringSoon: 0 < días <= 30 y estado "active". Un valor desconocido nunca es "por vencer".
func ExpiringSoon(d DaysLeft, status string) bool {
	return d.Valid && d.Days > 0 && d.Days <= ExpiringSoonDays && status == "active"
}

// PriorityBadge clase para la prioridad de una solicitud de mantenimiento.
func PriorityBadge(priority string) BadgeClass {
	switch priority {
	case "urgent", "high":
		return BadgeDanger
	case "medium":
		return BadgeWarning
	case "low":
		return BadgeSuccess
	default:
		return BadgeNeutral
	}
}

// MaintenanceStatusBadge clase para el estado de una solicitud de mantenimiento.
func MaintenanceStatusBadge(status string) BadgeClass {
	switch status {
	case "completed":
		return BadgeSuccess
	case "in_progress":
		return BadgeInfo
	default:
		return BadgeNeutral
	}
}

// LeaseStatusBadge clase para el estado de un contrato.
func LeaseStatusBadge(status string, expiringSoon bool) BadgeClass {
	if status != "active" {
		return BadgeNeutral
	}
	if expiringSoon {
		return BadgeWarning
	}
	return BadgeSuccess
}

// HumanizeEnum convierte un valor de enumeración para mostrarlo: "in_progress" -> "In Progress".
// Solo cambia la primera letra de cada palabra; el resto se conserva tal cual ("ON_HOLD" -> "ON HOLD").
func HumanizeEnum(s string) string {
	if s == "" {
		return ""
	}
	upper := cases.Upper(language.Und)
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = upper.String(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
