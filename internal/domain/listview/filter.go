package listview

import (
	"strings"

	"golang.org/x/text/cases"
)

// Tab definición de una pestaña de la pantalla. Los separadores ocupan una posición
// en la lista pero no tienen predicado asociado.
type Tab struct {
	Label     string
	Icon      string
	Separator bool
}

// Separator crea una entrada separadora.
func Separator() Tab { return Tab{Separator: true} }

// Predicate decide si un registro pasa un filtro.
type Predicate[T any] func(T) bool

// All predicado identidad: todos los registros pasan.
func All[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// TabTable tabla de predicados indexada por el índice de pestaña.
type TabTable[T any] map[int]Predicate[T]

// Lookup devuelve el predicado de la pestaña o la identidad si el índice no tiene entrada
// (separadores, pestañas de acción, índices fuera de rango).
func (t TabTable[T]) Lookup(index int) Predicate[T] {
	if p, ok := t[index]; ok && p != nil {
		return p
	}
	return All[T]()
}

// SearchFunc devuelve los campos de texto de un registro sobre los que se busca.
type SearchFunc[T any] func(T) []string

// ApplyTab filtra por pestaña conservando el orden de entrada.
func ApplyTab[T any](items []T, pred Predicate[T]) []T {
	if pred == nil {
		pred = All[T]()
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// ApplySearch filtra por término de búsqueda: coincidencia parcial sin distinguir
// mayúsculas en cualquiera de los campos. Un término vacío deja pasar todo.
func ApplySearch[T any](items []T, term string, fields SearchFunc[T]) []T {
	out := make([]T, 0, len(items))
	if term == "" || fields == nil {
		return append(out, items...)
	}
	fold := cases.Fold()
	needle := fold.String(term)
	for _, it := range items {
		if matchesAny(fold, fields(it), needle) {
			out = append(out, it)
		}
	}
	return out
}

func matchesAny(fold cases.Caser, haystack []string, needle string) bool {
	for _, f := range haystack {
		if f == "" {
			continue
		}
		if strings.Contains(fold.String(f), needle) {
			return true
		}
	}
	return false
}

// Filter compone ambas facetas: búsqueda sobre el resultado de la pestaña.
// Siempre se calcula desde la colección completa; nunca desde un subconjunto previo.
func Filter[T any](items []T, pred Predicate[T], term string, fields SearchFunc[T]) []T {
	return ApplySearch(ApplyTab(items, pred), term, fields)
}
