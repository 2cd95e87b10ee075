package tipification

import "time"

// Entrada is one append-only record of the tipification history of a
// debtor. The persisted shape is exactly {fecha, tipificacion}.
type Entrada struct {
	Fecha        time.Time `json:"fecha"`
	Tipificacion Categoria `json:"tipificacion"`
}

// Resolucion is the category in effect at a cutoff. VigenteDesde is
// nil when no history entry applied and the cached current category
// was used as fallback.
type Resolucion struct {
	Tipificacion Categoria  `json:"tipificacion"`
	VigenteDesde *time.Time `json:"vigenteDesde"`
}

// ResolveAt returns the category in effect at corte: the history
// entry with the greatest fecha not after corte (the boundary is
// inclusive). With no applicable entry the fallback actual wins.
//
// Two entries sharing the same fecha are not ordered by the source
// data; the one later in the slice wins. That tie-break is an
// implementation detail, not a contract.
func ResolveAt(historial []Entrada, corte time.Time, actual Categoria) Resolucion {
	var best *Entrada
	for i := range historial {
		e := &historial[i]
		if e.Fecha.After(corte) {
			continue
		}
		if best == nil || !e.Fecha.Before(best.Fecha) {
			best = e
		}
	}
	if best == nil {
		return Resolucion{Tipificacion: actual}
	}
	desde := best.Fecha
	return Resolucion{Tipificacion: best.Tipificacion, VigenteDesde: &desde}
}

// Corte returns the inclusive reporting cutoff for a year and month:
// the last instant of that month in local time.
func Corte(year, month int) time.Time {
	return time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.Local).
		Add(-time.Millisecond)
}

// IncludeInYear reports whether a resolved debtor belongs in the
// report for year. INACTIVO never reports. A terminal category only
// reports in the calendar year the debtor entered it; earlier
// terminations were already counted in their own year. A terminal
// resolution without an effective date cannot be attributed to any
// year and is excluded.
func IncludeInYear(r Resolucion, year int) bool {
	if r.Tipificacion == Inactivo {
		return false
	}
	if !r.Tipificacion.Terminal() {
		return true
	}
	return r.VigenteDesde != nil && r.VigenteDesde.Year() == year
}
