package tipification

import (
	"fmt"
	"log"
	"sort"
	"time"
)

// EstadoMensual is a per-debtor, per-month snapshot. Mes is keyed
// "YYYY-MM" and unique per debtor.
type EstadoMensual struct {
	Mes     string `json:"mes"`
	Deuda   int64  `json:"deuda"`
	Recaudo int64  `json:"recaudo"`
}

// Registro holds the already fetched records of one debtor, the unit
// the aggregation maps over. Actual is the cached current category
// used as fallback when the history has no applicable entry.
type Registro struct {
	DeudorID  int
	Actual    Categoria
	Historial []Entrada
	Estados   []EstadoMensual
}

// Resumen accumulates one report row per category
type Resumen struct {
	Cantidad   int   `json:"cantidad"`
	Recaudado  int64 `json:"recaudado"`
	SaldoDeuda int64 `json:"saldoDeuda"`
}

// Aggregator computes per-category totals at a reporting cutoff. It
// performs no I/O; callers fetch the records. IntegrityLog, when set,
// receives warnings about data that violates documented invariants —
// the aggregation still proceeds best effort, since a broken row must
// not sink the whole report.
type Aggregator struct {
	IntegrityLog *log.Logger
}

func (a *Aggregator) warnf(format string, args ...interface{}) {
	if a.IntegrityLog != nil {
		a.IntegrityLog.Printf(format, args...)
	}
}

// Aggregate resolves every debtor's category at the last instant of
// month/year and returns totals per category: debtor count, recaudo
// summed over the year up to the cutoff month, and the outstanding
// deuda taken from the latest nonzero statement in the same window. A
// debtor with no statements still counts toward its category.
func (a *Aggregator) Aggregate(registros []Registro, year, month int) (map[Categoria]Resumen, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("tipification: mes fuera de rango: %d", month)
	}
	if year < 1 {
		return nil, fmt.Errorf("tipification: año fuera de rango: %d", year)
	}

	corte := Corte(year, month)
	desde := fmt.Sprintf("%04d-01", year)
	hasta := fmt.Sprintf("%04d-%02d", year, month)

	res := make(map[Categoria]Resumen)
	for _, reg := range registros {
		for i := 1; i < len(reg.Historial); i++ {
			if reg.Historial[i].Fecha.Before(reg.Historial[i-1].Fecha) {
				a.warnf("deudor %d: historial de tipificación fuera de orden en la entrada %d", reg.DeudorID, i)
			}
		}

		r := ResolveAt(reg.Historial, corte, reg.Actual)
		if r.Tipificacion.Terminal() && r.VigenteDesde == nil {
			a.warnf("deudor %d: categoría terminal %s sin fecha de vigencia, excluido del reporte", reg.DeudorID, r.Tipificacion)
		}
		if !IncludeInYear(r, year) {
			continue
		}

		estados := make([]EstadoMensual, len(reg.Estados))
		copy(estados, reg.Estados)
		sort.SliceStable(estados, func(i, j int) bool { return estados[i].Mes < estados[j].Mes })

		var recaudado, saldo int64
		for i, e := range estados {
			if _, err := time.Parse("2006-01", e.Mes); err != nil {
				a.warnf("deudor %d: mes inválido %q en estado mensual", reg.DeudorID, e.Mes)
				continue
			}
			if i > 0 && estados[i-1].Mes == e.Mes {
				a.warnf("deudor %d: mes duplicado %q en estados mensuales", reg.DeudorID, e.Mes)
			}
			if e.Mes < desde || e.Mes > hasta {
				continue
			}
			recaudado += e.Recaudo
			// deuda cero no pisa el último saldo conocido
			if e.Deuda != 0 {
				saldo = e.Deuda
			}
		}

		s := res[r.Tipificacion]
		s.Cantidad++
		s.Recaudado += recaudado
		s.SaldoDeuda += saldo
		res[r.Tipificacion] = s
	}

	return res, nil
}
