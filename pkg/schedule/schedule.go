// Package schedule generates and recomputes amortization tables for
// payment agreements.
package schedule

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Periodicidad is the interval between installments
type Periodicidad string

const (
	Semanal   Periodicidad = "semanal"
	Quincenal Periodicidad = "quincenal"
	Mensual   Periodicidad = "mensual"
)

// Cuota holds one installment of an agreement schedule
type Cuota struct {
	Numero                 int    `json:"numero"`
	FechaPago              string `json:"fechaPago"`
	ValorCuota             int64  `json:"valorCuota"`
	CapitalCuota           int64  `json:"capitalCuota"`
	HonorariosCuota        int64  `json:"honorariosCuota"`
	CapitalSaldoAntes      int64  `json:"capitalSaldoAntes"`
	CapitalSaldoDespues    int64  `json:"capitalSaldoDespues"`
	HonorariosSaldoAntes   int64  `json:"honorariosSaldoAntes"`
	HonorariosSaldoDespues int64  `json:"honorariosSaldoDespues"`
}

// Params holds the agreement terms a schedule is generated from
type Params struct {
	CapitalInicial       int64
	PorcentajeHonorarios float64
	NumeroCuotas         int
	FechaPrimeraCuota    time.Time
	Periodicidad         Periodicidad
	// ValorCuotaBase fixes the amount of every installment but the
	// last. Zero means divide the total evenly.
	ValorCuotaBase int64
	AjustarUltima  bool
}

// ValidationError reports a rejected schedule parameter
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schedule: %s: %s", e.Field, e.Reason)
}

// roundPesos rounds half away from zero to a whole currency unit.
// Every monetary rounding in this package goes through here.
func roundPesos(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// Honorarios returns the fee charged over a principal at the given
// percentage
func Honorarios(capital int64, porcentaje float64) int64 {
	return roundPesos(decimal.NewFromInt(capital).
		Mul(decimal.NewFromFloat(porcentaje)).
		Div(decimal.NewFromInt(100)))
}

// Generate creates the installment schedule for an agreement. Running
// balances decrement row by row and the last installment absorbs
// whatever rounding residue remains, so its ending balances are
// exactly zero.
func Generate(p Params) ([]Cuota, error) {
	if p.CapitalInicial <= 0 {
		return nil, &ValidationError{"capitalInicial", "debe ser mayor que cero"}
	}
	if p.NumeroCuotas <= 0 {
		return nil, &ValidationError{"numeroCuotas", "debe ser mayor que cero"}
	}
	if p.PorcentajeHonorarios < 0 {
		return nil, &ValidationError{"porcentajeHonorarios", "no puede ser negativo"}
	}
	if p.FechaPrimeraCuota.IsZero() {
		return nil, &ValidationError{"fechaPrimeraCuota", "es obligatoria"}
	}
	switch p.Periodicidad {
	case Semanal, Quincenal, Mensual:
	default:
		return nil, &ValidationError{"periodicidad", "debe ser semanal, quincenal o mensual"}
	}
	if p.ValorCuotaBase < 0 {
		return nil, &ValidationError{"valorCuotaBase", "no puede ser negativo"}
	}

	honorariosTotal := Honorarios(p.CapitalInicial, p.PorcentajeHonorarios)
	total := p.CapitalInicial + honorariosTotal

	base := p.ValorCuotaBase
	if base == 0 {
		base = roundPesos(decimal.NewFromInt(total).
			Div(decimal.NewFromInt(int64(p.NumeroCuotas))))
	} else if p.NumeroCuotas > 1 && base*int64(p.NumeroCuotas-1) >= total {
		// the fixed installments alone would cover the total, leaving
		// the last one at zero or negative
		return nil, &ValidationError{"valorCuotaBase", "es demasiado grande para el total acordado"}
	}

	n := p.NumeroCuotas
	cuotas := make([]Cuota, n)
	saldoCapital := p.CapitalInicial
	saldoHonorarios := honorariosTotal
	for i := 1; i <= n; i++ {
		var valor, capital, honorarios int64
		if i == n {
			// residual rounding lands here, never earlier
			capital = saldoCapital
			honorarios = saldoHonorarios
			valor = capital + honorarios
			if !p.AjustarUltima && valor != base {
				return nil, &ValidationError{"ajustarUltima", "el saldo restante no coincide con la cuota base"}
			}
		} else {
			valor = base
			honorarios = roundPesos(decimal.NewFromInt(valor).
				Mul(decimal.NewFromInt(honorariosTotal)).
				Div(decimal.NewFromInt(total)))
			capital = valor - honorarios
		}

		c := Cuota{
			Numero:               i,
			FechaPago:            dueDate(p.FechaPrimeraCuota, p.Periodicidad, i-1).Format("2006-01-02"),
			ValorCuota:           valor,
			CapitalCuota:         capital,
			HonorariosCuota:      honorarios,
			CapitalSaldoAntes:    saldoCapital,
			HonorariosSaldoAntes: saldoHonorarios,
		}
		saldoCapital -= capital
		saldoHonorarios -= honorarios
		c.CapitalSaldoDespues = saldoCapital
		c.HonorariosSaldoDespues = saldoHonorarios
		cuotas[i-1] = c
	}

	return cuotas, nil
}

// Recompute rebuilds every running balance from the agreement's
// opening balances, applying each row's possibly edited capital and
// fee components in order. ValorCuota is restored to the sum of its
// components. Calling it twice over its own output yields the same
// rows.
func Recompute(capitalInicial, honorariosInicial int64, cuotas []Cuota) []Cuota {
	out := make([]Cuota, len(cuotas))
	saldoCapital := capitalInicial
	saldoHonorarios := honorariosInicial
	for i, c := range cuotas {
		c.Numero = i + 1
		c.ValorCuota = c.CapitalCuota + c.HonorariosCuota
		c.CapitalSaldoAntes = saldoCapital
		c.HonorariosSaldoAntes = saldoHonorarios
		saldoCapital -= c.CapitalCuota
		saldoHonorarios -= c.HonorariosCuota
		c.CapitalSaldoDespues = saldoCapital
		c.HonorariosSaldoDespues = saldoHonorarios
		out[i] = c
	}
	return out
}

func dueDate(first time.Time, p Periodicidad, step int) time.Time {
	switch p {
	case Semanal:
		return first.AddDate(0, 0, 7*step)
	case Quincenal:
		return first.AddDate(0, 0, 14*step)
	default:
		return addMonths(first, step)
	}
}

// addMonths clamps to the last valid day of the target month, so
// Jan 31 plus one month lands on Feb 28/29 instead of overflowing.
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}
