package schedule

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateConcreteScenario(t *testing.T) {
	cuotas, err := Generate(Params{
		CapitalInicial:       1000000,
		PorcentajeHonorarios: 15,
		NumeroCuotas:         3,
		FechaPrimeraCuota:    date(2024, time.January, 15),
		Periodicidad:         Mensual,
		AjustarUltima:        true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(cuotas) != 3 {
		t.Fatalf("want 3 cuotas, got %d", len(cuotas))
	}

	wantValor := []int64{383333, 383333, 383334}
	wantCapital := []int64{333333, 333333, 333334}
	wantHonorarios := []int64{50000, 50000, 50000}
	for i, c := range cuotas {
		if c.ValorCuota != wantValor[i] {
			t.Errorf("cuota %d: valor = %d, want %d", c.Numero, c.ValorCuota, wantValor[i])
		}
		if c.CapitalCuota != wantCapital[i] {
			t.Errorf("cuota %d: capital = %d, want %d", c.Numero, c.CapitalCuota, wantCapital[i])
		}
		if c.HonorariosCuota != wantHonorarios[i] {
			t.Errorf("cuota %d: honorarios = %d, want %d", c.Numero, c.HonorariosCuota, wantHonorarios[i])
		}
	}

	last := cuotas[2]
	if last.CapitalSaldoDespues != 0 || last.HonorariosSaldoDespues != 0 {
		t.Errorf("last cuota balances = %d/%d, want 0/0",
			last.CapitalSaldoDespues, last.HonorariosSaldoDespues)
	}
}

func TestGenerateSumsMatchTotals(t *testing.T) {
	params := []Params{
		{CapitalInicial: 1000000, PorcentajeHonorarios: 15, NumeroCuotas: 3, FechaPrimeraCuota: date(2024, time.March, 1), Periodicidad: Mensual, AjustarUltima: true},
		{CapitalInicial: 777777, PorcentajeHonorarios: 10, NumeroCuotas: 7, FechaPrimeraCuota: date(2024, time.March, 1), Periodicidad: Semanal, AjustarUltima: true},
		{CapitalInicial: 500000, PorcentajeHonorarios: 0, NumeroCuotas: 4, FechaPrimeraCuota: date(2024, time.March, 1), Periodicidad: Quincenal, AjustarUltima: true},
		{CapitalInicial: 123457, PorcentajeHonorarios: 12.5, NumeroCuotas: 5, FechaPrimeraCuota: date(2024, time.March, 1), Periodicidad: Mensual, AjustarUltima: true},
	}

	for _, p := range params {
		cuotas, err := Generate(p)
		if err != nil {
			t.Fatalf("Generate(%+v): %v", p, err)
		}

		var sumCapital, sumHonorarios int64
		for _, c := range cuotas {
			if c.ValorCuota != c.CapitalCuota+c.HonorariosCuota {
				t.Errorf("cuota %d: valor %d != capital %d + honorarios %d",
					c.Numero, c.ValorCuota, c.CapitalCuota, c.HonorariosCuota)
			}
			sumCapital += c.CapitalCuota
			sumHonorarios += c.HonorariosCuota
		}

		if sumCapital != p.CapitalInicial {
			t.Errorf("capital sum = %d, want %d", sumCapital, p.CapitalInicial)
		}
		if want := Honorarios(p.CapitalInicial, p.PorcentajeHonorarios); sumHonorarios != want {
			t.Errorf("honorarios sum = %d, want %d", sumHonorarios, want)
		}
	}
}

func TestGenerateBalanceChain(t *testing.T) {
	cuotas, err := Generate(Params{
		CapitalInicial:       999999,
		PorcentajeHonorarios: 17,
		NumeroCuotas:         6,
		FechaPrimeraCuota:    date(2024, time.June, 10),
		Periodicidad:         Mensual,
		AjustarUltima:        true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	honorariosTotal := Honorarios(999999, 17)
	if cuotas[0].CapitalSaldoAntes != 999999 || cuotas[0].HonorariosSaldoAntes != honorariosTotal {
		t.Errorf("opening balances = %d/%d, want %d/%d",
			cuotas[0].CapitalSaldoAntes, cuotas[0].HonorariosSaldoAntes, int64(999999), honorariosTotal)
	}

	for i, c := range cuotas {
		if c.CapitalSaldoDespues != c.CapitalSaldoAntes-c.CapitalCuota {
			t.Errorf("cuota %d: capital despues %d != antes %d - cuota %d",
				c.Numero, c.CapitalSaldoDespues, c.CapitalSaldoAntes, c.CapitalCuota)
		}
		if c.HonorariosSaldoDespues != c.HonorariosSaldoAntes-c.HonorariosCuota {
			t.Errorf("cuota %d: honorarios despues %d != antes %d - cuota %d",
				c.Numero, c.HonorariosSaldoDespues, c.HonorariosSaldoAntes, c.HonorariosCuota)
		}
		if i > 0 {
			if c.CapitalSaldoAntes != cuotas[i-1].CapitalSaldoDespues {
				t.Errorf("cuota %d: capital antes %d != previous despues %d",
					c.Numero, c.CapitalSaldoAntes, cuotas[i-1].CapitalSaldoDespues)
			}
			if c.HonorariosSaldoAntes != cuotas[i-1].HonorariosSaldoDespues {
				t.Errorf("cuota %d: honorarios antes %d != previous despues %d",
					c.Numero, c.HonorariosSaldoAntes, cuotas[i-1].HonorariosSaldoDespues)
			}
		}
	}

	last := cuotas[len(cuotas)-1]
	if last.CapitalSaldoDespues != 0 || last.HonorariosSaldoDespues != 0 {
		t.Errorf("final balances = %d/%d, want 0/0", last.CapitalSaldoDespues, last.HonorariosSaldoDespues)
	}
}

func TestGenerateDueDates(t *testing.T) {
	tests := []struct {
		periodicidad Periodicidad
		first        time.Time
		want         []string
	}{
		{Mensual, date(2024, time.January, 31), []string{"2024-01-31", "2024-02-29", "2024-03-31"}},
		{Mensual, date(2023, time.January, 31), []string{"2023-01-31", "2023-02-28", "2023-03-31"}},
		{Mensual, date(2024, time.November, 30), []string{"2024-11-30", "2024-12-30", "2025-01-30"}},
		{Semanal, date(2024, time.February, 26), []string{"2024-02-26", "2024-03-04", "2024-03-11"}},
		{Quincenal, date(2024, time.February, 20), []string{"2024-02-20", "2024-03-05", "2024-03-19"}},
	}

	for _, tt := range tests {
		cuotas, err := Generate(Params{
			CapitalInicial:       300000,
			PorcentajeHonorarios: 10,
			NumeroCuotas:         3,
			FechaPrimeraCuota:    tt.first,
			Periodicidad:         tt.periodicidad,
			AjustarUltima:        true,
		})
		if err != nil {
			t.Fatalf("Generate(%s desde %s): %v", tt.periodicidad, tt.first.Format("2006-01-02"), err)
		}

		for i, c := range cuotas {
			if c.FechaPago != tt.want[i] {
				t.Errorf("%s desde %s: cuota %d fecha = %s, want %s",
					tt.periodicidad, tt.first.Format("2006-01-02"), c.Numero, c.FechaPago, tt.want[i])
			}
		}
	}
}

func TestGenerateFixedBaseInstallment(t *testing.T) {
	cuotas, err := Generate(Params{
		CapitalInicial:       1000000,
		PorcentajeHonorarios: 15,
		NumeroCuotas:         4,
		FechaPrimeraCuota:    date(2024, time.May, 5),
		Periodicidad:         Mensual,
		ValorCuotaBase:       300000,
		AjustarUltima:        true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, c := range cuotas[:3] {
		if c.ValorCuota != 300000 {
			t.Errorf("cuota %d: valor = %d, want 300000", c.Numero, c.ValorCuota)
		}
	}
	if want := int64(1150000 - 3*300000); cuotas[3].ValorCuota != want {
		t.Errorf("last cuota valor = %d, want %d", cuotas[3].ValorCuota, want)
	}
	if cuotas[3].CapitalSaldoDespues != 0 || cuotas[3].HonorariosSaldoDespues != 0 {
		t.Errorf("final balances not zero: %d/%d", cuotas[3].CapitalSaldoDespues, cuotas[3].HonorariosSaldoDespues)
	}
}

func TestGenerateRejectsOversizedBase(t *testing.T) {
	// 1150000 total: 600000 twice already exceeds it before the last row
	for _, base := range []int64{600000, 575000} {
		_, err := Generate(Params{
			CapitalInicial:       1000000,
			PorcentajeHonorarios: 15,
			NumeroCuotas:         3,
			FechaPrimeraCuota:    date(2024, time.May, 5),
			Periodicidad:         Mensual,
			ValorCuotaBase:       base,
			AjustarUltima:        true,
		})

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("base %d: want ValidationError, got %v", base, err)
		}
		if ve.Field != "valorCuotaBase" {
			t.Errorf("base %d: field = %s, want valorCuotaBase", base, ve.Field)
		}
	}
}

func TestGenerateAjustarUltimaRejectsMismatch(t *testing.T) {
	_, err := Generate(Params{
		CapitalInicial:       1000000,
		PorcentajeHonorarios: 15,
		NumeroCuotas:         3,
		FechaPrimeraCuota:    date(2024, time.May, 5),
		Periodicidad:         Mensual,
		AjustarUltima:        false,
	})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if ve.Field != "ajustarUltima" {
		t.Errorf("field = %s, want ajustarUltima", ve.Field)
	}
}

func TestGenerateValidation(t *testing.T) {
	valid := Params{
		CapitalInicial:       100000,
		PorcentajeHonorarios: 10,
		NumeroCuotas:         2,
		FechaPrimeraCuota:    date(2024, time.May, 5),
		Periodicidad:         Mensual,
		AjustarUltima:        true,
	}

	tests := []struct {
		field  string
		mutate func(p *Params)
	}{
		{"capitalInicial", func(p *Params) { p.CapitalInicial = 0 }},
		{"capitalInicial", func(p *Params) { p.CapitalInicial = -5 }},
		{"numeroCuotas", func(p *Params) { p.NumeroCuotas = 0 }},
		{"porcentajeHonorarios", func(p *Params) { p.PorcentajeHonorarios = -1 }},
		{"fechaPrimeraCuota", func(p *Params) { p.FechaPrimeraCuota = time.Time{} }},
		{"periodicidad", func(p *Params) { p.Periodicidad = "diaria" }},
		{"valorCuotaBase", func(p *Params) { p.ValorCuotaBase = -100 }},
	}

	for _, tt := range tests {
		p := valid
		tt.mutate(&p)

		_, err := Generate(p)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: want ValidationError, got %v", tt.field, err)
		}
		if ve.Field != tt.field {
			t.Errorf("field = %s, want %s", ve.Field, tt.field)
		}
	}
}

func TestHonorariosRounding(t *testing.T) {
	tests := []struct {
		capital    int64
		porcentaje float64
		want       int64
	}{
		{1000000, 15, 150000},
		{100, 0.5, 1},   // 0.5 rounds away from zero
		{333, 10, 33},   // 33.3 rounds down
		{335, 10, 34},   // 33.5 rounds up
		{100000, 0, 0},
	}

	for _, tt := range tests {
		if got := Honorarios(tt.capital, tt.porcentaje); got != tt.want {
			t.Errorf("Honorarios(%d, %v) = %d, want %d", tt.capital, tt.porcentaje, got, tt.want)
		}
	}
}

func TestRecomputeAfterEdit(t *testing.T) {
	cuotas, err := Generate(Params{
		CapitalInicial:       1000000,
		PorcentajeHonorarios: 15,
		NumeroCuotas:         3,
		FechaPrimeraCuota:    date(2024, time.January, 15),
		Periodicidad:         Mensual,
		AjustarUltima:        true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// operator shifts capital from the first row to the second
	cuotas[0].CapitalCuota -= 100000
	cuotas[1].CapitalCuota += 100000

	out := Recompute(1000000, 150000, cuotas)

	var sumCapital, sumHonorarios int64
	for i, c := range out {
		if c.Numero != i+1 {
			t.Errorf("row %d: numero = %d", i, c.Numero)
		}
		if c.ValorCuota != c.CapitalCuota+c.HonorariosCuota {
			t.Errorf("cuota %d: valor %d != components sum", c.Numero, c.ValorCuota)
		}
		if i > 0 && c.CapitalSaldoAntes != out[i-1].CapitalSaldoDespues {
			t.Errorf("cuota %d: capital chain broken", c.Numero)
		}
		sumCapital += c.CapitalCuota
		sumHonorarios += c.HonorariosCuota
	}

	if sumCapital != 1000000 || sumHonorarios != 150000 {
		t.Errorf("sums = %d/%d, want 1000000/150000", sumCapital, sumHonorarios)
	}

	last := out[len(out)-1]
	if last.CapitalSaldoDespues != 0 || last.HonorariosSaldoDespues != 0 {
		t.Errorf("final balances = %d/%d, want 0/0", last.CapitalSaldoDespues, last.HonorariosSaldoDespues)
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	cuotas, err := Generate(Params{
		CapitalInicial:       750000,
		PorcentajeHonorarios: 12,
		NumeroCuotas:         5,
		FechaPrimeraCuota:    date(2024, time.April, 1),
		Periodicidad:         Quincenal,
		AjustarUltima:        true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	honorarios := Honorarios(750000, 12)
	once := Recompute(750000, honorarios, cuotas)
	twice := Recompute(750000, honorarios, once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Recompute not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}
