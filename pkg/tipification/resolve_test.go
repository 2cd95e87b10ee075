package tipification

import (
	"testing"
	"time"
)

func entry(y int, m time.Month, d int, c Categoria) Entrada {
	return Entrada{Fecha: time.Date(y, m, d, 0, 0, 0, 0, time.Local), Tipificacion: c}
}

func TestResolveAtPicksLatestNotAfterCutoff(t *testing.T) {
	historial := []Entrada{
		entry(2023, time.January, 10, Gestionando),
		entry(2023, time.June, 5, Acuerdo),
		entry(2024, time.February, 20, Demanda),
	}

	tests := []struct {
		corte time.Time
		want  Categoria
	}{
		{Corte(2023, 3), Gestionando},
		{Corte(2023, 6), Acuerdo},
		{Corte(2023, 12), Acuerdo},
		{Corte(2024, 2), Demanda},
		{Corte(2025, 1), Demanda},
	}

	for _, tt := range tests {
		r := ResolveAt(historial, tt.corte, Inactivo)
		if r.Tipificacion != tt.want {
			t.Errorf("ResolveAt(%s) = %s, want %s", tt.corte.Format("2006-01-02"), r.Tipificacion, tt.want)
		}
		if r.VigenteDesde == nil {
			t.Errorf("ResolveAt(%s): VigenteDesde nil, want set", tt.corte.Format("2006-01-02"))
		}
	}
}

func TestResolveAtCutoffBoundaryInclusive(t *testing.T) {
	corte := Corte(2024, 3)
	historial := []Entrada{
		entry(2024, time.January, 1, Gestionando),
		{Fecha: corte, Tipificacion: Acuerdo},
		{Fecha: corte.Add(time.Millisecond), Tipificacion: Demanda},
	}

	r := ResolveAt(historial, corte, Inactivo)
	if r.Tipificacion != Acuerdo {
		t.Errorf("category at cutoff = %s, want %s", r.Tipificacion, Acuerdo)
	}
}

func TestResolveAtFallsBackToActual(t *testing.T) {
	historial := []Entrada{
		entry(2024, time.June, 1, Demanda),
	}

	r := ResolveAt(historial, Corte(2024, 1), Gestionando)
	if r.Tipificacion != Gestionando {
		t.Errorf("fallback category = %s, want %s", r.Tipificacion, Gestionando)
	}
	if r.VigenteDesde != nil {
		t.Errorf("fallback VigenteDesde = %v, want nil", r.VigenteDesde)
	}

	r = ResolveAt(nil, Corte(2024, 1), Gestionando)
	if r.Tipificacion != Gestionando || r.VigenteDesde != nil {
		t.Errorf("empty history resolution = %+v, want fallback", r)
	}
}

func TestResolveAtEqualFechaLaterEntryWins(t *testing.T) {
	fecha := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	historial := []Entrada{
		{Fecha: fecha, Tipificacion: Gestionando},
		{Fecha: fecha, Tipificacion: Acuerdo},
	}

	r := ResolveAt(historial, Corte(2024, 3), Inactivo)
	if r.Tipificacion != Acuerdo {
		t.Errorf("tie resolution = %s, want %s", r.Tipificacion, Acuerdo)
	}
}

func TestCorte(t *testing.T) {
	tests := []struct {
		year, month int
		next        time.Time
	}{
		{2024, 1, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local)},
		{2024, 2, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)},
		{2024, 12, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		c := Corte(tt.year, tt.month)
		if !c.Before(tt.next) {
			t.Errorf("Corte(%d, %d) = %s, not before next month", tt.year, tt.month, c)
		}
		if !c.Add(time.Millisecond).Equal(tt.next) {
			t.Errorf("Corte(%d, %d) = %s, want last instant of the month", tt.year, tt.month, c)
		}
	}
}

func TestIncludeInYear(t *testing.T) {
	d2023 := time.Date(2023, time.July, 1, 0, 0, 0, 0, time.Local)
	d2024 := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		r    Resolucion
		year int
		want bool
	}{
		{"non-terminal always reports", Resolucion{Tipificacion: Gestionando, VigenteDesde: &d2023}, 2024, true},
		{"non-terminal without date reports", Resolucion{Tipificacion: Acuerdo}, 2024, true},
		{"inactivo never reports", Resolucion{Tipificacion: Inactivo, VigenteDesde: &d2024}, 2024, false},
		{"terminal in its own year", Resolucion{Tipificacion: Terminado, VigenteDesde: &d2024}, 2024, true},
		{"terminal after its year", Resolucion{Tipificacion: Terminado, VigenteDesde: &d2023}, 2024, false},
		{"demanda terminado in its own year", Resolucion{Tipificacion: DemandaTerminado, VigenteDesde: &d2024}, 2024, true},
		{"demanda terminado after its year", Resolucion{Tipificacion: DemandaTerminado, VigenteDesde: &d2023}, 2024, false},
		{"terminal without effective date excluded", Resolucion{Tipificacion: Terminado}, 2024, false},
	}

	for _, tt := range tests {
		if got := IncludeInYear(tt.r, tt.year); got != tt.want {
			t.Errorf("%s: IncludeInYear = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	for _, c := range Categorias {
		got, err := Parse(string(c))
		if err != nil {
			t.Errorf("Parse(%s): %v", c, err)
		}
		if got != c {
			t.Errorf("Parse(%s) = %s", c, got)
		}
	}

	if _, err := Parse("EN_MORA"); err == nil {
		t.Error("Parse accepted an unknown category")
	}
	if _, err := Parse(""); err == nil {
		t.Error("Parse accepted the empty string")
	}
}

func TestLabels(t *testing.T) {
	for _, c := range Categorias {
		if c.Label() == "" {
			t.Errorf("%s has no label", c)
		}
	}
}
