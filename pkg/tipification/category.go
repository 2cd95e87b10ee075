// Package tipification resolves the collection status a debtor had at
// a reporting cutoff and aggregates per-category figures over a
// debtor population.
package tipification

import "fmt"

// Categoria is the collection status of a debtor. The set is closed:
// anything outside it is rejected at the edge, never stored.
type Categoria string

const (
	Gestionando            Categoria = "GESTIONANDO"
	Acuerdo                Categoria = "ACUERDO"
	Demanda                Categoria = "DEMANDA"
	DemandaAcuerdo         Categoria = "DEMANDA_ACUERDO"
	Terminado              Categoria = "TERMINADO"
	DemandaTerminado       Categoria = "DEMANDA_TERMINADO"
	Devuelto               Categoria = "DEVUELTO"
	PrejuridicoInsolvencia Categoria = "PREJURIDICO_INSOLVENCIA"
	DemandaInsolvencia     Categoria = "DEMANDA_INSOLVENCIA"
	Inactivo               Categoria = "INACTIVO"
)

// Categorias lists every category in report presentation order
var Categorias = []Categoria{
	Gestionando,
	Acuerdo,
	Demanda,
	DemandaAcuerdo,
	Terminado,
	DemandaTerminado,
	Devuelto,
	PrejuridicoInsolvencia,
	DemandaInsolvencia,
	Inactivo,
}

var labels = map[Categoria]string{
	Gestionando:            "Gestionando",
	Acuerdo:                "Acuerdo de pago",
	Demanda:                "Demanda",
	DemandaAcuerdo:         "Demanda con acuerdo",
	Terminado:              "Terminado",
	DemandaTerminado:       "Demanda terminada",
	Devuelto:               "Devuelto",
	PrejuridicoInsolvencia: "Prejurídico insolvencia",
	DemandaInsolvencia:     "Demanda insolvencia",
	Inactivo:               "Inactivo",
}

// Valid reports whether c belongs to the closed category set
func (c Categoria) Valid() bool {
	_, ok := labels[c]
	return ok
}

// Terminal reports whether c closes a debtor's collection cycle.
// Terminal debtors are only reported in the year the transition into
// the terminal category happened.
func (c Categoria) Terminal() bool {
	return c == Terminado || c == DemandaTerminado
}

// Label returns the display name of the category
func (c Categoria) Label() string {
	return labels[c]
}

// Parse returns the category named by s
func Parse(s string) (Categoria, error) {
	c := Categoria(s)
	if !c.Valid() {
		return "", fmt.Errorf("tipification: categoría desconocida %q", s)
	}
	return c, nil
}
