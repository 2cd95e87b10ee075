package mysql

import (
	"database/sql"
	"log"
	"time"

	"github.com/ssrdive/mysequel"

	"github.com/saldoapps/cobranza/pkg/models"
	"github.com/saldoapps/cobranza/pkg/sql/queries"
	"github.com/saldoapps/cobranza/pkg/tipification"
)

// ReportingModel struct holds database instance. IntegrityLog
// receives warnings about stored data that breaks reporting
// invariants.
type ReportingModel struct {
	DB           *sql.DB
	IntegrityLog *log.Logger
}

// TipificationReport resolves every debtor's category at the cutoff
// of year/month and returns one row per category present, in
// presentation order.
func (m *ReportingModel) TipificationReport(year, month int) ([]models.ReporteTipificacionRow, error) {
	registros, err := m.loadRegistros()
	if err != nil {
		return nil, err
	}

	agg := &tipification.Aggregator{IntegrityLog: m.IntegrityLog}
	res, err := agg.Aggregate(registros, year, month)
	if err != nil {
		return nil, err
	}

	rows := []models.ReporteTipificacionRow{}
	for _, c := range tipification.Categorias {
		s, ok := res[c]
		if !ok {
			continue
		}
		rows = append(rows, models.ReporteTipificacionRow{
			Tipificacion: string(c),
			Etiqueta:     c.Label(),
			Cantidad:     s.Cantidad,
			Recaudado:    s.Recaudado,
			SaldoDeuda:   s.SaldoDeuda,
		})
	}

	return rows, nil
}

// Recuperacion returns per-month collection totals between two
// YYYY-MM keys inclusive
func (m *ReportingModel) Recuperacion(start, end string) ([]models.RecuperacionRow, error) {
	var res []models.RecuperacionRow
	err := mysequel.QueryToStructs(&res, m.DB, queries.RECUPERACION_POR_MES, start, end)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// loadRegistros fetches the whole debtor population with tipification
// histories and monthly statements, the in-memory input the
// aggregator maps over
func (m *ReportingModel) loadRegistros() ([]tipification.Registro, error) {
	rows, err := m.DB.Query(queries.AGG_DEUDORES)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := map[int]*tipification.Registro{}
	order := []int{}
	for rows.Next() {
		var id int
		var actual string
		if err = rows.Scan(&id, &actual); err != nil {
			return nil, err
		}
		c, perr := tipification.Parse(actual)
		if perr != nil {
			m.warnf("deudor %d: tipificación almacenada inválida %q", id, actual)
			c = tipification.Categoria(actual)
		}
		byID[id] = &tipification.Registro{DeudorID: id, Actual: c}
		order = append(order, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	hrows, err := m.DB.Query(queries.AGG_HISTORIAL)
	if err != nil {
		return nil, err
	}
	defer hrows.Close()

	for hrows.Next() {
		var did int
		var fecha time.Time
		var cat string
		if err = hrows.Scan(&did, &fecha, &cat); err != nil {
			return nil, err
		}
		r, ok := byID[did]
		if !ok {
			m.warnf("historial de tipificación huérfano para deudor %d", did)
			continue
		}
		r.Historial = append(r.Historial, tipification.Entrada{
			Fecha:        fecha,
			Tipificacion: tipification.Categoria(cat),
		})
	}
	if err = hrows.Err(); err != nil {
		return nil, err
	}

	erows, err := m.DB.Query(queries.AGG_ESTADOS)
	if err != nil {
		return nil, err
	}
	defer erows.Close()

	for erows.Next() {
		var did int
		var e tipification.EstadoMensual
		if err = erows.Scan(&did, &e.Mes, &e.Deuda, &e.Recaudo); err != nil {
			return nil, err
		}
		r, ok := byID[did]
		if !ok {
			m.warnf("estado mensual huérfano para deudor %d", did)
			continue
		}
		r.Estados = append(r.Estados, e)
	}
	if err = erows.Err(); err != nil {
		return nil, err
	}

	registros := make([]tipification.Registro, 0, len(order))
	for _, id := range order {
		registros = append(registros, *byID[id])
	}
	return registros, nil
}

func (m *ReportingModel) warnf(format string, args ...interface{}) {
	if m.IntegrityLog != nil {
		m.IntegrityLog.Printf(format, args...)
	}
}
