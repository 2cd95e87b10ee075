package mysql

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ssrdive/mysequel"

	"github.com/saldoapps/cobranza/pkg/models"
	"github.com/saldoapps/cobranza/pkg/schedule"
	"github.com/saldoapps/cobranza/pkg/sql/queries"
)

// AcuerdoModel struct holds database instance
type AcuerdoModel struct {
	DB *sql.DB
}

var estadosAcuerdo = map[string]bool{
	"activo":     true,
	"cumplido":   true,
	"incumplido": true,
	"cancelado":  true,
}

// Insert creates a new agreement version for a debtor: the schedule
// is generated from the terms, any active previous version is
// cancelled and the installment rows are written in the same
// transaction. Historic versions stay for audit.
func (m *AcuerdoModel) Insert(did, userID int, numero, fechaAcuerdo string, p schedule.Params) (int64, error) {
	cuotas, err := schedule.Generate(p)
	if err != nil {
		return 0, err
	}

	honorariosInicial := schedule.Honorarios(p.CapitalInicial, p.PorcentajeHonorarios)
	totalAcordado := p.CapitalInicial + honorariosInicial

	tx, err := m.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		_ = tx.Commit()
	}()

	var version int
	if err = tx.QueryRow(queries.NEXT_ACUERDO_VERSION, did).Scan(&version); err != nil {
		return 0, err
	}

	if _, err = tx.Exec(queries.SUPERSEDE_ACTIVE_ACUERDOS, did); err != nil {
		return 0, err
	}

	aid, err := mysequel.Insert(mysequel.Table{
		TableName: "acuerdo_pago",
		Columns: []string{"deudor_id", "user_id", "numero", "version", "fecha_acuerdo",
			"capital_inicial", "porcentaje_honorarios", "honorarios_inicial", "total_acordado",
			"numero_cuotas", "periodicidad", "fecha_primera_cuota", "estado", "creado"},
		Vals: []interface{}{did, userID, numero, version, fechaAcuerdo,
			p.CapitalInicial, p.PorcentajeHonorarios, honorariosInicial, totalAcordado,
			p.NumeroCuotas, string(p.Periodicidad), p.FechaPrimeraCuota.Format("2006-01-02"),
			"activo", time.Now().Format("2006-01-02 15:04:05")},
		Tx: tx,
	})
	if err != nil {
		return 0, err
	}

	if err = insertCuotas(tx, aid, cuotas); err != nil {
		return 0, err
	}

	return aid, nil
}

// ReplaceCuotas overwrites an agreement's installment rows with the
// operator's edited sequence after recomputing every running balance
// from the agreement's opening balances.
func (m *AcuerdoModel) ReplaceCuotas(aid int, cuotas []schedule.Cuota) ([]schedule.Cuota, error) {
	tx, err := m.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		_ = tx.Commit()
	}()

	var capitalInicial, honorariosInicial int64
	err = tx.QueryRow(queries.ACUERDO_SALDOS_INICIALES, aid).Scan(&capitalInicial, &honorariosInicial)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = models.ErrNoRecord
		}
		return nil, err
	}

	recomputed := schedule.Recompute(capitalInicial, honorariosInicial, cuotas)

	if _, err = tx.Exec(queries.DELETE_ACUERDO_CUOTAS, aid); err != nil {
		return nil, err
	}
	if err = insertCuotas(tx, int64(aid), recomputed); err != nil {
		return nil, err
	}

	return recomputed, nil
}

func insertCuotas(tx *sql.Tx, aid int64, cuotas []schedule.Cuota) error {
	for _, c := range cuotas {
		_, err := mysequel.Insert(mysequel.Table{
			TableName: "acuerdo_cuota",
			Columns: []string{"acuerdo_id", "numero", "fecha_pago", "valor_cuota",
				"capital_cuota", "honorarios_cuota", "capital_saldo_antes", "capital_saldo_despues",
				"honorarios_saldo_antes", "honorarios_saldo_despues"},
			Vals: []interface{}{aid, c.Numero, c.FechaPago, c.ValorCuota,
				c.CapitalCuota, c.HonorariosCuota, c.CapitalSaldoAntes, c.CapitalSaldoDespues,
				c.HonorariosSaldoAntes, c.HonorariosSaldoDespues},
			Tx: tx,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// SetEstado relabels an agreement among the known estado set
func (m *AcuerdoModel) SetEstado(aid, estado string) error {
	if !estadosAcuerdo[estado] {
		return fmt.Errorf("%w: %q", models.ErrEstadoInvalido, estado)
	}

	tx, err := m.DB.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		_ = tx.Commit()
	}()

	_, err = mysequel.Update(mysequel.UpdateTable{
		Table: mysequel.Table{
			TableName: "acuerdo_pago",
			Columns:   []string{"estado"},
			Vals:      []interface{}{estado},
			Tx:        tx,
		},
		WColumns: []string{"id"},
		WVals:    []string{aid},
	})
	if err != nil {
		return err
	}

	return nil
}

// Details returns one agreement
func (m *AcuerdoModel) Details(aid int) (models.AcuerdoPago, error) {
	var a models.AcuerdoPago
	err := m.DB.QueryRow(queries.ACUERDO_DETAILS, aid).
		Scan(&a.ID, &a.DeudorID, &a.Numero, &a.Version, &a.FechaAcuerdo, &a.CapitalInicial,
			&a.PorcentajeHonorarios, &a.HonorariosInicial, &a.TotalAcordado, &a.NumeroCuotas,
			&a.Periodicidad, &a.FechaPrimeraCuota, &a.Estado, &a.Creado)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AcuerdoPago{}, models.ErrNoRecord
		}
		return models.AcuerdoPago{}, err
	}

	return a, nil
}

// ByDeudor returns every agreement version of a debtor, newest first
func (m *AcuerdoModel) ByDeudor(did int) ([]models.AcuerdoPago, error) {
	var res []models.AcuerdoPago
	err := mysequel.QueryToStructs(&res, m.DB, queries.ACUERDOS_BY_DEUDOR, did)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Cuotas returns the installment rows of an agreement in order
func (m *AcuerdoModel) Cuotas(aid int) ([]schedule.Cuota, error) {
	var res []schedule.Cuota
	err := mysequel.QueryToStructs(&res, m.DB, queries.ACUERDO_CUOTAS, aid)
	if err != nil {
		return nil, err
	}

	return res, nil
}
