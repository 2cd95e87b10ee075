package mysql

import (
	"database/sql"
	"errors"
	"net/url"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ssrdive/mysequel"

	"github.com/saldoapps/cobranza/pkg/helpers"
	"github.com/saldoapps/cobranza/pkg/models"
	"github.com/saldoapps/cobranza/pkg/sql/queries"
	"github.com/saldoapps/cobranza/pkg/tipification"
)

// DeudorModel struct holds database instance
type DeudorModel struct {
	DB *sql.DB
}

// Insert creates a new debtor together with the opening entry of its
// tipification history
func (m *DeudorModel) Insert(rParams, oParams []string, form url.Values) (int64, error) {
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

	if form.Get("tipificacion") == "" {
		form.Set("tipificacion", string(tipification.Gestionando))
	}

	id, err := helpers.InsertForm(tx, "deudor", rParams, oParams, form)
	if err != nil {
		return 0, err
	}

	_, err = mysequel.Insert(mysequel.Table{
		TableName: "deudor_tipificacion",
		Columns:   []string{"deudor_id", "user_id", "fecha", "tipificacion"},
		Vals:      []interface{}{id, form.Get("user_id"), form.Get("creado"), form.Get("tipificacion")},
		Tx:        tx,
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update overwrites the given columns of a debtor. The cached
// tipificacion column is not editable here; Tipify owns it.
func (m *DeudorModel) Update(id string, cols []string, form url.Values) error {
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

	if _, err = helpers.UpdateForm(tx, "deudor", id, cols, form); err != nil {
		return err
	}

	return nil
}

// Search returns debtors matching the given filters. Empty filters
// are skipped.
func (m *DeudorModel) Search(search, cliente, tipificacion string) ([]models.DeudorSearchItem, error) {
	q := sq.Select("D.id", "C.nombre AS cliente", "D.nombre", "D.cedula", "D.telefono", "D.tipificacion").
		From("deudor D").
		LeftJoin("cliente C ON C.id = D.cliente_id").
		OrderBy("D.nombre")

	if search != "" {
		like := "%" + search + "%"
		q = q.Where(sq.Or{sq.Like{"D.nombre": like}, sq.Like{"D.cedula": like}})
	}
	if cliente != "" {
		q = q.Where(sq.Eq{"D.cliente_id": cliente})
	}
	if tipificacion != "" {
		q = q.Where(sq.Eq{"D.tipificacion": tipificacion})
	}

	stmt, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var res []models.DeudorSearchItem
	if err := mysequel.QueryToStructs(&res, m.DB, stmt, args...); err != nil {
		return nil, err
	}

	return res, nil
}

// Details returns one debtor joined with its client and latest
// monthly statement
func (m *DeudorModel) Details(did int) (models.DeudorDetalle, error) {
	var d models.DeudorDetalle
	err := m.DB.QueryRow(queries.DEUDOR_DETAILS, did).
		Scan(&d.ID, &d.Cliente, &d.Nombre, &d.Cedula, &d.Telefono, &d.Correo, &d.Direccion,
			&d.Ciudad, &d.Tipificacion, &d.UltimoMes, &d.UltimaDeuda, &d.UltimoRecaudo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DeudorDetalle{}, models.ErrNoRecord
		}
		return models.DeudorDetalle{}, err
	}

	return d, nil
}

// Tipify appends an entry to the debtor's tipification history and
// refreshes the cached tipificacion column. History is the source of
// truth; the column only serves listing screens.
func (m *DeudorModel) Tipify(did, userID int, fecha string, cat tipification.Categoria) (int64, error) {
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

	id, err := mysequel.Insert(mysequel.Table{
		TableName: "deudor_tipificacion",
		Columns:   []string{"deudor_id", "user_id", "fecha", "tipificacion"},
		Vals:      []interface{}{did, userID, fecha, string(cat)},
		Tx:        tx,
	})
	if err != nil {
		return 0, err
	}

	var latest string
	err = tx.QueryRow(queries.LATEST_TIPIFICACION, did).Scan(&latest)
	if err != nil {
		return 0, err
	}

	_, err = mysequel.Update(mysequel.UpdateTable{
		Table: mysequel.Table{
			TableName: "deudor",
			Columns:   []string{"tipificacion"},
			Vals:      []interface{}{latest},
			Tx:        tx,
		},
		WColumns: []string{"id"},
		WVals:    []string{strconv.Itoa(did)},
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// TipificacionHistory returns the debtor's category changes in
// chronological order
func (m *DeudorModel) TipificacionHistory(did int) ([]models.TipificacionItem, error) {
	var res []models.TipificacionItem
	err := mysequel.QueryToStructs(&res, m.DB, queries.TIPIFICACION_HISTORY, did)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// UpsertEstadoMensual creates or replaces the debtor's statement for
// a month. The (deudor, mes) key is unique, so a month is never
// duplicated.
func (m *DeudorModel) UpsertEstadoMensual(did int, mes string, deuda, recaudo int64) error {
	if _, err := time.Parse("2006-01", mes); err != nil {
		return errors.New("mysql: mes debe tener formato YYYY-MM")
	}

	_, err := m.DB.Exec(queries.UPSERT_ESTADO_MENSUAL, did, mes, deuda, recaudo)
	return err
}

// EstadosMensuales returns the debtor's monthly statements ordered by
// month
func (m *DeudorModel) EstadosMensuales(did int) ([]models.EstadoMensualItem, error) {
	var res []models.EstadoMensualItem
	err := mysequel.QueryToStructs(&res, m.DB, queries.ESTADOS_MENSUALES, did)
	if err != nil {
		return nil, err
	}

	return res, nil
}
