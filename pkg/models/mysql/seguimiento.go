package mysql

import (
	"database/sql"
	"net/url"

	"github.com/ssrdive/mysequel"

	"github.com/saldoapps/cobranza/pkg/helpers"
	"github.com/saldoapps/cobranza/pkg/models"
	"github.com/saldoapps/cobranza/pkg/sql/queries"
)

// SeguimientoModel struct holds database instance
type SeguimientoModel struct {
	DB *sql.DB
}

// Insert records a follow-up touch on a debtor
func (m *SeguimientoModel) Insert(rParams, oParams []string, form url.Values) (int64, error) {
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

	id, err := helpers.InsertForm(tx, "seguimiento", rParams, oParams, form)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// ByDeudor returns a debtor's follow-ups, newest first
func (m *SeguimientoModel) ByDeudor(did int) ([]models.Seguimiento, error) {
	var res []models.Seguimiento
	err := mysequel.QueryToStructs(&res, m.DB, queries.SEGUIMIENTOS_BY_DEUDOR, did)
	if err != nil {
		return nil, err
	}

	return res, nil
}
