package mysql

import (
	"database/sql"
	"net/url"

	"github.com/ssrdive/mysequel"

	"github.com/saldoapps/cobranza/pkg/helpers"
	"github.com/saldoapps/cobranza/pkg/models"
	"github.com/saldoapps/cobranza/pkg/sql/queries"
)

// DemandaModel struct holds database instance
type DemandaModel struct {
	DB *sql.DB
}

// Insert files a lawsuit record for a debtor
func (m *DemandaModel) Insert(rParams, oParams []string, form url.Values) (int64, error) {
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

	id, err := helpers.InsertForm(tx, "demanda", rParams, oParams, form)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update overwrites the given columns of a lawsuit, typically its
// etapa as the process advances
func (m *DemandaModel) Update(id string, cols []string, form url.Values) error {
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

	if _, err = helpers.UpdateForm(tx, "demanda", id, cols, form); err != nil {
		return err
	}

	return nil
}

// ByDeudor returns a debtor's lawsuits, newest first
func (m *DemandaModel) ByDeudor(did int) ([]models.Demanda, error) {
	var res []models.Demanda
	err := mysequel.QueryToStructs(&res, m.DB, queries.DEMANDAS_BY_DEUDOR, did)
	if err != nil {
		return nil, err
	}

	return res, nil
}
