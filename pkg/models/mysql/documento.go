package mysql

import (
	"database/sql"
	"net/url"

	"github.com/ssrdive/mysequel"

	"github.com/saldoapps/cobranza/pkg/helpers"
	"github.com/saldoapps/cobranza/pkg/models"
	"github.com/saldoapps/cobranza/pkg/sql/queries"
)

// DocumentoModel struct holds database instance
type DocumentoModel struct {
	DB *sql.DB
}

// Insert records an uploaded debtor document and its S3 location
func (m *DocumentoModel) Insert(rParams, oParams []string, form url.Values) (int64, error) {
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

	id, err := helpers.InsertForm(tx, "deudor_documento", rParams, oParams, form)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// ByDeudor returns a debtor's documents, newest first
func (m *DocumentoModel) ByDeudor(did int) ([]models.DocumentoDeudor, error) {
	var res []models.DocumentoDeudor
	err := mysequel.QueryToStructs(&res, m.DB, queries.DOCUMENTOS_BY_DEUDOR, did)
	if err != nil {
		return nil, err
	}

	return res, nil
}
