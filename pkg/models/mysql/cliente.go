package mysql

import (
	"database/sql"
	"errors"
	"net/url"

	"github.com/ssrdive/mysequel"

	"github.com/saldoapps/cobranza/pkg/helpers"
	"github.com/saldoapps/cobranza/pkg/models"
	"github.com/saldoapps/cobranza/pkg/sql/queries"
)

// ClienteModel struct holds database instance
type ClienteModel struct {
	DB *sql.DB
}

// Insert creates a new client
func (m *ClienteModel) Insert(rParams, oParams []string, form url.Values) (int64, error) {
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

	id, err := helpers.InsertForm(tx, "cliente", rParams, oParams, form)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update overwrites the given columns of a client
func (m *ClienteModel) Update(id string, cols []string, form url.Values) error {
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

	if _, err = helpers.UpdateForm(tx, "cliente", id, cols, form); err != nil {
		return err
	}

	return nil
}

// All returns every client
func (m *ClienteModel) All() ([]models.Cliente, error) {
	var res []models.Cliente
	err := mysequel.QueryToStructs(&res, m.DB, queries.CLIENTES)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Details returns one client
func (m *ClienteModel) Details(cid int) (models.Cliente, error) {
	var c models.Cliente
	err := m.DB.QueryRow(queries.CLIENTE_DETAILS, cid).
		Scan(&c.ID, &c.Nombre, &c.Nit, &c.Contacto, &c.Telefono, &c.Correo, &c.Direccion, &c.Creado)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Cliente{}, models.ErrNoRecord
		}
		return models.Cliente{}, err
	}

	return c, nil
}
