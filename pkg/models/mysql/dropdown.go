package mysql

import (
	"database/sql"
	"fmt"

	"github.com/saldoapps/cobranza/pkg/models"
)

// DropdownModel struct holds database instance
type DropdownModel struct {
	DB *sql.DB
}

// dropdownTables whitelists the tables a dropdown can be served from
var dropdownTables = map[string]string{
	"cliente": "SELECT C.id, C.nombre FROM cliente C ORDER BY C.nombre",
	"user":    "SELECT U.id, U.name FROM user U ORDER BY U.name",
}

func (m *DropdownModel) Get(name string) ([]*models.Dropdown, error) {
	stmt, ok := dropdownTables[name]
	if !ok {
		return nil, fmt.Errorf("mysql: dropdown desconocido %q", name)
	}

	rows, err := m.DB.Query(stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.Dropdown{}
	for rows.Next() {
		i := &models.Dropdown{}
		if err = rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
