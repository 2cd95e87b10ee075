// Package helpers bridges submitted form values to SQL statements for
// the store models.
package helpers

import (
	"database/sql"
	"net/url"

	"github.com/ssrdive/mysequel"
)

// InsertForm inserts the required and optional form columns into
// table within tx. Optional columns missing from the form are stored
// as NULL.
func InsertForm(tx *sql.Tx, table string, rcols, ocols []string, form url.Values) (int64, error) {
	cols := append(append([]string{}, rcols...), ocols...)
	vals := make([]interface{}, len(cols))
	for i, col := range cols {
		vals[i] = mysequel.NewNullString(form.Get(col))
	}
	return mysequel.Insert(mysequel.Table{
		TableName: table,
		Columns:   cols,
		Vals:      vals,
		Tx:        tx,
	})
}

// UpdateForm updates the given columns of the row identified by id
func UpdateForm(tx *sql.Tx, table, id string, cols []string, form url.Values) (int64, error) {
	vals := make([]interface{}, len(cols))
	for i, col := range cols {
		vals[i] = mysequel.NewNullString(form.Get(col))
	}
	return mysequel.Update(mysequel.UpdateTable{
		Table: mysequel.Table{
			TableName: table,
			Columns:   cols,
			Vals:      vals,
			Tx:        tx,
		},
		WColumns: []string{"id"},
		WVals:    []string{id},
	})
}
