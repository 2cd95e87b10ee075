package mysql

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/saldoapps/cobranza/pkg/models"
	"github.com/saldoapps/cobranza/pkg/sql/queries"
)

// UserModel struct holds database instance
type UserModel struct {
	DB *sql.DB
}

// Get returns the user when the username exists and the password
// matches its bcrypt hash
func (m *UserModel) Get(username, password string) (*models.User, error) {
	u := &models.User{}
	err := m.DB.QueryRow(queries.USER_BY_USERNAME, username).
		Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNoRecord
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, err
	}

	return u, nil
}
