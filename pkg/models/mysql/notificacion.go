package mysql

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ssrdive/mysequel"

	"github.com/saldoapps/cobranza/pkg/models"
	"github.com/saldoapps/cobranza/pkg/sql/queries"
)

// NotificacionModel struct holds database instance
type NotificacionModel struct {
	DB *sql.DB
}

// Send texts a debtor a payment reminder for the given amount and
// logs the notification. The SMS gateway is fire-and-forget: a
// delivery failure does not undo the log row.
func (m *NotificacionModel) Send(userID, did int, tipo string, monto int64, apiKey, runtimeEnv string) (int64, error) {
	var nombre string
	var telefono sql.NullString
	err := m.DB.QueryRow(queries.DEUDOR_CONTACTO, did).Scan(&nombre, &telefono)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, models.ErrNoRecord
		}
		return 0, err
	}
	if !telefono.Valid || telefono.String == "" {
		return 0, fmt.Errorf("mysql: deudor %d no tiene teléfono registrado", did)
	}

	mensaje := fmt.Sprintf("Estimado(a) %s, le recordamos su pago pendiente por $%s. Gracias.",
		nombre, humanize.Comma(monto))

	if runtimeEnv != "dev" {
		requestURL := fmt.Sprintf("https://api.hablame.co/sms/send?destination=%s&q=%s&message=%s",
			telefono.String, apiKey, url.QueryEscape(mensaje))
		if resp, err := http.Get(requestURL); err == nil {
			resp.Body.Close()
		}
	}

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
		TableName: "notificacion",
		Columns:   []string{"deudor_id", "user_id", "tipo", "destino", "mensaje", "fecha"},
		Vals: []interface{}{did, userID, tipo, telefono.String, mensaje,
			time.Now().Format("2006-01-02 15:04:05")},
		Tx: tx,
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// ByDeudor returns a debtor's notification log, newest first
func (m *NotificacionModel) ByDeudor(did int) ([]models.Notificacion, error) {
	var res []models.Notificacion
	err := mysequel.QueryToStructs(&res, m.DB, queries.NOTIFICACIONES_BY_DEUDOR, did)
	if err != nil {
		return nil, err
	}

	return res, nil
}
