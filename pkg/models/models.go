package models

import (
	"database/sql"
	"errors"
	"time"
)

var (
	ErrNoRecord       = errors.New("models: no matching record found")
	ErrEstadoInvalido = errors.New("models: estado de acuerdo desconocido")
)

type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type User struct {
	ID        int
	Username  string
	Password  string
	Name      string
	Role      string
	CreatedAt time.Time
}

type Dropdown struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Cliente struct {
	ID        int            `json:"id"`
	Nombre    string         `json:"nombre"`
	Nit       string         `json:"nit"`
	Contacto  sql.NullString `json:"contacto"`
	Telefono  sql.NullString `json:"telefono"`
	Correo    sql.NullString `json:"correo"`
	Direccion sql.NullString `json:"direccion"`
	Creado    string         `json:"creado"`
}

type Deudor struct {
	ID           int            `json:"id"`
	ClienteID    int            `json:"cliente_id"`
	Nombre       string         `json:"nombre"`
	Cedula       string         `json:"cedula"`
	Telefono     sql.NullString `json:"telefono"`
	Correo       sql.NullString `json:"correo"`
	Direccion    sql.NullString `json:"direccion"`
	Ciudad       sql.NullString `json:"ciudad"`
	Tipificacion string         `json:"tipificacion"`
	Creado       string         `json:"creado"`
}

type DeudorDetalle struct {
	ID            int            `json:"id"`
	Cliente       string         `json:"cliente"`
	Nombre        string         `json:"nombre"`
	Cedula        string         `json:"cedula"`
	Telefono      sql.NullString `json:"telefono"`
	Correo        sql.NullString `json:"correo"`
	Direccion     sql.NullString `json:"direccion"`
	Ciudad        sql.NullString `json:"ciudad"`
	Tipificacion  string         `json:"tipificacion"`
	UltimoMes     sql.NullString `json:"ultimo_mes"`
	UltimaDeuda   sql.NullInt64  `json:"ultima_deuda"`
	UltimoRecaudo sql.NullInt64  `json:"ultimo_recaudo"`
}

type DeudorSearchItem struct {
	ID           int            `json:"id"`
	Cliente      string         `json:"cliente"`
	Nombre       string         `json:"nombre"`
	Cedula       string         `json:"cedula"`
	Telefono     sql.NullString `json:"telefono"`
	Tipificacion string         `json:"tipificacion"`
}

type TipificacionItem struct {
	ID           int    `json:"id"`
	Fecha        string `json:"fecha"`
	Tipificacion string `json:"tipificacion"`
	Usuario      string `json:"usuario"`
}

type EstadoMensualItem struct {
	ID      int    `json:"id"`
	Mes     string `json:"mes"`
	Deuda   int64  `json:"deuda"`
	Recaudo int64  `json:"recaudo"`
}

type AcuerdoPago struct {
	ID                   int     `json:"id"`
	DeudorID             int     `json:"deudor_id"`
	Numero               string  `json:"numero"`
	Version              int     `json:"version"`
	FechaAcuerdo         string  `json:"fecha_acuerdo"`
	CapitalInicial       int64   `json:"capital_inicial"`
	PorcentajeHonorarios float64 `json:"porcentaje_honorarios"`
	HonorariosInicial    int64   `json:"honorarios_inicial"`
	TotalAcordado        int64   `json:"total_acordado"`
	NumeroCuotas         int     `json:"numero_cuotas"`
	Periodicidad         string  `json:"periodicidad"`
	FechaPrimeraCuota    string  `json:"fecha_primera_cuota"`
	Estado               string  `json:"estado"`
	Creado               string  `json:"creado"`
}

type Seguimiento struct {
	ID       int    `json:"id"`
	DeudorID int    `json:"deudor_id"`
	Usuario  string `json:"usuario"`
	Fecha    string `json:"fecha"`
	Canal    string `json:"canal"`
	Nota     string `json:"nota"`
}

type Demanda struct {
	ID                int            `json:"id"`
	DeudorID          int            `json:"deudor_id"`
	Juzgado           string         `json:"juzgado"`
	Radicado          string         `json:"radicado"`
	Etapa             sql.NullString `json:"etapa"`
	FechaPresentacion string         `json:"fecha_presentacion"`
	Notas             sql.NullString `json:"notas"`
	Creado            string         `json:"creado"`
}

type Notificacion struct {
	ID       int    `json:"id"`
	DeudorID int    `json:"deudor_id"`
	Usuario  string `json:"usuario"`
	Tipo     string `json:"tipo"`
	Destino  string `json:"destino"`
	Mensaje  string `json:"mensaje"`
	Fecha    string `json:"fecha"`
}

type DocumentoDeudor struct {
	ID       int            `json:"id"`
	Nombre   string         `json:"nombre"`
	S3Bucket sql.NullString `json:"s3bucket"`
	S3Region sql.NullString `json:"s3region"`
	Source   sql.NullString `json:"source"`
	Creado   string         `json:"creado"`
}

type ReporteTipificacionRow struct {
	Tipificacion string `json:"tipificacion"`
	Etiqueta     string `json:"etiqueta"`
	Cantidad     int    `json:"cantidad"`
	Recaudado    int64  `json:"recaudado"`
	SaldoDeuda   int64  `json:"saldoDeuda"`
}

type RecuperacionRow struct {
	Mes       string `json:"mes"`
	Deudores  int    `json:"deudores"`
	Recaudado int64  `json:"recaudado"`
}
