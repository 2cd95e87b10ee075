package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/saldoapps/cobranza/pkg/models"
	"github.com/saldoapps/cobranza/pkg/schedule"
	"github.com/saldoapps/cobranza/pkg/tipification"
)

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	if app.runtimeEnv == "dev" {
		fmt.Fprintf(w, "It works! [dev]")
	} else {
		fmt.Fprintf(w, "It works!")
	}
}

func (app *application) authenticate(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	u, err := app.user.Get(username, password)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) || errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			app.notFound(w)
		} else {
			app.serverError(w, err)
		}
		return
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)

	claims["username"] = u.Username
	claims["name"] = u.Name
	claims["role"] = u.Role
	claims["exp"] = time.Now().Add(time.Minute * 180).Unix()

	ts, err := token.SignedString(app.secret)
	if err != nil {
		app.serverError(w, err)
		return
	}

	user := models.UserResponse{ID: u.ID, Username: u.Username, Name: u.Name, Role: u.Role, Token: ts}
	js, err := json.Marshal(user)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(js)
}

func (app *application) dropdownHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]
	if name == "" {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	items, err := app.dropdown.Get(name)
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (app *application) newCliente(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	requiredParams := []string{"user_id", "nombre", "nit"}
	optionalParams := []string{"contacto", "telefono", "correo", "direccion"}

	for _, param := range requiredParams {
		if v := r.PostForm.Get(param); v == "" {
			fmt.Println(param)
			app.clientError(w, http.StatusBadRequest)
			return
		}
	}

	r.PostForm.Set("creado", time.Now().Format("2006-01-02 15:04:05"))

	id, err := app.cliente.Insert(append(requiredParams, "creado"), optionalParams, r.PostForm)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fmt.Fprintf(w, "%d", id)
}

func (app *application) updateCliente(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	if v := r.PostForm.Get("id"); v == "" {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	err = app.cliente.Update(r.PostForm.Get("id"), []string{"nombre", "nit", "contacto", "telefono", "correo", "direccion"}, r.PostForm)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fmt.Fprintf(w, "%s", r.PostForm.Get("id"))
}

func (app *application) clientes(w http.ResponseWriter, r *http.Request) {
	items, err := app.cliente.All()
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (app *application) clienteDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cid, err := strconv.Atoi(vars["cid"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	c, err := app.cliente.Details(cid)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.notFound(w)
		} else {
			app.serverError(w, err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func (app *application) newDeudor(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	requiredParams := []string{"cliente_id", "user_id", "nombre", "cedula"}
	optionalParams := []string{"telefono", "correo", "direccion", "ciudad"}

	for _, param := range requiredParams {
		if v := r.PostForm.Get(param); v == "" {
			fmt.Println(param)
			app.clientError(w, http.StatusBadRequest)
			return
		}
	}

	if v := r.PostForm.Get("tipificacion"); v != "" {
		if _, err := tipification.Parse(v); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
	}

	r.PostForm.Set("creado", time.Now().Format("2006-01-02 15:04:05"))

	id, err := app.deudor.Insert(append(requiredParams, "creado"), append(optionalParams, "tipificacion"), r.PostForm)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fmt.Fprintf(w, "%d", id)
}

func (app *application) updateDeudor(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	if v := r.PostForm.Get("id"); v == "" {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	err = app.deudor.Update(r.PostForm.Get("id"), []string{"nombre", "cedula", "telefono", "correo", "direccion", "ciudad"}, r.PostForm)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fmt.Fprintf(w, "%s", r.PostForm.Get("id"))
}

func (app *application) searchDeudor(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	cliente := r.URL.Query().Get("cliente")
	tipificacion := r.URL.Query().Get("tipificacion")

	results, err := app.deudor.Search(search, cliente, tipificacion)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

func (app *application) deudorDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	did, err := strconv.Atoi(vars["did"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	d, err := app.deudor.Details(did)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.notFound(w)
		} else {
			app.serverError(w, err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

func (app *application) tipifyDeudor(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	requiredParams := []string{"deudor_id", "user_id", "tipificacion"}
	for _, param := range requiredParams {
		if v := r.PostForm.Get(param); v == "" {
			fmt.Println(param)
			app.clientError(w, http.StatusBadRequest)
			return
		}
	}

	did, err := strconv.Atoi(r.PostForm.Get("deudor_id"))
	userID, err := strconv.Atoi(r.PostForm.Get("user_id"))
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	cat, err := tipification.Parse(r.PostForm.Get("tipificacion"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	fecha := r.PostForm.Get("fecha")
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02 15:04:05")
	}

	id, err := app.deudor.Tipify(did, userID, fecha, cat)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fmt.Fprintf(w, "%d", id)
}

func (app *application) tipificacionHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	did, err := strconv.Atoi(vars["did"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	items, err := app.deudor.TipificacionHistory(did)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (app *application) upsertEstadoMensual(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	requiredParams := []string{"deudor_id", "mes", "deuda", "recaudo"}
	for _, param := range requiredParams {
		if v := r.PostForm.Get(param); v == "" {
			fmt.Println(param)
			app.clientError(w, http.StatusBadRequest)
			return
		}
	}

	did, err := strconv.Atoi(r.PostForm.Get("deudor_id"))
	deuda, err := strconv.ParseInt(r.PostForm.Get("deuda"), 10, 64)
	recaudo, err := strconv.ParseInt(r.PostForm.Get("recaudo"), 10, 64)
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	err = app.deudor.UpsertEstadoMensual(did, r.PostForm.Get("mes"), deuda, recaudo)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fmt.Fprintf(w, "%d", did)
}

func (app *application) estadosMensuales(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	did, err := strconv.Atoi(vars["did"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	items, err := app.deudor.EstadosMensuales(did)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (app *application) acuerdoCalculation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	capital, err := strconv.ParseInt(vars["capital"], 10, 64)
	porcentaje, err := strconv.ParseFloat(vars["porcentaje"], 64)
	cuotas, err := strconv.Atoi(vars["cuotas"])
	fechaPrimera, err := time.Parse("2006-01-02", vars["fechaPrimera"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	p := schedule.Params{
		CapitalInicial:       capital,
		PorcentajeHonorarios: porcentaje,
		NumeroCuotas:         cuotas,
		FechaPrimeraCuota:    fechaPrimera,
		Periodicidad:         schedule.Periodicidad(vars["periodicidad"]),
		AjustarUltima:        true,
	}

	rows, err := schedule.Generate(p)
	if err != nil {
		app.validationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

func (app *application) newAcuerdo(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	requiredParams := []string{"deudor_id", "user_id", "numero", "fecha_acuerdo", "capital_inicial", "porcentaje_honorarios", "numero_cuotas", "periodicidad", "fecha_primera_cuota"}
	for _, param := range requiredParams {
		if v := r.PostForm.Get(param); v == "" {
			fmt.Println(param)
			app.clientError(w, http.StatusBadRequest)
			return
		}
	}

	did, err := strconv.Atoi(r.PostForm.Get("deudor_id"))
	userID, err := strconv.Atoi(r.PostForm.Get("user_id"))
	capital, err := strconv.ParseInt(r.PostForm.Get("capital_inicial"), 10, 64)
	porcentaje, err := strconv.ParseFloat(r.PostForm.Get("porcentaje_honorarios"), 64)
	numCuotas, err := strconv.Atoi(r.PostForm.Get("numero_cuotas"))
	fechaPrimera, err := time.Parse("2006-01-02", r.PostForm.Get("fecha_primera_cuota"))
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	var valorBase int64
	if v := r.PostForm.Get("valor_cuota_base"); v != "" {
		valorBase, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			app.clientError(w, http.StatusBadRequest)
			return
		}
	}

	ajustarUltima := true
	if v := r.PostForm.Get("ajustar_ultima"); v == "0" || v == "false" {
		ajustarUltima = false
	}

	p := schedule.Params{
		CapitalInicial:       capital,
		PorcentajeHonorarios: porcentaje,
		NumeroCuotas:         numCuotas,
		FechaPrimeraCuota:    fechaPrimera,
		Periodicidad:         schedule.Periodicidad(r.PostForm.Get("periodicidad")),
		ValorCuotaBase:       valorBase,
		AjustarUltima:        ajustarUltima,
	}

	id, err := app.acuerdo.Insert(did, userID, r.PostForm.Get("numero"), r.PostForm.Get("fecha_acuerdo"), p)
	if err != nil {
		app.validationError(w, err)
		return
	}

	fmt.Fprintf(w, "%d", id)
}

func (app *application) acuerdoDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	aid, err := strconv.Atoi(vars["aid"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	a, err := app.acuerdo.Details(aid)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.notFound(w)
		} else {
			app.serverError(w, err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

func (app *application) acuerdosByDeudor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	did, err := strconv.Atoi(vars["did"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	items, err := app.acuerdo.ByDeudor(did)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (app *application) acuerdoCuotas(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	aid, err := strconv.Atoi(vars["aid"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	cuotas, err := app.acuerdo.Cuotas(aid)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cuotas)
}

func (app *application) updateCuotas(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AcuerdoID int              `json:"acuerdoId"`
		Cuotas    []schedule.Cuota `json:"cuotas"`
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.AcuerdoID == 0 || len(req.Cuotas) == 0 {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	cuotas, err := app.acuerdo.ReplaceCuotas(req.AcuerdoID, req.Cuotas)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.notFound(w)
		} else {
			app.serverError(w, err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cuotas)
}

func (app *application) setEstadoAcuerdo(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	requiredParams := []string{"acuerdo_id", "estado"}
	for _, param := range requiredParams {
		if v := r.PostForm.Get(param); v == "" {
			fmt.Println(param)
			app.clientError(w, http.StatusBadRequest)
			return
		}
	}

	err = app.acuerdo.SetEstado(r.PostForm.Get("acuerdo_id"), r.PostForm.Get("estado"))
	if err != nil {
		if errors.Is(err, models.ErrEstadoInvalido) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		} else {
			app.serverError(w, err)
		}
		return
	}

	fmt.Fprintf(w, "%s", r.PostForm.Get("acuerdo_id"))
}

func (app *application) newSeguimiento(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	requiredParams := []string{"deudor_id", "user_id", "canal", "nota"}
	for _, param := range requiredParams {
		if v := r.PostForm.Get(param); v == "" {
			fmt.Println(param)
			app.clientError(w, http.StatusBadRequest)
			return
		}
	}

	if r.PostForm.Get("fecha") == "" {
		r.PostForm.Set("fecha", time.Now().Format("2006-01-02 15:04:05"))
	}

	id, err := app.seguimiento.Insert(append(requiredParams, "fecha"), []string{}, r.PostForm)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fmt.Fprintf(w, "%d", id)
}

func (app *application) seguimientosByDeudor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	did, err := strconv.Atoi(vars["did"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	items, err := app.seguimiento.ByDeudor(did)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (app *application) newDemanda(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	requiredParams := []string{"deudor_id", "user_id", "juzgado", "radicado", "fecha_presentacion"}
	optionalParams := []string{"etapa", "notas"}

	for _, param := range requiredParams {
		if v := r.PostForm.Get(param); v == "" {
			fmt.Println(param)
			app.clientError(w, http.StatusBadRequest)
			return
		}
	}

	r.PostForm.Set("creado", time.Now().Format("2006-01-02 15:04:05"))

	id, err := app.demanda.Insert(append(requiredParams, "creado"), optionalParams, r.PostForm)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fmt.Fprintf(w, "%d", id)
}

func (app *application) updateDemanda(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	if v := r.PostForm.Get("id"); v == "" {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	err = app.demanda.Update(r.PostForm.Get("id"), []string{"juzgado", "radicado", "etapa", "notas"}, r.PostForm)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fmt.Fprintf(w, "%s", r.PostForm.Get("id"))
}

func (app *application) demandasByDeudor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	did, err := strconv.Atoi(vars["did"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	items, err := app.demanda.ByDeudor(did)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (app *application) deudorDocument(w http.ResponseWriter, r *http.Request) {
	maxSize := int64(5120000)
	err := r.ParseMultipartForm(maxSize)
	if err != nil {
		app.serverError(w, err)
		return
	}

	requiredParams := []string{"deudor_id", "user_id", "nombre"}
	for _, param := range requiredParams {
		if v := r.FormValue(param); v == "" {
			fmt.Println(param)
			app.clientError(w, http.StatusBadRequest)
			return
		}
	}

	file, fileHeader, err := r.FormFile("source")
	if err != nil {
		app.serverError(w, err)
		return
	}
	defer file.Close()

	s, err := app.getS3Session(app.s3endpoint, app.s3region)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fileName, err := app.uploadFileToS3(s, file, fileHeader)
	if err != nil {
		app.serverError(w, err)
		return
	}

	t := time.Now()
	r.Form.Set("creado", t.Format("2006-01-02 15:04:05"))
	r.Form.Set("s3bucket", app.s3bucket)
	r.Form.Set("s3region", app.s3region)
	r.Form.Set("source", fileName)

	id, err := app.documento.Insert([]string{"deudor_id", "user_id", "nombre", "creado", "s3bucket", "s3region", "source"}, []string{}, r.Form)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fmt.Fprintf(w, "%d", id)
}

func (app *application) documentosByDeudor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	did, err := strconv.Atoi(vars["did"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	items, err := app.documento.ByDeudor(did)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (app *application) documentoDownload(w http.ResponseWriter, r *http.Request) {
	bucket := r.URL.Query().Get("bucket")
	region := r.URL.Query().Get("region")
	source := r.URL.Query().Get("source")
	if bucket == "" || region == "" || source == "" {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	sess, err := app.getS3Session(app.s3endpoint, region)
	if err != nil {
		app.serverError(w, err)
		return
	}

	s3c := s3.New(sess)
	output, err := s3c.GetObject(&s3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(source)})
	if err != nil {
		app.serverError(w, err)
		return
	}

	buff, err := ioutil.ReadAll(output.Body)
	if err != nil {
		app.serverError(w, err)
		return
	}

	reader := bytes.NewReader(buff)

	http.ServeContent(w, r, source, time.Now(), reader)
}

func (app *application) sendNotificacion(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	requiredParams := []string{"deudor_id", "user_id", "tipo", "monto"}
	for _, param := range requiredParams {
		if v := r.PostForm.Get(param); v == "" {
			fmt.Println(param)
			app.clientError(w, http.StatusBadRequest)
			return
		}
	}

	did, err := strconv.Atoi(r.PostForm.Get("deudor_id"))
	userID, err := strconv.Atoi(r.PostForm.Get("user_id"))
	monto, err := strconv.ParseInt(r.PostForm.Get("monto"), 10, 64)
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	id, err := app.notificacion.Send(userID, did, r.PostForm.Get("tipo"), monto, app.smsAPIKey, app.runtimeEnv)
	if err != nil {
		app.serverError(w, err)
		return
	}

	fmt.Fprintf(w, "%d", id)
}

func (app *application) notificacionesByDeudor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	did, err := strconv.Atoi(vars["did"])
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	items, err := app.notificacion.ByDeudor(did)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (app *application) reporteTipificacion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	month, err := strconv.Atoi(vars["month"])
	if err != nil || year < 1 || month < 1 || month > 12 {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	rows, err := app.reporting.TipificationReport(year, month)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

func (app *application) reporteRecuperacion(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	rows, err := app.reporting.Recuperacion(start, end)
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}
