package main

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders)

	r := mux.NewRouter()
	r.Handle("/", http.HandlerFunc(app.home)).Methods("GET")
	r.HandleFunc("/authenticate", http.HandlerFunc(app.authenticate)).Methods("POST")
	r.Handle("/dropdown/{name}", app.validateToken(http.HandlerFunc(app.dropdownHandler))).Methods("GET")
	r.Handle("/client/new", app.requireRole("admin", http.HandlerFunc(app.newCliente))).Methods("POST")
	r.Handle("/client/update", app.requireRole("admin", http.HandlerFunc(app.updateCliente))).Methods("POST")
	r.Handle("/clients", app.validateToken(http.HandlerFunc(app.clientes))).Methods("GET")
	r.Handle("/client/details/{cid}", app.validateToken(http.HandlerFunc(app.clienteDetails))).Methods("GET")
	r.Handle("/debtor/new", app.validateToken(http.HandlerFunc(app.newDeudor))).Methods("POST")
	r.Handle("/debtor/update", app.validateToken(http.HandlerFunc(app.updateDeudor))).Methods("POST")
	r.Handle("/debtor/search", app.validateToken(http.HandlerFunc(app.searchDeudor))).Methods("GET")
	r.Handle("/debtor/details/{did}", app.validateToken(http.HandlerFunc(app.deudorDetails))).Methods("GET")
	r.Handle("/debtor/tipify", app.validateToken(http.HandlerFunc(app.tipifyDeudor))).Methods("POST")
	r.Handle("/debtor/tipifications/{did}", app.validateToken(http.HandlerFunc(app.tipificacionHistory))).Methods("GET")
	r.Handle("/debtor/statement", app.validateToken(http.HandlerFunc(app.upsertEstadoMensual))).Methods("POST")
	r.Handle("/debtor/statements/{did}", app.validateToken(http.HandlerFunc(app.estadosMensuales))).Methods("GET")
	r.Handle("/debtor/agreements/{did}", app.validateToken(http.HandlerFunc(app.acuerdosByDeudor))).Methods("GET")
	r.Handle("/agreement/calculation/{capital}/{porcentaje}/{cuotas}/{periodicidad}/{fechaPrimera}", app.validateToken(http.HandlerFunc(app.acuerdoCalculation))).Methods("GET")
	r.Handle("/agreement/new", app.validateToken(http.HandlerFunc(app.newAcuerdo))).Methods("POST")
	r.Handle("/agreement/details/{aid}", app.validateToken(http.HandlerFunc(app.acuerdoDetails))).Methods("GET")
	r.Handle("/agreement/installments/{aid}", app.validateToken(http.HandlerFunc(app.acuerdoCuotas))).Methods("GET")
	r.Handle("/agreement/installments", app.validateToken(http.HandlerFunc(app.updateCuotas))).Methods("POST")
	r.Handle("/agreement/state", app.requireRole("admin", http.HandlerFunc(app.setEstadoAcuerdo))).Methods("POST")
	r.Handle("/followup/new", app.validateToken(http.HandlerFunc(app.newSeguimiento))).Methods("POST")
	r.Handle("/debtor/followups/{did}", app.validateToken(http.HandlerFunc(app.seguimientosByDeudor))).Methods("GET")
	r.Handle("/lawsuit/new", app.validateToken(http.HandlerFunc(app.newDemanda))).Methods("POST")
	r.Handle("/lawsuit/update", app.validateToken(http.HandlerFunc(app.updateDemanda))).Methods("POST")
	r.Handle("/debtor/lawsuits/{did}", app.validateToken(http.HandlerFunc(app.demandasByDeudor))).Methods("GET")
	r.Handle("/debtor/document", app.validateToken(http.HandlerFunc(app.deudorDocument))).Methods("POST")
	r.Handle("/debtor/documents/{did}", app.validateToken(http.HandlerFunc(app.documentosByDeudor))).Methods("GET")
	r.Handle("/document/download", app.validateToken(http.HandlerFunc(app.documentoDownload))).Methods("GET")
	r.Handle("/notification/send", app.validateToken(http.HandlerFunc(app.sendNotificacion))).Methods("POST")
	r.Handle("/debtor/notifications/{did}", app.validateToken(http.HandlerFunc(app.notificacionesByDeudor))).Methods("GET")
	r.Handle("/report/tipification/{year}/{month}", app.validateToken(http.HandlerFunc(app.reporteTipificacion))).Methods("GET")
	r.Handle("/report/recovery", app.validateToken(http.HandlerFunc(app.reporteRecuperacion))).Methods("GET")

	return standardMiddleware.Then(handlers.CORS(handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"}), handlers.AllowedMethods([]string{"GET", "POST", "PUT", "HEAD", "OPTIONS"}), handlers.AllowedOrigins([]string{"*"}))(r))
}
