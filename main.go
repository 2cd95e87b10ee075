package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/saldoapps/cobranza/pkg/models/mysql"
)

type application struct {
	errorLog     *log.Logger
	infoLog      *log.Logger
	secret       []byte
	s3id         string
	s3secret     string
	s3endpoint   string
	s3region     string
	s3bucket     string
	smsAPIKey    string
	runtimeEnv   string
	user         *mysql.UserModel
	dropdown     *mysql.DropdownModel
	cliente      *mysql.ClienteModel
	deudor       *mysql.DeudorModel
	acuerdo      *mysql.AcuerdoModel
	seguimiento  *mysql.SeguimientoModel
	demanda      *mysql.DemandaModel
	documento    *mysql.DocumentoModel
	notificacion *mysql.NotificacionModel
	reporting    *mysql.ReportingModel
}

func main() {
	addr := flag.String("addr", ":4000", "HTTP network address")
	dsn := flag.String("dsn", "user:password@tcp(host)/cobranza?parseTime=true&loc=Local", "MySQL data source name")
	secret := flag.String("secret", "cobranza", "Secret key for generating jwts")
	s3id := flag.String("id", "", "AWS S3 identification")
	s3secret := flag.String("s3secret", "", "AWS S3 secret")
	s3endpoint := flag.String("endpoint", "s3.amazonaws.com", "AWS S3 endpoint")
	s3region := flag.String("region", "us-east-1", "AWS S3 region")
	s3bucket := flag.String("bucket", "cobranza", "AWS S3 bucket")
	smsAPIKey := flag.String("smsAPIKey", "", "SMS gateway API key")
	runtimeEnv := flag.String("renv", "prod", "Runtime environment mode")
	logPath := flag.String("logpath", "/var/www/cobranza/logs/", "Path to create or alter log files")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	integrityLogFile, err := openLogFile(*logPath + time.Now().Format("2006-01-02") + "_integrity.log")
	if err != nil {
		fmt.Println("Failed to open integrity log file")
		os.Exit(1)
	}

	integrityLog := log.New(integrityLogFile, "", log.Ldate|log.Ltime)

	db, err := openDB(*dsn)
	if err != nil {
		errorLog.Fatal(err)
	}

	defer db.Close()

	app := &application{
		errorLog:     errorLog,
		infoLog:      infoLog,
		secret:       []byte(*secret),
		s3id:         *s3id,
		s3secret:     *s3secret,
		s3endpoint:   *s3endpoint,
		s3region:     *s3region,
		s3bucket:     *s3bucket,
		smsAPIKey:    *smsAPIKey,
		runtimeEnv:   *runtimeEnv,
		user:         &mysql.UserModel{DB: db},
		dropdown:     &mysql.DropdownModel{DB: db},
		cliente:      &mysql.ClienteModel{DB: db},
		deudor:       &mysql.DeudorModel{DB: db},
		acuerdo:      &mysql.AcuerdoModel{DB: db},
		seguimiento:  &mysql.SeguimientoModel{DB: db},
		demanda:      &mysql.DemandaModel{DB: db},
		documento:    &mysql.DocumentoModel{DB: db},
		notificacion: &mysql.NotificacionModel{DB: db},
		reporting:    &mysql.ReportingModel{DB: db, IntegrityLog: integrityLog},
	}

	srv := &http.Server{
		Addr:     *addr,
		ErrorLog: errorLog,
		Handler:  app.routes(),
	}

	infoLog.Printf("Starting server on %s", *addr)
	err = srv.ListenAndServe()
	errorLog.Fatal(err)
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, err
}

func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}
