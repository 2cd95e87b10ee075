package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"runtime/debug"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/saldoapps/cobranza/pkg/schedule"
)

func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)

	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}

func (app *application) notFound(w http.ResponseWriter) {
	app.clientError(w, http.StatusNotFound)
}

// validationError writes a 422 with the validation message when err wraps a
// schedule.ValidationError, and falls back to serverError otherwise.
func (app *application) validationError(w http.ResponseWriter, err error) {
	var ve *schedule.ValidationError
	if errors.As(err, &ve) {
		http.Error(w, ve.Error(), http.StatusUnprocessableEntity)
		return
	}

	app.serverError(w, err)
}

func (app *application) getS3Session(endpoint, region string) (*session.Session, error) {
	return session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Endpoint:    aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(app.s3id, app.s3secret, ""),
	})
}

func (app *application) uploadFileToS3(s *session.Session, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	buffer, err := ioutil.ReadAll(file)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%s-%s", uuid.New().String(), fileHeader.Filename)
	_, err = s3.New(s).PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(app.s3bucket),
		Key:           aws.String(fileName),
		ACL:           aws.String("private"),
		Body:          bytes.NewReader(buffer),
		ContentLength: aws.Int64(int64(len(buffer))),
		ContentType:   aws.String(http.DetectContentType(buffer)),
	})
	if err != nil {
		return "", err
	}

	return fileName, nil
}
