package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	log "github.com/sirupsen/logrus"

	"treasure-map-service/internal/domain"
)

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	ErrorText     string   `json:"error,omitempty"` // application-level error message
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

// ErrInternal hides the cause from the client and logs it instead.
func ErrInternal(r *http.Request, err error) render.Renderer {
	log.WithFields(log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).WithError(err).Error("request failed")

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
		ErrorText:      "internal server error",
	}
}

// ErrDomain maps coded domain errors onto HTTP statuses.
func ErrDomain(r *http.Request, err error) render.Renderer {
	switch status := getStatusCode(err); status {
	case http.StatusNotFound:
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: status,
			StatusText:     "Resource not found.",
			ErrorText:      err.Error(),
		}
	case http.StatusBadRequest:
		return ErrInvalidRequest(err)
	default:
		return ErrInternal(r, err)
	}
}

func getStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrParse), errors.Is(err, domain.ErrValueTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
	trans        ut.Translator
)

func validatorWithTranslator() (*validator.Validate, ut.Translator) {
	validateOnce.Do(func() {
		validate = validator.New()
		english := en.New()
		uni := ut.New(english, english)
		trans, _ = uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	})
	return validate, trans
}

// validateStruct returns a renderer for the first failing request, or nil.
func validateStruct(data any) render.Renderer {
	v, tr := validatorWithTranslator()
	if err := v.Struct(data); err != nil {
		return ErrValidation(err, translateError(err, tr))
	}
	return nil
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, fmt.Errorf("%s", e.Translate(trans)))
	}
	return errs
}
