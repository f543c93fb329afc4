package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"pet-health-tracker/internal/platform/apperror"
	"pet-health-tracker/internal/platform/civil"
)

const maxBodyBytes = 1 << 20

// Decode lee un único objeto JSON en dst. Campos desconocidos, tipos
// incorrectos y fechas mal formadas se devuelven como error de validación.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if dec.More() {
		return apperror.Validation("", "request body must contain a single JSON object")
	}
	return nil
}

func decodeError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		maxErr    *http.MaxBytesError
	)

	switch {
	case errors.Is(err, io.EOF):
		return apperror.Validation("", "request body is required")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperror.Validation("", "invalid json")
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			return apperror.Validation(typeErr.Field, fmt.Sprintf("%s has an invalid type", typeErr.Field))
		}
		return apperror.Validation("", "invalid json")
	case errors.As(err, &maxErr):
		return apperror.Validation("", "request body too large")
	case errors.Is(err, civil.ErrInvalidDate):
		return apperror.Validation("", "dates must use the YYYY-MM-DD format")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return apperror.Validation(field, fmt.Sprintf("unknown field %q", field))
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Validation("", "invalid json")
}
