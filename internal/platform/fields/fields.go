// Package fields normaliza y valida campos de texto contra los límites de
// las columnas VARCHAR del schema.
package fields

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pet-health-tracker/internal/platform/apperror"
)

// Unlimited es para columnas TEXT.
const Unlimited = 0

// Required recorta v y falla si queda vacío o excede max caracteres.
func Required(field, v string, max int, missingMsg string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", apperror.Validation(field, missingMsg)
	}
	if err := checkLen(field, v, max); err != nil {
		return "", err
	}
	return v, nil
}

// Optional recorta v; nil o vacío se guarda como NULL.
func Optional(field string, v *string, max int) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil, nil
	}
	if err := checkLen(field, s, max); err != nil {
		return nil, err
	}
	return &s, nil
}

func checkLen(field, v string, max int) error {
	if max > Unlimited && utf8.RuneCountInString(v) > max {
		return apperror.Validation(field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return nil
}

// Ptr es el atajo para construir opcionales en tests y fixtures.
func Ptr[T any](v T) *T {
	return &v
}
