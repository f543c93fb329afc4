package respond

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// IDParam lee un id numérico positivo de la ruta. ok=false significa que el
// recurso no puede existir y el handler responde 404. Las columnas id son
// SERIAL/INTEGER (int4 en Postgres), así que el rango es el de int32.
func IDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
