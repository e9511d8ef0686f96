// Package modal dispatches dialog close posts to a caller-supplied callback.
package modal

import (
	"net/http"
	"strconv"
	"strings"

	webtemplates "github.com/tilavaraus/tilavaraus-web/internal/services/web/templates"
)

// HandleClose receives the outcome of a dialog: true when confirmed, false
// for close and backdrop clicks. It decides what to render next.
type HandleClose func(w http.ResponseWriter, r *http.Request, confirmed bool)

// Handler parses the posted outcome and invokes handleClose. It keeps no
// dialog state of its own.
func Handler(handleClose HandleClose) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if handleClose == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		handleClose(w, r, Confirmed(r.PostForm.Get(webtemplates.ModalOKField)))
	}
}

// Confirmed parses a posted ok value. Missing or malformed values count as
// not confirmed.
func Confirmed(value string) bool {
	confirmed, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && confirmed
}
