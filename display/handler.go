package display

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

const INTERNAL_ERROR_MESSAGE = "Internal server error"

type HTTPHandler struct {
	View     *View
	Reloader LiveReloaderInterface
}

func (h *HTTPHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.View.Render(&buf); err != nil {
		log.Printf("Failed to render posts page: %s", err.Error())
		http.Error(w, INTERNAL_ERROR_MESSAGE, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

func (h *HTTPHandler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.HandleIndex).Methods("GET")
	r.HandleFunc(ReloadPath, h.Reloader.Handler).Methods("GET")
	return r
}
