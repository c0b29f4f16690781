package rates

import (
	"bytes"
	"encoding/json"
	"net/http"

	"dolar-hoy/internal/models"
	"dolar-hoy/internal/service/logger"
	"dolar-hoy/internal/view"

	"github.com/sirupsen/logrus"
)

type Handler struct {
	rates  view.Source
	logger logger.RequestLogger
	log    logrus.FieldLogger
}

func New(r view.Source, l logger.RequestLogger, log logrus.FieldLogger) *Handler {
	return &Handler{rates: r, logger: l, log: log}
}

// Register serves GET (and so HEAD) on both routes. The method-less patterns
// only catch the remaining methods and answer them with a JSON 405.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.page)
	mux.HandleFunc("GET /api/v1/rates", h.list)
	mux.HandleFunc("/{$}", h.methodNotAllowed)
	mux.HandleFunc("/api/v1/rates", h.methodNotAllowed)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.finish(r, http.StatusMethodNotAllowed, 0)
	w.Header().Set("Allow", "GET, HEAD")
	writeErr(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed)
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	v := view.New(h.rates)
	v.Activate(r.Context())

	var buf bytes.Buffer
	if err := v.Render(&buf); err != nil {
		h.log.WithError(err).Error("render rates page")
		h.finish(r, http.StatusInternalServerError, 0)
		writeErr(w, http.StatusInternalServerError, models.ErrRender)
		return
	}

	h.finish(r, http.StatusOK, len(v.Records()))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	v := view.New(h.rates)
	v.Activate(r.Context())

	records := v.Records()
	h.finish(r, http.StatusOK, len(records))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(records)
}

// finish records the request in the audit log; failures are only logged.
func (h *Handler) finish(r *http.Request, status, records int) {
	if err := h.logger.LogRequest(r.Context(), r.URL.Path, status, records); err != nil {
		h.log.WithError(err).Warn("request audit log")
	}
}

func writeErr(w http.ResponseWriter, status int, err *models.BusinessError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(err)
}
