package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/devutils/devutils/pkg/share"
)

// Largest accepted share payload. Share links carry tool working data, not
// file uploads.
const maxShareBytes = 1 << 20

var sharesCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "shares_created",
	Help: "Share links created",
})

func (a *DevUtilsAPIStruct) CreateShare(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxShareBytes))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, render.M{"error": "Request body too large or unreadable"})
		return
	}

	if !gjson.ValidBytes(body) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, render.M{"error": "Invalid request body"})
		return
	}

	// The data field must be present; everything else in the body rides
	// along inside the stored payload.
	data := gjson.GetBytes(body, "data")
	if !data.Exists() || data.Type == gjson.Null || (data.Type == gjson.String && data.Str == "") {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, render.M{"error": "Share data cannot be empty"})
		return
	}

	kind := gjson.GetBytes(body, "type").String()
	if kind == "" {
		kind = "json"
	}

	result, err := a.share.Create(r.Context(), body, kind)
	if errors.Is(err, share.ErrEmptyPayload) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, render.M{"error": "Share data cannot be empty"})
		return
	}
	if err != nil {
		a.serverError(w, r, err)
		return
	}

	sharesCreated.Inc()

	render.JSON(w, r, render.M{
		"success":  true,
		"shareId":  result.Key,
		"shareUrl": result.URL,
	})
}

func (a *DevUtilsAPIStruct) GetShare(w http.ResponseWriter, r *http.Request) {
	shareID := chi.URLParam(r, "shareId")

	record, err := a.share.Resolve(r.Context(), shareID)
	if errors.Is(err, share.ErrNotFound) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, render.M{"error": "Share link expired or does not exist"})
		return
	}
	if err != nil {
		a.serverError(w, r, err)
		return
	}

	render.JSON(w, r, render.M{
		"success":   true,
		"data":      record.Data,
		"createdAt": record.CreatedAt,
		"type":      record.Type,
	})
}

// serverError hides store failure detail from callers outside development
// builds while logging the full error server-side.
func (a *DevUtilsAPIStruct) serverError(w http.ResponseWriter, r *http.Request, err error) {
	log.Error().Err(err).Str("path", r.URL.Path).Msg("Share store failure")

	message := "Sharing is temporarily unavailable"
	if a.config.IsDevelopment() {
		message = err.Error()
	}

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, render.M{"error": message})
}
