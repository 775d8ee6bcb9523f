package api

import (
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/render"
	"github.com/rs/zerolog/log"
)

func (a *DevUtilsAPIStruct) Healthcheck(w http.ResponseWriter, r *http.Request) {
	_, err := os.Stat(a.config.API.HealthCheckFailFile)
	if err == nil {
		http.Error(w, "Status set to unhealthy", http.StatusServiceUnavailable)
		return
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Error().Err(err).Msg("Unable to check for unhealthy file")
	}

	// Sharing is auxiliary: report its state but stay healthy without it,
	// the local tools keep working either way.
	shareStatus := "up"
	if err := a.storageServices.Cache.Ping(r.Context()); err != nil {
		log.Warn().Err(err).Msg("Share store unreachable")
		shareStatus = "down"
	}

	render.JSON(w, r, render.M{"status": "ok", "share": shareStatus})
}
