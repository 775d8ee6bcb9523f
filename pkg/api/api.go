package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/devutils/devutils/pkg/config"
	"github.com/devutils/devutils/pkg/share"
	"github.com/devutils/devutils/pkg/storage"
)

type DevUtilsAPIStruct struct {
	storageServices *storage.Services
	share           *share.Service
	config          config.DevUtilsConfig
}

func NewDevUtilsAPI(conf config.DevUtilsConfig, storageServices *storage.Services) (*DevUtilsAPIStruct, error) {
	rc := DevUtilsAPIStruct{
		storageServices: storageServices,
		share:           share.NewService(storageServices.Cache, conf.Share),
		config:          conf,
	}
	return &rc, nil
}

func RunAPI(ctx context.Context, conf config.API, mux *chi.Mux) {
	log.Debug().Int("port", conf.Port).Msg("Starting API")

	server := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", conf.Port),
		Handler: mux,
	}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Err(err).Msg("Error serving API")
			serverStopCtx()
		}
	}()

	go func() {
		<-ctx.Done() // Wait for the context to be canceled

		log.Debug().Msg("Stopping API")

		// Gracefully shutdown server
		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Error().Err(err).Msg("Error shutting down API")
		}

		cancel()
		serverStopCtx()
	}()

	log.Debug().Msg("Waiting for graceful shutdown")
	<-serverCtx.Done()

	log.Debug().Msg("API server stopped")
}
