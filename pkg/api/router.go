package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var latency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "latency",
	Help:    "Request latency",
	Buckets: prometheus.ExponentialBucketsRange(.05, 30, 20),
}, []string{"route", "status_code"})

var responseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "bytes_returned",
	Help:    "Bytes returned",
	Buckets: prometheus.ExponentialBucketsRange(1000, 100_000_000, 20),
}, []string{"route"})

func CreateMux(apiFunctions *DevUtilsAPIStruct) *chi.Mux {
	api := chi.NewRouter()
	api.Post("/share", apiFunctions.CreateShare)
	api.Get("/share/{shareId}", apiFunctions.GetShare)

	api.Post("/json/format", apiFunctions.FormatJSON)
	api.Post("/base64/encode", apiFunctions.Base64Encode)
	api.Post("/base64/decode", apiFunctions.Base64Decode)
	api.Post("/url/encode", apiFunctions.URLEncode)
	api.Post("/url/decode", apiFunctions.URLDecode)
	api.Get("/uuid", apiFunctions.GenerateUUID)
	api.Post("/jwt/decode", apiFunctions.DecodeJWT)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(PrometheusMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTION"},
		AllowedHeaders:   []string{"User-Agent", "Content-Type", "Accept", "Accept-Encoding", "Accept-Language", "Cache-Control", "Connection", "DNT", "Host", "Origin", "Pragma", "Referer"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/healthcheck", apiFunctions.Healthcheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/api", api)

	return r
}
