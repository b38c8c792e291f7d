package rest

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"tripgenie-service/pkg/logger"
	"tripgenie-service/pkg/utils"
)

// NewRouter wires all trip planning routes plus health and metrics.
func NewRouter(handler *TripHandler, appVersion string) *httprouter.Router {
	router := httprouter.New()

	router.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.JSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": appVersion,
		})
	})
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	router.POST("/api/v1/trips", handler.CreateTrip)
	router.GET("/api/v1/trips", handler.ListTrips)
	router.GET("/api/v1/trips/:id", handler.GetTrip)
	router.PUT("/api/v1/trips/:id/itinerary", handler.SelectItinerary)
	router.PUT("/api/v1/trips/:id/hotel", handler.SelectHotel)
	router.PUT("/api/v1/trips/:id/commute", handler.SelectCommute)
	router.POST("/api/v1/trips/:id/activities/:activityId/toggle", handler.ToggleActivity)
	router.GET("/api/v1/trips/:id/summary", handler.GetSummary)
	router.POST("/api/v1/trips/:id/finalize", handler.FinalizeTrip)

	return router
}

// WrapMiddleware applies CORS and request logging around the router.
func WrapMiddleware(router http.Handler, log logger.Logger) http.Handler {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(router)

	return requestLogging(corsHandler, log)
}

// requestLogging logs each request's method, path, and duration.
func requestLogging(next http.Handler, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"elapsed", time.Since(start))
	})
}
