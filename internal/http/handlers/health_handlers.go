package handlers

import (
	"context"
	"net/http"
	"time"
)

// RootHandler godoc
// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Spaza Backend API - Smart Spaza Assistant"})
}

// HealthHandler godoc
// @Summary Process health
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", DBEngine: dbEngine})
}

// HealthDBHandler godoc
// @Summary Storage engine health
// @Description Pings the configured storage engine. Reports the error instead of failing the request.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health/db [get]
func HealthDBHandler(w http.ResponseWriter, r *http.Request) {
	if database == nil {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", DBEngine: dbEngine})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "error", DBEngine: dbEngine, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", DBEngine: dbEngine})
}
