// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package api

import (
	"net/http"

	"github.com/kinoteka/kinoteka/internal/platform/constants"
	"github.com/kinoteka/kinoteka/internal/platform/postgres"
	"github.com/kinoteka/kinoteka/internal/platform/redis"
	"github.com/kinoteka/kinoteka/internal/platform/respond"
)

// handleHealth is the liveness probe: the process is up and serving.
func (server *Server) handleHealth(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusOK, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	})
}

// handleReady is the readiness probe: every backing store must answer.
//
// A degraded Redis keeps the instance ready (the rate limiter falls back to
// its local bucket) but is surfaced in the checks map for operators.
func (server *Server) handleReady(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	checks := map[string]string{}
	status := http.StatusOK

	if err := postgres.Ping(ctx, server.db); err != nil {
		checks["postgres"] = err.Error()
		status = http.StatusServiceUnavailable
	} else {
		checks["postgres"] = "ok"
	}

	if err := redis.Ping(ctx, server.cache); err != nil {
		checks["redis"] = "degraded: " + err.Error()
	} else {
		checks["redis"] = "ok"
	}

	state := "ready"
	if status != http.StatusOK {
		state = "not_ready"
	}

	respond.JSON(writer, status, map[string]interface{}{
		constants.FieldStatus: state,
		constants.FieldChecks: checks,
	})
}
