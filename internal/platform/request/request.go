// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kinoteka/kinoteka/internal/platform/ctxutil"
	"github.com/kinoteka/kinoteka/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as a positive integer.

A malformed or non-positive value is reported as ok=false; the caller decides
whether that means NotFound (detail lookups) or ValidationError.
*/
func IntParam(request *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil || value < 1 {
		return 0, false
	}
	return value, true
}

/*
ClientIP returns the caller IP resolved by the middleware chain.

Falls back to the raw remote address if the middleware did not run (tests).
*/
func ClientIP(request *http.Request) string {
	if ip := ctxutil.GetClientIP(request.Context()); ip != "" {
		return ip
	}
	return request.RemoteAddr
}
