// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Build the logging wrapper once, then wrap each route:

	withLogging := middleware.NewLogging(cfg.CallerKeySalt)
	mux.HandleFunc("GET /status", withLogging(handler))

Logs request start (method, path, hashed client IP) and completion
(duration_ms). Both lines carry a request_id, taken from an incoming
X-Request-ID header when it holds a UUID and generated otherwise. The id is
echoed back in the X-Request-ID response header.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ErrorResponseWithCode(w, http.StatusConflict, "AlreadyVoted", "message")

Parse and validate JSON request bodies:

	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

Validation uses go-playground/validator with field names reported by their
json tag, so a missing address fails with "address is required".

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Only a salted hash of it is ever logged.
*/
package middleware
