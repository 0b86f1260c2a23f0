// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// Package server provides the HTTP front end shared by the gtoc API:
// routing, a middleware chain and structured error responses.
//
// Every route registered with [WithHandler] runs behind the same chain,
// outermost first:
//
//   - Prometheus request metrics (gtoc_http_*)
//   - API version negotiation via "Accept: application/vnd.gtoc.v1+json"
//   - Request ID propagation (X-Request-Id, UUIDs only)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Request body size limit
//   - Request logging through log/slog
//
// /health, /ready and /metrics are served outside the chain so probes and
// scrapes are never rate limited.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("gtocd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/overclock": engine.HandleOverclock,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is canceled or the process receives SIGINT or SIGTERM,
// then drains in-flight requests for up to Config.ShutdownTimeout.
//
// # Errors
//
// Handlers report failures with [WriteError] or [WriteErrorFromErr]. The latter
// maps a StructuredError code from pkg/errors to a status:
//
//	INVALID_REQUEST                      400
//	CONFIGURATION, NEGATIVE_OVERCLOCK    422
//	UNIMPLEMENTED                        501
//	RATE_LIMIT_EXCEEDED                  429
//	TIMEOUT                              504
//	anything else                        500
//
// # Environment
//
//	PORT                       listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS   graceful shutdown window (default 30)
//	RATE_LIMIT                 requests per second (default 100, burst 2x)
package server
