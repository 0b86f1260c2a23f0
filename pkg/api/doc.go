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
// Package api runs gtocd, the overclock HTTP API.
//
// Usage:
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// Serve installs a JSON slog logger named gtocd, builds an overclock engine
// over the embedded machine catalog and hands its routes to pkg/server.
// ServeContext does the same with the caller's logger and context, which is
// how "gtoc serve" runs it.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - POST /v1/overclock        overclock one recipe (JSON body, optional ?tier=)
//   - POST /v1/overclock/batch  overclock {"recipes": [...]}, at most 100
//   - GET  /v1/machines         machine families, coils and pipe casings (?family=)
//   - GET  /v1/tiers            voltage tiers and their EU/t ceilings
//
// System endpoints (not rate limited):
//   - GET /health   liveness
//   - GET /ready    readiness
//   - GET /metrics  Prometheus metrics
//
// Example:
//
//	curl -s -X POST localhost:8080/v1/overclock \
//	  -H 'Content-Type: application/json' \
//	  -d '{"machine":"EBF","user_voltage":"EV","eut":120,"dur":400,"coils":"HSSG","heat":1800}'
package api
