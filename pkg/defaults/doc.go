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

// Package defaults provides centralized timeouts and limits for gtoc.
//
// # Categories
//
//   - Handler timeouts: per-request deadlines for the HTTP API
//   - Server timeouts: http.Server configuration
//   - CLI timeouts: deadlines for command-line runs
//   - Limits: batch sizes, body sizes and worker counts
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.BatchHandlerTimeout)
//	defer cancel()
package defaults
