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
// Package cli implements gtoc, the command line front end to the overclock engine.
//
// # Commands
//
// overclock - Overclock recipes:
//
//	gtoc overclock -f recipes.yaml --tier EV
//	gtoc overclock --machine "electric blast furnace" --tier EV --eut 120 --dur 400 \
//	    --coils HSSG --heat 1800 --product "titanium ingot=1" --format table
//
// Recipes come from a recipe book (-f) or from flags for a single recipe.
// --tier fills in user_voltage where a recipe leaves it empty. The whole book
// succeeds or the command fails with the first error.
//
// machines - List machine families and GT++ constants:
//
//	gtoc machines --family parallel
//	gtoc machines --coils
//
// tiers - List voltage tiers with their EU/t ceilings.
//
// serve - Run the HTTP API (same as gtocd):
//
//	gtoc serve --port 8080
//
// # Global Flags
//
//	--log-level    debug, info, warn, error (default: info)
//	--log-format   text or json (default: text)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Commands that print data also take --output/-o (default: stdout) and
// --format/-t (yaml, json or table).
//
// # Environment Variables
//
//	GTOC_LOG_LEVEL, LOG_LEVEL   log level
//	GTOC_LOG_FORMAT             log format
//	GTOC_RECIPE_FILE            recipe book for overclock
//	GTOC_TIER                   default tier for overclock
//	GTOC_PARALLELISM            concurrent recipes for overclock
//	GTOC_PORT, PORT             listen port for serve
//	GTOC_RATE_LIMIT             request rate for serve
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, overclock failure)
//	2  Context canceled or timeout
//
// Debug logging (--log-level debug) shows every GT++ parallel overclock step.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/Alrightsc/gtnh-flow/pkg/cli.version=1.0.0'"
package cli
