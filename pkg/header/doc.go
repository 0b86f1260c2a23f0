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
// Package header defines the document header shared by recipe books and
// overclock results.
//
// A header is optional on input. Output written by gtoc and gtocd carries one:
//
//	kind: OverclockResult
//	apiVersion: gtoc.gtnh/v1
//	metadata:
//	  timestamp: "2025-01-02T15:04:05Z"
//	  version: v0.3.0
//	  tier: EV
//	recipes:
//	  - machine: electric blast furnace
//	    ...
//
// Types embed Header inline:
//
//	type Book struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Recipes []*Recipe `json:"recipes" yaml:"recipes"`
//	}
package header
