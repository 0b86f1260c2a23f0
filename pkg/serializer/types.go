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

// Package serializer provides utilities for serializing data to various formats.
//
// The package supports three main output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable format, also used for recipe books
//   - Table: Human-readable tabular output
//
// Usage:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, results); err != nil {
//		return err
//	}
//
// Reading a recipe book:
//
//	book, err := serializer.FromFile[recipe.Book]("book.yaml")
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// Values implementing Tabular control their own table layout; anything else
// is flattened into FIELD/VALUE rows.
package serializer

import "context"

// Serializer is an interface for serializing data.
// Implementations of this interface can serialize data to various formats
// such as JSON, YAML, or plain text.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}

// Tabular is implemented by values that know how to lay themselves out as a table.
type Tabular interface {
	TableHeader() []string
	TableRows() [][]string
}
