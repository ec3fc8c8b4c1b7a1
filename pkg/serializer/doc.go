// Copyright (c) 2025, Sugarcube Authors.  All rights reserved.
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

// Package serializer provides encoding and decoding of conversion results
// and registry listings in multiple output formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, compact
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable, preserves structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened key/value text for terminal viewing
//   - Write-only (no deserialization support)
//
// # Usage
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(result); err != nil {
//	    return err
//	}
//
// Reading structured input back:
//
//	batch, err := serializer.FromFile[Batch]("batch.yaml")
package serializer
