// Copyright (c) 2025, PtyRAD authors.  All rights reserved.
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

// Package serializer encodes and decodes environment reports and
// configuration data in multiple formats.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, compact representation
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for configuration files and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened key/value rows for terminal viewing
//   - Report sections render with title-cased section names
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.(serializer.Closer).Close()
//	if err := w.Serialize(ctx, rep); err != nil {
//		return err
//	}
//
// # Usage - Decoding
//
// The file format is detected from the extension:
//
//	params, err := serializer.FromFile[map[string]any]("params.yaml")
package serializer
