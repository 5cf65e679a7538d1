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

// Package header provides the common header type carried by generated
// artifacts such as environment reports.
//
// The Header contains standard fields for schema versioning and metadata:
//
//	type Header struct {
//	    Kind       Kind              // Resource type (e.g., "SystemReport")
//	    APIVersion string            // Schema version (e.g., "v1")
//	    ID         string            // Unique artifact identifier
//	    Metadata   map[string]string // Timestamp, tool version, custom fields
//	}
//
// Create a header for a report:
//
//	h := header.New(
//	    header.WithKind(header.KindSystemReport),
//	    header.WithAPIVersion("v1"),
//	    header.WithMetadata("hostname", "gpu-node-1"),
//	)
//
// Timestamps use RFC3339 UTC format. Consumers should check APIVersion
// before parsing a persisted artifact.
package header
