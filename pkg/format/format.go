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

package format

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the default layout used to prefix log file names (YYYYMMDD).
const DateLayout = "20060102"

// timeDirectives are the reference-layout elements that indicate a layout
// carries time-of-day information (hour, minute, second, or meridiem).
var timeDirectives = []string{"15", "03", "04", "05", "PM", "pm"}

// Duration renders a non-negative number of seconds as a human-readable
// duration string. Only the largest non-zero unit down through seconds is
// included, and seconds always carry three decimal places:
//
//	Duration(0)       == "0.000 sec"
//	Duration(65)      == "1 min 5.000 sec"
//	Duration(90061.5) == "1 day 1 hr 1 min 1.500 sec"
func Duration(seconds float64) string {
	days := int(seconds) / 86400
	hours := (int(seconds) % 86400) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(int(seconds)/60*60)

	switch {
	case days > 0:
		return fmt.Sprintf("%d day %d hr %d min %.3f sec", days, hours, minutes, secs)
	case hours > 0:
		return fmt.Sprintf("%d hr %d min %.3f sec", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%d min %.3f sec", minutes, secs)
	default:
		return fmt.Sprintf("%.3f sec", secs)
	}
}

// Date formats the current moment with the given reference layout. If the
// layout contains any time-of-day directive the full current time is used;
// otherwise only today's date is formatted. An empty layout defaults to
// DateLayout.
func Date(layout string) string {
	if layout == "" {
		layout = DateLayout
	}
	now := time.Now()
	if hasTimeDirective(layout) {
		return now.Format(layout)
	}
	// Date-only layout: format local midnight so no time-of-day leaks in
	// through layouts that mix date and stray reference characters.
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).Format(layout)
}

func hasTimeDirective(layout string) bool {
	for _, d := range timeDirectives {
		if strings.Contains(layout, d) {
			return true
		}
	}
	return false
}

// Param is a single named hyperparameter value. Label input is a slice
// rather than a map because parameter order is significant in the
// resulting label.
type Param struct {
	Key   string
	Value any
}

// HypertuneLabel builds the run label for a hyperparameter-tuning trial by
// concatenating "_<key>_<value>" for each parameter in order. Keys ending in
// "lr" (case-insensitive) format their value in scientific notation with one
// decimal digit, other numeric values use three significant digits, and
// everything else renders as its plain string form:
//
//	HypertuneLabel([]Param{{"lr", 0.0001}, {"batch", 32}}) == "_lr_1.0e-04_batch_32"
func HypertuneLabel(params []Param) string {
	var sb strings.Builder
	for _, p := range params {
		sb.WriteString("_")
		sb.WriteString(p.Key)
		sb.WriteString("_")
		sb.WriteString(formatValue(p.Key, p.Value))
	}
	return sb.String()
}

func formatValue(key string, v any) string {
	isLR := len(key) >= 2 && strings.EqualFold(key[len(key)-2:], "lr")

	switch n := v.(type) {
	case float64:
		if isLR {
			return fmt.Sprintf("%.1e", n)
		}
		return fmt.Sprintf("%.3g", n)
	case float32:
		if isLR {
			return fmt.Sprintf("%.1e", float64(n))
		}
		return fmt.Sprintf("%.3g", float64(n))
	case int:
		if isLR {
			return fmt.Sprintf("%.1e", float64(n))
		}
		return fmt.Sprintf("%.3g", float64(n))
	case int64:
		if isLR {
			return fmt.Sprintf("%.1e", float64(n))
		}
		return fmt.Sprintf("%.3g", float64(n))
	default:
		return fmt.Sprintf("%v", v)
	}
}
