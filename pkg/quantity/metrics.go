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

package quantity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	sgerrors "github.com/vizigr0u/sugarcube/pkg/errors"
	"github.com/vizigr0u/sugarcube/pkg/unit"
)

var (
	// Conversion metrics, labeled by dimension rather than unit to keep
	// cardinality bounded.
	conversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sugarcube_conversions_total",
			Help: "Total number of successful quantity conversions",
		},
		[]string{"from", "to"},
	)

	conversionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sugarcube_conversion_errors_total",
			Help: "Total number of failed quantity conversions",
		},
		[]string{"code"},
	)
)

func recordConversion(from, to unit.Unit) {
	conversionsTotal.WithLabelValues(from.Dimension.String(), to.Dimension.String()).Inc()
}

func recordFailure(err error) {
	conversionErrors.WithLabelValues(string(sgerrors.CodeOf(err))).Inc()
}
