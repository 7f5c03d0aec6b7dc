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

package cookbook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	entriesGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cookbook_entries",
			Help: "Number of entries registered in the cookbook",
		},
	)

	registrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_registrations_total",
			Help: "Total number of successful registrations by entry kind",
		},
		[]string{"kind"},
	)

	summaryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookbook_summary_duration_seconds",
			Help:    "Time spent expanding a recipe into a summary",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	summaryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_summary_failures_total",
			Help: "Total number of failed summaries by error code",
		},
		[]string{"code"},
	)
)
