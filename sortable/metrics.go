package sortable

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sortRuns = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_runs_total",
		Help: "The total number of sorts performed",
	}, []string{"sorter"})

	sortComparisons = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_comparisons_total",
		Help: "The total number of LessThan calls made while sorting",
	}, []string{"sorter"})

	sortElements = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_elements_total",
		Help: "The total number of elements passed to sort",
	}, []string{"sorter"})
)
