package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storiesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stories_created_total",
		Help: "Total number of stories created.",
	})

	chaptersSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chapters_saved_total",
		Help: "Total number of chapter create and update operations.",
	})

	sessionsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "writing_sessions_recorded_total",
		Help: "Total number of writing sessions recorded.",
	})
)
