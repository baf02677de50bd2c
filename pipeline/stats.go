package pipeline

import (
	"time"

	"github.com/topfreegames/pausepoc/interfaces"
)

func statsReporterMessageProcessed(statsReporters []interfaces.StatsReporter, topic string) {
	for _, statsReporter := range statsReporters {
		statsReporter.HandleMessageProcessed(topic)
	}
}

func statsReporterMessageFailed(statsReporters []interfaces.StatsReporter, topic, reason string) {
	for _, statsReporter := range statsReporters {
		statsReporter.HandleMessageFailed(topic, reason)
	}
}

func statsReporterMessageForwarded(statsReporters []interfaces.StatsReporter, topic string, latency time.Duration) {
	for _, statsReporter := range statsReporters {
		statsReporter.HandleMessageForwarded(topic, latency)
	}
}
