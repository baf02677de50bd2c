package flowcontrol

import "github.com/topfreegames/pausepoc/interfaces"

func statsReporterConsumerPaused(statsReporters []interfaces.StatsReporter, listenerID string) {
	for _, statsReporter := range statsReporters {
		statsReporter.HandleConsumerPaused(listenerID)
	}
}

func statsReporterConsumerResumed(statsReporters []interfaces.StatsReporter, listenerID string) {
	for _, statsReporter := range statsReporters {
		statsReporter.HandleConsumerResumed(listenerID)
	}
}

func statsReporterResumeRescheduled(statsReporters []interfaces.StatsReporter, listenerID string) {
	for _, statsReporter := range statsReporters {
		statsReporter.HandleResumeRescheduled(listenerID)
	}
}

func statsReporterSchedulingFailure(statsReporters []interfaces.StatsReporter, listenerID, operation string) {
	for _, statsReporter := range statsReporters {
		statsReporter.HandleSchedulingFailure(listenerID, operation)
	}
}
