package interfaces

// IMetrics records lifecycle counters.
type IMetrics interface {
	SimulationSubmitted(simType string, outcome string)
	PolicyTransition(from, to string)
	DocumentUploaded(kind, slot string)
	DuplicateSuppressed(operation string)
	NotificationFailed(slot string)
	ListDegraded(kind string)
}
