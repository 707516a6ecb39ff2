package reactor

// Stats summarizes resource usage over one reasoning call. Token counts
// stay zero when the model client does not report usage.
type Stats struct {
	ModelCalls   int
	ToolCalls    int
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
