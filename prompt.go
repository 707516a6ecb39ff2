package reactor

// PromptBuilder renders the system prompt that opens every reasoning
// call: the tool catalog, the output-format contract, the iteration-limit
// warning, and the optional thinking-language directive and custom
// instructions.
//
// Must be a pure function of its arguments: identical inputs produce
// byte-identical output.
type PromptBuilder interface {
	BuildSystemPrompt(
		tools []Tool,
		maxIterations int,
		thinkingLanguage string,
		customInstructions string,
	) string
}
