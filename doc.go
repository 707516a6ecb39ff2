// Package reactor implements a ReAct (Reasoning-and-Acting) orchestration
// engine: given a natural-language task it repeatedly prompts a language
// model, parses the model's tagged reply into thoughts, an optional tool
// action, or a final answer, executes the requested tool, feeds the tool's
// output back as an observation, and iterates until a final answer is
// produced or the iteration budget runs out.
//
// # Architecture
//
// This root package defines the shared data model and the component
// interfaces. Implementations live in subpackages:
//
//   - engine: the reasoning loop, the sole entry point (engine.Engine.Reason)
//   - parse: tagged-response parsers (canonical JSON, YAML bodies, legacy)
//   - prompt: the system prompt builder
//   - dispatch: tool registration and dispatch
//   - schema: JSON Schema builders and validation for tool parameters
//   - hooks: lifecycle hook registry
//   - memory: conversation memory injected into new reasoning calls
//   - models: langchaingo-backed ModelClient adapter
//
// Every collaborator the loop needs (Parser, PromptBuilder, ToolDispatcher,
// ResultBuilder, ModelClient, Memory) is an interface injected at engine
// construction, so each can be substituted and tested in isolation.
//
// # Wire protocol
//
// The model is instructed to reply using exactly three tags:
//
//	<Thought>reasoning about what to do next</Thought>
//	<Action>{"tool": "calculator", "parameters": {"expression": "2+2"}}</Action>
//	<FinalAnswer>the terminal answer</FinalAnswer>
//
// After an action the system injects a user-role message wrapping the tool
// output in <Observation>...</Observation>. The model must never emit an
// Observation tag itself.
//
// # Quick start
//
//	client := models.NewLangChain(llm)
//	eng := engine.New(client).
//	    RegisterTool(calculatorTool).
//	    WithMaxIterations(5)
//
//	result, err := eng.Reason(ctx, "What is 2+2?", nil)
//	if err != nil {
//	    // transport failure; the model could not be reached
//	}
//	fmt.Println(result.FinalAnswer)
//
// # Failure model
//
// Malformed model output is never fatal: unparsable action bodies are
// dropped and a corrective reminder is sent back to the model. Tool
// failures become observations the model can react to (or abort the loop,
// per ToolFailurePolicy). Only model transport errors propagate out of
// Reason; every other outcome is expressed as a Result status.
package reactor
