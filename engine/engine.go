// Package engine implements the reasoning loop that drives the
// think-act-observe cycle against a model client.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/reactkit/reactor"
	"github.com/reactkit/reactor/dispatch"
	"github.com/reactkit/reactor/hooks"
	"github.com/reactkit/reactor/parse"
	"github.com/reactkit/reactor/prompt"
)

// DefaultMaxIterations is the iteration budget used when none is set.
const DefaultMaxIterations = 10

// MaxIterationsAnswer is the fixed final answer of a Result whose status
// is StatusMaxIterations.
const MaxIterationsAnswer = "I'm sorry, I was unable to arrive at a final " +
	"answer within the allowed number of reasoning steps. Please retry with " +
	"a simpler task or a higher iteration limit."

// formatReminder is sent as a user message when a reply contains neither
// an action nor a final answer.
const formatReminder = "Your last reply contained no <Action> and no " +
	"<FinalAnswer>. Continue using the required tags: reason inside " +
	"<Thought>...</Thought>, call a tool with <Action>{\"tool\": \"name\", " +
	"\"parameters\": {...}}</Action>, or finish with " +
	"<FinalAnswer>...</FinalAnswer>."

// Engine orchestrates reasoning calls. All collaborators and options are
// fixed at construction; a configured Engine is immutable and safe for
// concurrent Reason calls, each of which owns an independent
// ReasoningContext.
type Engine struct {
	client     reactor.ModelClient
	parser     reactor.Parser
	prompts    reactor.PromptBuilder
	dispatcher reactor.ToolDispatcher
	results    reactor.ResultBuilder
	memory     reactor.Memory
	hooks      *hooks.Registry

	maxIterations      int
	thinkingLanguage   string
	customInstructions string
	policy             reactor.ToolFailurePolicy
}

// New creates an Engine with the default collaborators: the canonical
// tagged parser, the default prompt builder, an empty dispatcher, and the
// default result builder.
func New(client reactor.ModelClient) *Engine {
	return &Engine{
		client:        client,
		parser:        parse.New(),
		prompts:       prompt.New(),
		dispatcher:    dispatch.New(),
		results:       NewResultBuilder(),
		hooks:         hooks.NewRegistry(),
		maxIterations: DefaultMaxIterations,
	}
}

// WithParser replaces the response parser. Returns the engine for
// chaining, as do all With methods.
func (e *Engine) WithParser(p reactor.Parser) *Engine {
	e.parser = p
	return e
}

// WithPromptBuilder replaces the system prompt builder.
func (e *Engine) WithPromptBuilder(b reactor.PromptBuilder) *Engine {
	e.prompts = b
	return e
}

// WithDispatcher replaces the tool dispatcher. Tools registered through
// RegisterTool before this call are discarded with the old dispatcher.
func (e *Engine) WithDispatcher(d reactor.ToolDispatcher) *Engine {
	e.dispatcher = d
	return e
}

// WithResultBuilder replaces the result builder.
func (e *Engine) WithResultBuilder(b reactor.ResultBuilder) *Engine {
	e.results = b
	return e
}

// WithMemory attaches conversation memory. Its messages are inserted
// after the system prompt and before the task; on success the task and
// final answer are appended back.
func (e *Engine) WithMemory(m reactor.Memory) *Engine {
	e.memory = m
	return e
}

// WithHooks replaces the hook registry, e.g. to share one across engines.
func (e *Engine) WithHooks(r *hooks.Registry) *Engine {
	e.hooks = r
	return e
}

// RegisterHook adds a hook to the engine's registry.
func (e *Engine) RegisterHook(hook any) *Engine {
	e.hooks.Register(hook)
	return e
}

// RegisterTool adds a tool to the default dispatcher. Panics if the
// dispatcher was replaced via WithDispatcher; register tools on the
// custom dispatcher instead.
func (e *Engine) RegisterTool(tool reactor.Tool) *Engine {
	d, ok := e.dispatcher.(*dispatch.Dispatcher)
	if !ok {
		panic("engine: RegisterTool requires the default dispatcher")
	}
	d.RegisterTool(tool)
	return e
}

// WithMaxIterations sets the iteration budget. Values below 1 are
// clamped to 1.
func (e *Engine) WithMaxIterations(n int) *Engine {
	if n < 1 {
		n = 1
	}
	e.maxIterations = n
	return e
}

// WithThinkingLanguage directs the model to reason in the given language
// inside its thought tags. Does not affect the final answer's language.
func (e *Engine) WithThinkingLanguage(lang string) *Engine {
	e.thinkingLanguage = lang
	return e
}

// WithInstructions replaces the default preamble of the system prompt.
// Instructions shape tag content only; the tag structure is fixed.
func (e *Engine) WithInstructions(instructions string) *Engine {
	e.customInstructions = instructions
	return e
}

// WithFailurePolicy sets how tool failures are handled. The default,
// FailContinue, feeds the error back as an observation.
func (e *Engine) WithFailurePolicy(policy reactor.ToolFailurePolicy) *Engine {
	e.policy = policy
	return e
}

// Reason runs the loop for one task and returns its terminal Result.
//
// The returned error is non-nil only for fatal transport failures (or
// context cancellation), propagated unchanged; every other outcome,
// including tool failures under FailAbort and an exhausted iteration
// budget, is expressed in the Result's status.
//
// sink may be nil. Events for iteration k are fully delivered before
// iteration k+1 starts.
func (e *Engine) Reason(
	ctx context.Context,
	task string,
	sink reactor.EventSink,
) (*reactor.Result, error) {
	rc := reactor.NewReasoningContext(task, e.maxIterations)
	rc.SetSink(sink)
	rc.SetThinkingLanguage(e.thinkingLanguage)

	system := e.prompts.BuildSystemPrompt(
		e.dispatcher.Tools(),
		e.maxIterations,
		e.thinkingLanguage,
		e.customInstructions,
	)
	rc.AppendMessages(reactor.SystemMessage(system))
	if e.memory != nil {
		rc.AppendMessages(e.memory.Messages()...)
	}
	rc.AppendMessages(reactor.UserMessage(task))

	e.hooks.FireBeforeReasoning(ctx, rc, reactor.BeforeReasoningEvent{Task: task})

	for rc.Iteration() < rc.MaxIterations() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := e.iterate(ctx, rc)
		if err != nil {
			return nil, err
		}
		if result != nil {
			e.hooks.FireAfterReasoning(ctx, rc, reactor.AfterReasoningEvent{Result: result})
			return result, nil
		}
	}

	rc.Emit(reactor.Event{
		Type: reactor.EventError,
		Content: fmt.Sprintf(
			"reached the maximum of %d iterations without a final answer",
			rc.MaxIterations(),
		),
	})
	result := e.results.Build(rc, MaxIterationsAnswer, reactor.StatusMaxIterations, nil)
	e.hooks.FireAfterReasoning(ctx, rc, reactor.AfterReasoningEvent{Result: result})
	return result, nil
}

// iterate runs one model-call/parse/dispatch cycle. A non-nil result
// terminates the loop; a non-nil error is a fatal transport failure.
func (e *Engine) iterate(
	ctx context.Context,
	rc *reactor.ReasoningContext,
) (*reactor.Result, error) {
	iteration := rc.StartIteration()
	iterStart := time.Now()
	e.hooks.FireBeforeIteration(ctx, rc, reactor.BeforeIterationEvent{Iteration: iteration})

	messages := rc.Messages()
	e.hooks.FireBeforeModelCall(ctx, rc, reactor.BeforeModelCallEvent{Messages: messages})
	callStart := time.Now()
	response, err := e.client.Chat(ctx, messages)
	callDuration := time.Since(callStart)
	e.hooks.FireAfterModelCall(ctx, rc, reactor.AfterModelCallEvent{
		Response: response,
		Err:      err,
		Duration: callDuration,
	})
	if err != nil {
		return nil, err
	}
	rc.RecordModelCall(response.Info)

	parsed := e.parser.Parse(response.Content)
	for _, thought := range parsed.Thoughts {
		rc.AddThought(thought)
		rc.Emit(reactor.Event{Type: reactor.EventThought, Content: thought})
	}

	defer func() {
		e.hooks.FireAfterIteration(ctx, rc, reactor.AfterIterationEvent{
			Iteration: iteration,
			Parsed:    parsed,
			Duration:  time.Since(iterStart),
		})
	}()

	// Final answer wins over any actions in the same reply; unprocessed
	// actions are discarded.
	if parsed.HasFinalAnswer() {
		rc.Emit(reactor.Event{Type: reactor.EventFinalAnswer, Content: parsed.FinalAnswer})
		e.remember(rc.Task(), parsed.FinalAnswer)
		return e.results.Build(rc, parsed.FinalAnswer, reactor.StatusSuccess, nil), nil
	}

	if len(parsed.Actions) > 0 {
		// Single action per turn; additional actions in the reply are
		// ignored.
		action := parsed.Actions[0]
		return e.dispatchAction(ctx, rc, action, response.Content)
	}

	// Neither action nor final answer: remind the model of the format
	// and keep going.
	rc.AppendMessages(
		reactor.AssistantMessage(response.Content),
		reactor.UserMessage(formatReminder),
	)
	return nil, nil
}

// dispatchAction runs one tool call and feeds its outcome back into the
// conversation. Only a FailAbort policy failure produces a terminal
// result here.
func (e *Engine) dispatchAction(
	ctx context.Context,
	rc *reactor.ReasoningContext,
	action *reactor.Action,
	rawReply string,
) (*reactor.Result, error) {
	rc.Emit(reactor.Event{Type: reactor.EventAction, Content: action.String()})
	e.hooks.FireBeforeToolCall(ctx, rc, reactor.BeforeToolCallEvent{Action: action})

	toolStart := time.Now()
	observation, err := e.dispatcher.Dispatch(ctx, action.Tool, action.Parameters)
	toolDuration := time.Since(toolStart)
	rc.RecordToolCall()
	e.hooks.FireAfterToolCall(ctx, rc, reactor.AfterToolCallEvent{
		Action:      action,
		Observation: observation,
		Err:         err,
		Duration:    toolDuration,
	})

	if err != nil {
		rc.Emit(reactor.Event{Type: reactor.EventError, Content: err.Error()})
		if e.policy == reactor.FailAbort {
			rc.RecordAction(action, err.Error())
			return e.results.Build(rc, "", reactor.StatusFailed, err), nil
		}
		// The error text becomes the observation so the model can
		// self-correct next turn.
		observation = err.Error()
	} else {
		rc.Emit(reactor.Event{Type: reactor.EventObservation, Content: observation})
	}

	rc.RecordAction(action, observation)
	rc.AppendMessages(
		reactor.AssistantMessage(rawReply),
		reactor.UserMessage("<Observation>"+observation+"</Observation>"),
	)
	return nil, nil
}

// remember writes a completed exchange back to memory, if attached.
func (e *Engine) remember(task, finalAnswer string) {
	if e.memory == nil {
		return
	}
	e.memory.Append(
		reactor.UserMessage(task),
		reactor.AssistantMessage(finalAnswer),
	)
}
