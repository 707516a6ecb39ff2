// Package main provides an interactive CLI for exercising the reasoning
// loop against a live model with the arithmetic fixture tools.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/reactkit/reactor"
	"github.com/reactkit/reactor/engine"
	"github.com/reactkit/reactor/integrationtest/arith"
	"github.com/reactkit/reactor/memory"
	"github.com/reactkit/reactor/models"
)

// ANSI color codes
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorBold    = "\033[1m"
	colorDim     = "\033[2m"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n",
			colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run() error {
	apiKey := os.Getenv("REACTOR_TEST_OPENAI_KEY")
	if apiKey == "" {
		return fmt.Errorf(
			"REACTOR_TEST_OPENAI_KEY environment variable is not set")
	}

	llm, err := openai.New(openai.WithToken(apiKey))
	if err != nil {
		return fmt.Errorf("failed to create model: %w", err)
	}

	client := models.NewLangChain(llm).
		WithModelName("gpt-4o-mini")

	eng := engine.New(client).
		WithMemory(memory.NewBuffer()).
		WithMaxIterations(8)
	for _, tool := range arith.Tools() {
		eng.RegisterTool(tool)
	}

	rl, err := readline.New(
		colorCyan + colorBold + "You: " + colorReset)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	fmt.Printf("%s%sReactor CLI%s\n",
		colorBold, colorYellow, colorReset)
	fmt.Printf("%s%s%s\n",
		colorYellow,
		strings.Repeat("=", 11),
		colorReset)
	fmt.Printf(
		"%sAsk a question the calculator or uppercase tool can help "+
			"with. Type 'exit' to quit.%s\n\n",
		colorDim, colorReset)

	for {
		input, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Printf("\n%sGoodbye!%s\n",
					colorGreen, colorReset)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" || input == "q" {
			fmt.Printf("%sGoodbye!%s\n",
				colorGreen, colorReset)
			return nil
		}

		ctx, cancel := context.WithCancel(context.Background())

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigCh
			fmt.Printf(
				"\n%sReceived interrupt, cancelling...%s\n",
				colorYellow, colorReset)
			cancel()
		}()

		result, err := eng.Reason(ctx, input, printEvent)

		signal.Stop(sigCh)
		cancel()

		if err != nil {
			fmt.Fprintf(os.Stderr,
				"%sError: %v%s\n",
				colorRed, err, colorReset)
			continue
		}

		printResult(result)
	}
}

// printEvent renders each reasoning event as a colored line.
func printEvent(event reactor.Event) {
	switch event.Type {
	case reactor.EventThought:
		fmt.Printf("%s[Thought] %s%s\n",
			colorDim, event.Content, colorReset)
	case reactor.EventAction:
		fmt.Printf("%s[Action] %s%s\n",
			colorBlue, event.Content, colorReset)
	case reactor.EventObservation:
		fmt.Printf("%s[Observation] %s%s\n",
			colorMagenta, event.Content, colorReset)
	case reactor.EventFinalAnswer:
		// Printed by printResult; skip the duplicate.
	case reactor.EventError:
		fmt.Printf("%s[Error] %s%s\n",
			colorRed, event.Content, colorReset)
	}
}

func printResult(result *reactor.Result) {
	fmt.Println()
	switch result.Status {
	case reactor.StatusSuccess:
		fmt.Printf("%s%sAgent: %s%s\n",
			colorBold, colorGreen,
			result.FinalAnswer, colorReset)
	case reactor.StatusMaxIterations:
		fmt.Printf("%s%s%s\n",
			colorYellow, result.FinalAnswer, colorReset)
	default:
		fmt.Printf("%sFailed: %v%s\n",
			colorRed, result.Err, colorReset)
	}

	fmt.Printf(
		"%s[Stats: %d model calls, %d tool calls, %d tokens, %s]%s\n\n",
		colorDim,
		result.Stats.ModelCalls,
		result.Stats.ToolCalls,
		result.Stats.TotalTokens,
		result.ExecutionTime.Round(time.Millisecond),
		colorReset)
}
