package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	Facilitator *Expert
	Experts     []*Expert
	// Format turns the markdown answers into printable text.
	Format func(markdown string) string
	Logger *zap.Logger
}

// New creates a new Agent.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), an
// io.Reader for user input (e.g., os.Stdin) and the experts the facilitator
// can ask.
func New(w io.Writer, r io.Reader, logger *zap.Logger, experts ...*Expert) *Agent {
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, e := range experts {
		e.Logger = logger
	}
	facilitator := newFacilitator(experts...)
	facilitator.Logger = logger
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: facilitator,
		Format:      func(s string) string { return s },
		Logger:      logger,
	}
}

// Start creates the chats of every expert.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return fmt.Errorf("cannot start expert %s: %w", e.Name, err)
		}
	}
	if err := a.Facilitator.Start(ctx, client); err != nil {
		return fmt.Errorf("cannot start facilitator: %w", err)
	}
	return nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent.
// prompts are asked first, before reading the user input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the perf analyst. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		switch strings.TrimSpace(input) {
		case "":
			continue
		case "bye":
			return nil
		}

		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// the session survives a failed question
			a.Logger.Warn("question failed", zap.Error(err))
			fmt.Fprintln(a.w, "Sorry, something went wrong, please ask again.")
			continue
		}
		fmt.Fprintln(a.w, a.Format(text(content)))
	}
}
