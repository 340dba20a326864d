package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/perfcompare/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI analyst" }
func (*assistCmd) Usage() string {
	return `perf assist [<question>...]

  Starts an interactive session with an analyst that computes its answers
  from the dataset, and a researcher that looks up the market history.
  The question, if any, is asked first. Requires $GEMINI_API_KEY.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	d, opts, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	logger := newLogger()
	defer logger.Sync()

	var cfg *genai.ClientConfig
	if config.GeminiAPIKey != "" {
		cfg = &genai.ClientConfig{APIKey: config.GeminiAPIKey, Backend: genai.BackendGeminiAPI}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, logger, agent.NewAnalyst(d, opts), agent.NewResearcher())
	a.Format = renderMarkdown

	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
