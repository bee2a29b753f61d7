package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/go_away_boilerplate/pkg/shutdown"
	"github.com/baalimago/gptc/internal/credentials"
	"github.com/baalimago/gptc/internal/models"
	"github.com/baalimago/gptc/internal/session"
	"github.com/baalimago/gptc/internal/utils"
	"github.com/baalimago/gptc/internal/vendors/openai"
)

const usage = `gptc - ask chatgpt from the terminal

Prerequisites:
  - Set the OPENAI_API_KEY environment variable, or
  - put OPENAI_API_KEY=<key> in %v, or
  - write the key to %v
  - (Optional) Set OPENAI_BASE_URL to use another API compatible server
  - (Optional) Set the NO_COLOR environment variable to disable ansi color output

Usage: gptc [flags] <question>

Flags:
  --model=<id>, -m=<id>        Set the chat model to use. (default %v)
  --interactive, -i            Keep asking follow up questions until an empty line or 'quit'.

Commands:
  list                         List the available models.

Examples:
  - gptc What is the capital of France?
  - gptc -m=gpt-4 -i Let us talk about go
  - gptc list
`

const missingKeyMsg = "Missing OpenAPI key. Set the %v environment variable or create a file named %v in your Documents folder (%v)."

// newChatService is swapped in tests
var newChatService = func(apiKey string) (models.ChatService, error) {
	return openai.New(apiKey)
}

func main() {
	ancli.SetupSlog()
	ctx, cancel := context.WithCancel(context.Background())
	go func() { shutdown.Monitor(cancel) }()
	status := run(ctx, os.Args[1:], os.Stdin)
	cancel()
	os.Exit(status)
}

func run(ctx context.Context, args []string, stdin io.Reader) int {
	apiKey, err := credentials.Resolve()
	if err != nil {
		if errors.Is(err, credentials.ErrMissingKey) {
			fmt.Printf(missingKeyMsg+"\n", credentials.APIKeyEnv, credentials.APIKeyFile, keyFilePath())
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to resolve api key: %v\n", err))
		return 1
	}

	fs := parseArgs(args)
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("flags: %+v\n", fs))
	}
	service, err := newChatService(apiKey)
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to setup: %v\n", err))
		return 1
	}
	switch fs.command {
	case cmdMissingQuery:
		fmt.Println("Missing query.")
		printUsage(os.Stderr)
		return 0
	case cmdList:
		err = listModels(ctx, service)
	default:
		err = session.New(service, os.Stdout, stdin).RunSession(ctx, fs.question, fs.sessionConfig())
	}
	if err != nil {
		if errors.Is(err, utils.ErrUserInitiatedExit) || errors.Is(err, context.Canceled) {
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to run: %v\n", err))
		return 1
	}
	return 0
}

func listModels(ctx context.Context, service models.ChatService) error {
	ids, err := service.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func printUsage(w io.Writer) {
	envFile := ".env"
	if configDir, err := utils.GetConfigDir(); err == nil {
		envFile = filepath.Join(configDir, envFile)
	}
	fmt.Fprintf(w, usage, envFile, keyFilePath(), openai.DefaultModel)
}

// keyFilePath to show the user, falling back to the bare file name when the
// documents dir can't be found.
func keyFilePath() string {
	p, err := credentials.KeyFilePath()
	if err != nil || p == "" {
		return credentials.APIKeyFile
	}
	return p
}
