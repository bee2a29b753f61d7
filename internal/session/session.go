// Package session runs a conversation with a chat model, either as a single
// question or as an interactive back and forth on the terminal.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/gptc/internal/models"
	"github.com/baalimago/gptc/internal/utils"
)

type Config struct {
	Model       string
	Interactive bool
}

type Runner struct {
	service models.ChatService
	chat    models.Chat
	out     io.Writer
	in      *bufio.Reader
	debug   bool
}

// New runner which prints to out and reads follow up questions from in.
func New(service models.ChatService, out io.Writer, in io.Reader) *Runner {
	return &Runner{
		service: service,
		chat:    models.NewChat(models.DefaultSystemPrompt),
		out:     out,
		in:      bufio.NewReader(in),
		debug:   misc.Truthy(os.Getenv("DEBUG")),
	}
}

// Transcript returns a copy of the conversation so far.
func (r *Runner) Transcript() models.Chat {
	return r.chat.Copy()
}

// RunOnce sends the transcript to the model, echoing each fragment as it
// arrives. The full answer is appended to the transcript as an assistant
// message and returned. The question is expected to already be appended.
func (r *Runner) RunOnce(ctx context.Context, conf Config) (string, error) {
	completionsChan, err := r.service.StreamCompletions(ctx, conf.Model, r.chat.Copy())
	if err != nil {
		return "", fmt.Errorf("failed to stream completions: %w", err)
	}

	var fullMsg strings.Builder
	for completion := range completionsChan {
		switch cast := completion.(type) {
		case string:
			fullMsg.WriteString(cast)
			fmt.Fprint(r.out, cast)
		case error:
			return "", fmt.Errorf("completion stream error: %w", cast)
		case models.NoopEvent, models.StopEvent:
		default:
			return "", fmt.Errorf("unknown completion type: %v", completion)
		}
	}

	answer := fullMsg.String()
	r.chat.Append(models.RoleAssistant, answer)
	if r.debug {
		ancli.PrintOK(fmt.Sprintf("messages in chat: %v\n", len(r.chat.Messages)))
	}
	return answer, nil
}

// RunSession asks question, then keeps asking follow up questions read from
// input while conf.Interactive is set. Quitting, an empty line or end of input
// ends the session without error.
func (r *Runner) RunSession(ctx context.Context, question string, conf Config) error {
	for {
		r.chat.Append(models.RoleUser, question)
		if _, err := r.RunOnce(ctx, conf); err != nil {
			return err
		}
		fmt.Fprintln(r.out)
		if !conf.Interactive {
			return nil
		}

		fmt.Fprint(r.out, utils.PromptMarker())
		next, err := utils.ReadUserInput(ctx, r.in)
		if err != nil {
			if errors.Is(err, utils.ErrUserInitiatedExit) {
				return nil
			}
			return err
		}
		question = next
	}
}
