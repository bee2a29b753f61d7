package utils

import (
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"golang.org/x/term"
)

const promptMarker = "> "

// PromptMarker returns the marker printed before reading the next question.
// It's colored only when stdout is a terminal and NO_COLOR is unset.
func PromptMarker() string {
	if misc.Truthy(os.Getenv("NO_COLOR")) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return promptMarker
	}
	return ancli.ColoredMessage(ancli.CYAN, promptMarker)
}
