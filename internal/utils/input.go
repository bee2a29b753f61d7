package utils

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
)

// EqualFold reports if a and b are equal under unicode case folding.
func EqualFold(a, b string) bool {
	// Casers keep state, so one per call
	folder := cases.Fold()
	return folder.String(a) == folder.String(b)
}

// IsQuitter reports if the input line should end an interactive session:
// blank lines and exactly 'quit', in any casing. Surrounding whitespace makes
// it a regular line.
func IsQuitter(line string) bool {
	line = strings.TrimRight(line, "\r\n")
	return strings.TrimSpace(line) == "" || EqualFold(line, "quit")
}

// ReadUserInput reads one line from r. Returns ErrUserInitiatedExit if the line
// is a quitter, if r is exhausted or if ctx is cancelled while waiting.
func ReadUserInput(ctx context.Context, r *bufio.Reader) (string, error) {
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		userInput, err := r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && userInput != "") {
			errChan <- err
			return
		}
		inputChan <- userInput
	}()

	select {
	case <-ctx.Done():
		return "", ErrUserInitiatedExit
	case err := <-errChan:
		if errors.Is(err, io.EOF) {
			return "", ErrUserInitiatedExit
		}
		return "", fmt.Errorf("failed to read user input: %w", err)
	case userInput := <-inputChan:
		if IsQuitter(userInput) {
			return "", ErrUserInitiatedExit
		}
		return strings.TrimRight(userInput, "\r\n"), nil
	}
}
