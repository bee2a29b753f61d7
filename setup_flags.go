package main

import (
	"strings"

	"github.com/baalimago/gptc/internal/session"
	"github.com/baalimago/gptc/internal/utils"
	"github.com/baalimago/gptc/internal/vendors/openai"
)

type command int

const (
	cmdQuery command = iota
	cmdList
	cmdMissingQuery
)

var (
	modelPrefixes     = []string{"--model=", "-m="}
	interactiveFlags  = []string{"--interactive", "-i"}
	listCommand       = "list"
	questionSeparator = " "
)

type flagSet struct {
	command     command
	chatModel   string
	interactive bool
	question    string
}

// parseArgs into a flagSet. Flags may appear anywhere among the tokens, and
// every token which isn't a flag becomes part of the question, each followed
// by a single space.
func parseArgs(args []string) flagSet {
	if len(args) == 0 {
		return flagSet{command: cmdMissingQuery}
	}
	if len(args) == 1 && utils.EqualFold(args[0], listCommand) {
		return flagSet{command: cmdList}
	}

	fs := flagSet{
		command:   cmdQuery,
		chatModel: openai.DefaultModel,
	}
	var question strings.Builder
	for _, arg := range args {
		if model, ok := modelFlag(arg); ok {
			fs.chatModel = model
			continue
		}
		if isInteractiveFlag(arg) {
			fs.interactive = true
			continue
		}
		question.WriteString(arg)
		question.WriteString(questionSeparator)
	}
	if fs.chatModel == "" {
		fs.chatModel = openai.DefaultModel
	}
	fs.question = question.String()
	return fs
}

func (fs flagSet) sessionConfig() session.Config {
	return session.Config{
		Model:       fs.chatModel,
		Interactive: fs.interactive,
	}
}

func modelFlag(arg string) (string, bool) {
	for _, prefix := range modelPrefixes {
		if model, found := strings.CutPrefix(arg, prefix); found {
			return model, true
		}
	}
	return "", false
}

func isInteractiveFlag(arg string) bool {
	for _, f := range interactiveFlags {
		if utils.EqualFold(arg, f) {
			return true
		}
	}
	return false
}
