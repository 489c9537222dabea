// Command quizctl generates and grades quizzes from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/lshigami/studyquiz/cmd/quizctl/commands"
	"github.com/lshigami/studyquiz/internal/logger"
)

func main() {
	// stdout carries command output only.
	logger.Init(os.Stderr)

	if err := commands.RootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
