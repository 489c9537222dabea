package commands

import "github.com/spf13/cobra"

// RootCommand returns the quizctl root command with all subcommands attached.
// Errors are returned to the caller, which prints them once.
func RootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quizctl",
		Short: "Generate and grade study quizzes",
		Long: `quizctl turns study material into a quiz and grades quiz sessions.

Available commands:
  generate  - Generate a quiz from a study material file
  grade     - Grade a quiz session file (JSON or YAML)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(GenerateCommand())
	rootCmd.AddCommand(GradeCommand())

	return rootCmd
}
