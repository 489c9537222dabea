package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lshigami/studyquiz/internal/service"
	"github.com/spf13/cobra"
)

// GradeCommand returns the grade command
func GradeCommand() *cobra.Command {
	var report bool

	cmd := &cobra.Command{
		Use:   "grade <session-file>",
		Short: "Grade a quiz session",
		Long: `Grade a quiz session file containing "questions" and "userAnswers".

Prints the graded summary as JSON, or the plain-text results report with --report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := LoadSession(args[0])
			if err != nil {
				return err
			}

			summary, err := service.NewGradingService().Grade(session.Questions, session.UserAnswers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report {
				_, err = fmt.Fprint(out, service.NewReportService().RenderText(session.Questions, summary, time.Now()))
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}

	cmd.Flags().BoolVar(&report, "report", false, "Print the plain-text results report instead of JSON")

	return cmd
}
