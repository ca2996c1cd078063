package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/zjrosen/signup/internal/infrastructure/sqlite"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/ui/styles"
)

const detailColumnWidth = 48

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent registration attempts",
	Long: `Print the most recent registration attempts from the local journal,
newest first. Passwords are never stored.

Examples:
  signup history
  signup history --limit 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := historyPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No registration attempts recorded.")
			return nil
		}

		db, err := sqlite.NewDB(path)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		return printHistory(cmd.Context(), cmd.OutOrStdout(), db.AttemptRepository(), historyLimit)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", sqlite.DefaultListLimit,
		"number of attempts to show")
	rootCmd.AddCommand(historyCmd)
}

// printHistory renders the newest attempts as a table followed by a
// per-status summary.
func printHistory(ctx context.Context, w io.Writer, repo *sqlite.AttemptRepository, limit int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	attempts, err := repo.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		_, err := fmt.Fprintln(w, "No registration attempts recorded.")
		return err
	}

	counts, err := repo.CountByStatus(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		rows = append(rows, []string{
			a.FinishedAt.Local().Format(time.DateTime),
			a.Email,
			string(a.Status),
			statusCode(a.StatusCode),
			a.Elapsed().Round(time.Millisecond).String(),
			styles.Truncate(a.Detail, detailColumnWidth),
		})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)).
		Headers("FINISHED", "EMAIL", "STATUS", "HTTP", "ELAPSED", "DETAIL").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == 2 {
				return cell.Foreground(statusColor(attempts[row].Status))
			}
			return cell
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "succeeded %d  rejected %d  unavailable %d  cancelled %d\n",
		counts[registration.StatusSucceeded], counts[registration.StatusRejected],
		counts[registration.StatusUnavailable], counts[registration.StatusCancelled])
	return err
}

func statusCode(code int) string {
	if code == 0 {
		return "-"
	}
	return strconv.Itoa(code)
}

func statusColor(s registration.AttemptStatus) lipgloss.TerminalColor {
	switch s {
	case registration.StatusSucceeded:
		return styles.StatusSuccessColor
	case registration.StatusRejected:
		return styles.StatusErrorColor
	case registration.StatusUnavailable:
		return styles.StatusWarningColor
	default:
		return styles.TextMutedColor
	}
}
