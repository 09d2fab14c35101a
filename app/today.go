package app

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	assignmentctl "github.com/mcap-hotel/staffdesk/internal/db/controller/assignment"
	"github.com/mcap-hotel/staffdesk/internal/db/models"
)

func init() { //nolint: gochecknoinits
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Show assignments for a specific date (YYYY-MM-DD)")
	todayCmd.Flags().StringVar(&todayFunction, "function", "", "Filter by a specific function key")

	employeeCmd.AddCommand(todayCmd)
}

var (
	todayDate     string
	todayFunction string

	todayCmd = &cobra.Command{
		Use:   "today",
		Short: "Show the function assignments for today (or a specific date)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}

			return runToday(db, cmd.OutOrStdout(), todayDate, todayFunction)
		},
	}
)

func runToday(db *gorm.DB, out io.Writer, dateFlag, functionFlag string) error {
	date := models.Today()

	if dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", dateFlag)
		if err != nil {
			return fmt.Errorf("invalid --date %q: use YYYY-MM-DD", dateFlag)
		}

		date = models.DateOnly(parsed)
	}

	function := models.FunctionKey(functionFlag)
	if functionFlag != "" && !function.Valid() {
		return fmt.Errorf("invalid --function %q", functionFlag)
	}

	fmt.Fprintf(out, "Asignaciones para: %s\n", date.Format("Monday, 02/01/2006"))
	fmt.Fprintln(out)

	rows, err := assignmentctl.ListForDate(db, date, function)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, "No hay asignaciones para esta fecha.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Empleado\tFunción\tHorario\tNotas")

	for i := range rows {
		a := &rows[i]

		schedule := "No especificado"
		if a.StartTime != nil && a.EndTime != nil {
			schedule = *a.StartTime + " - " + *a.EndTime
		}

		notes := "-"
		if a.Notes != nil {
			notes = truncate(*a.Notes, 30) //nolint:mnd
		}

		name := ""
		if a.User != nil {
			name = a.User.Name
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, a.DisplayName, schedule, notes)
	}

	_ = w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Total: %d asignación(es)\n", len(rows))

	return nil
}

// truncate limits s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max]) + "..."
}
