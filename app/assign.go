package app

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	assignmentctl "github.com/mcap-hotel/staffdesk/internal/db/controller/assignment"
	userctl "github.com/mcap-hotel/staffdesk/internal/db/controller/user"
	"github.com/mcap-hotel/staffdesk/internal/db/models"
)

func init() { //nolint: gochecknoinits
	assignCmd.Flags().StringVar(&assignDate, "date", "", "Assignment date (YYYY-MM-DD)")
	assignCmd.Flags().StringVar(&assignStart, "start", "", "Start time (HH:MM)")
	assignCmd.Flags().StringVar(&assignEnd, "end", "", "End time (HH:MM)")
	assignCmd.Flags().StringVar(&assignNotes, "notes", "", "Additional notes")
	assignCmd.Flags().BoolVar(&assignYes, "yes", false, "Replace an existing active assignment without asking")

	employeeCmd.AddCommand(assignCmd)
}

var (
	assignDate  string
	assignStart string
	assignEnd   string
	assignNotes string
	assignYes   bool

	assignCmd = &cobra.Command{
		Use:   "assign [user] [function]",
		Short: "Assign a function to an employee for a shift",
		Long: `Assign a function to an employee for a specific shift.
The employee may be given by numeric id or email; both the employee and the
function are asked for interactively when missing.`,
		Args: cobra.MaximumNArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}

			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

			return runAssign(db, p, cmd.OutOrStdout(), args, assignOptions{
				date:  assignDate,
				start: assignStart,
				end:   assignEnd,
				notes: assignNotes,
				yes:   assignYes,
			})
		},
	}
)

type assignOptions struct {
	date  string
	start string
	end   string
	notes string
	yes   bool
}

func runAssign(db *gorm.DB, p *prompter, out io.Writer, args []string, opts assignOptions) error {
	fmt.Fprintln(out, "Asignación de Funciones a Empleados")
	fmt.Fprintln(out)

	employee, err := resolveEmployee(db, p, args)
	if err != nil {
		return err
	}

	function := resolveFunction(p, args)
	date := resolveDate(p, out, opts.date)

	start := opts.start
	if start == "" {
		start = p.ask("Hora de inicio (opcional, formato HH:MM)", "08:00")
	}

	end := opts.end
	if end == "" {
		end = p.ask("Hora de fin (opcional, formato HH:MM)", "16:00")
	}

	notes := opts.notes
	if notes == "" {
		notes = p.ask("Notas adicionales (opcional)", "")
	}

	// Conflict probe: at most one active assignment per employee and day.
	existing, err := assignmentctl.FindActive(db, employee.ID, date)
	if err != nil && !errors.Is(err, assignmentctl.ErrAssignmentNotFound) {
		return err
	}

	if existing != nil {
		question := fmt.Sprintf(
			"%s ya tiene asignada '%s' para %s. ¿Desactivar y crear nueva?",
			employee.Name, existing.DisplayName, date.Format("02/01/2006"),
		)

		if !opts.yes && !p.confirm(question) {
			fmt.Fprintln(out, "Operación cancelada.")
			return nil
		}
	}

	input := assignmentctl.CreateInput{
		UserID:      employee.ID,
		Function:    function,
		DisplayName: function.DisplayName(),
		Date:        date,
		StartTime:   optionalString(start),
		EndTime:     optionalString(end),
		Notes:       optionalString(notes),
	}

	created, err := assignmentctl.ReplaceActive(db, input)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Asignación creada exitosamente:")
	printAssignmentSummary(out, employee, created)

	return nil
}

// resolveEmployee finds the employee from the positional argument, falling
// back to an interactive picker over all empleado users.
func resolveEmployee(db *gorm.DB, p *prompter, args []string) (*models.User, error) {
	if len(args) > 0 && args[0] != "" {
		u, err := userctl.FindByIDOrEmail(db, args[0])
		if err == nil && u.IsEmployee() {
			return u, nil
		}

		if err != nil && !errors.Is(err, userctl.ErrUserNotFound) {
			return nil, err
		}
	}

	employees, err := userctl.Employees(db)
	if err != nil {
		return nil, err
	}

	if len(employees) == 0 {
		return nil, errors.New("no hay empleados registrados")
	}

	choices := make([]string, len(employees))
	for i, e := range employees {
		choices[i] = fmt.Sprintf("%s <%s>", e.Name, e.Email)
	}

	picked := p.choose("Selecciona un empleado:", choices)

	return &employees[picked], nil
}

// resolveFunction takes the function key argument when valid, otherwise asks.
func resolveFunction(p *prompter, args []string) models.FunctionKey {
	if len(args) > 1 {
		f := models.FunctionKey(args[1])
		if f.Valid() {
			return f
		}
	}

	functions := models.Functions()

	choices := make([]string, len(functions))
	for i, f := range functions {
		choices[i] = fmt.Sprintf("%s (%s)", f.DisplayName(), f)
	}

	picked := p.choose("¿Qué función deseas asignar?", choices)

	return functions[picked]
}

// resolveDate parses the --date flag or walks the interactive today /
// tomorrow / custom choice. Unparseable custom input warns and falls back to
// today; the command never fails on a bad date.
func resolveDate(p *prompter, out io.Writer, flag string) time.Time {
	if flag != "" {
		if d, ok := parseDateInput(flag); ok {
			return d
		}

		fmt.Fprintln(out, "Fecha inválida. Usando hoy.")

		return models.Today()
	}

	today := models.Today()
	tomorrow := today.AddDate(0, 0, 1)

	options := []string{
		"Hoy (" + today.Format("02/01/2006") + ")",
		"Mañana (" + tomorrow.Format("02/01/2006") + ")",
		"Fecha personalizada",
	}

	switch p.choose("¿Para qué fecha?", options) {
	case 1:
		return tomorrow
	case 2: //nolint:mnd
		answer := p.ask("Ingresa la fecha (formato: YYYY-MM-DD o DD/MM/YYYY)", "")
		if d, ok := parseDateInput(answer); ok {
			return d
		}

		fmt.Fprintln(out, "Fecha inválida. Usando hoy.")

		return today
	default:
		return today
	}
}

// parseDateInput accepts YYYY-MM-DD or DD/MM/YYYY.
func parseDateInput(v string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if d, err := time.Parse(layout, v); err == nil {
			return models.DateOnly(d), true
		}
	}

	return time.Time{}, false
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}

	return &v
}

func printAssignmentSummary(out io.Writer, employee *models.User, a *models.Assignment) {
	schedule := "No especificado"
	if a.StartTime != nil && a.EndTime != nil {
		schedule = *a.StartTime + " - " + *a.EndTime
	}

	notes := "Sin notas"
	if a.Notes != nil {
		notes = *a.Notes
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Campo\tValor")
	fmt.Fprintf(w, "Empleado\t%s\n", employee.Name)
	fmt.Fprintf(w, "Función\t%s\n", a.DisplayName)
	fmt.Fprintf(w, "Fecha\t%s\n", a.Date.Format("02/01/2006"))
	fmt.Fprintf(w, "Horario\t%s\n", schedule)
	fmt.Fprintf(w, "Notas\t%s\n", notes)
	_ = w.Flush()
}
