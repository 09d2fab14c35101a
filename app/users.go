package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	userctl "github.com/mcap-hotel/staffdesk/internal/db/controller/user"
)

func init() { //nolint: gochecknoinits
	usersCmd.AddCommand(usersListCmd)
	rootCmd.AddCommand(usersCmd)
}

var (
	usersCmd = &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	usersListCmd = &cobra.Command{
		Use:   "list",
		Short: "List all users with their assigned roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}

			return runUsersList(db, cmd.OutOrStdout())
		},
	}
)

func runUsersList(db *gorm.DB, out io.Writer) error {
	users, err := userctl.ListWithRoles(db)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Fprintln(out, "No hay usuarios en el sistema.")
		return nil
	}

	fmt.Fprintln(out, "=== Usuarios en el Sistema ===")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNombre\tEmail\tRol\tEs Admin\tCreado")

	for i := range users {
		u := &users[i]

		roleName := "Sin rol"
		if u.Role != nil {
			roleName = u.Role.DisplayName
		}

		isAdmin := "✗"
		if u.IsAdmin() {
			isAdmin = "✓"
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Name, u.Email, roleName, isAdmin, u.CreatedAt.Format("2006-01-02 15:04"))
	}

	_ = w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Total de usuarios: %d\n", len(users))

	return nil
}
