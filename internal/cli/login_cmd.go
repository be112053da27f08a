package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Validar credenciales de acceso",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" && interactive(app) {
				if err := promptCredentials(&email, &password); err != nil {
					return err
				}
			}
			if err := app.Auth.Login(context.Background(), email, password); err != nil {
				return err
			}
			fmt.Printf("Sesión iniciada como %s\n", app.Auth.CurrentUser().Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Correo electrónico")
	cmd.Flags().StringVar(&password, "password", "", "Contraseña")

	return cmd
}
