package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathquest/app/internal/models"
)

func newLoginCmd(e *env) *cobra.Command {
	var form models.LoginForm
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.controller()
			if err != nil {
				return err
			}
			if err := c.Login(cmd.Context(), form); err != nil {
				return userError(err)
			}
			p, _ := c.Profile()
			fmt.Fprintln(e.out, okStyle.Render("Bem-vindo, "+p.Username+"!"))
			renderLevel(e.out, levelOf(c))
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	return cmd
}

func newRegisterCmd(e *env) *cobra.Command {
	var form models.RegisterForm
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.controller()
			if err != nil {
				return err
			}
			if form.ConfirmPassword == "" {
				form.ConfirmPassword = form.Password
			}
			if err := c.Register(cmd.Context(), form); err != nil {
				return userError(err)
			}
			fmt.Fprintln(e.out, okStyle.Render("Conta criada. Bons estudos, "+form.Username+"!"))
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Username, "username", "", "player name")
	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm-password", "", "password confirmation (defaults to --password)")
	return cmd
}

func newLogoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.client().Logout(); err != nil {
				return err
			}
			fmt.Fprintln(e.out, mutedStyle.Render("Sessão encerrada."))
			return nil
		},
	}
}
