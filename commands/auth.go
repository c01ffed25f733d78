package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrom13/schoolmanager-web/auth"
	"github.com/chrom13/schoolmanager-web/guard"
)

func loginCmd(app *App) *cobra.Command {
	var creds auth.Credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.Login(cmd.Context(), creds)
			if err != nil {
				return err
			}
			fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Role)
			if !user.Verified() {
				fmt.Println("Your email address is not verified yet; most sections stay locked until it is.")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&creds.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return routed(cmd, guard.RouteLogin)
}

func logoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Auth.Logout(cmd.Context())
			app.Cache.Clear()
			fmt.Println("Signed out")
			return nil
		},
	}
	// Routed at the verify-pending screen so an unverified user can still
	// sign out, as the web client allows from that screen.
	return routed(cmd, guard.RouteVerifyPending)
}

func registerCmd(app *App) *cobra.Command {
	var data auth.RegisterData
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a school with full details",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.Register(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Printf("School %q registered, signed in as %s\n", user.School.Name, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&data.NombreEscuela, "school-name", "", "school name")
	cmd.Flags().StringVar(&data.Slug, "slug", "", "school slug")
	cmd.Flags().StringVar(&data.CCT, "cct", "", "CCT identifier")
	cmd.Flags().StringVar(&data.RFC, "rfc", "", "tax id")
	cmd.Flags().StringVar(&data.EmailEscuela, "school-email", "", "school contact email")
	cmd.Flags().StringVar(&data.Nombre, "name", "", "director name")
	cmd.Flags().StringVarP(&data.Email, "email", "e", "", "director email")
	cmd.Flags().StringVarP(&data.Password, "password", "p", "", "password")
	cmd.Flags().StringVar(&data.PasswordConfirmation, "password-confirmation", "", "password confirmation")
	return routed(cmd, guard.RouteRegister)
}

func registerExpressCmd(app *App) *cobra.Command {
	var data auth.RegisterExpressData
	cmd := &cobra.Command{
		Use:   "register-express",
		Short: "Quick signup with school name and credentials only",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Auth.RegisterExpress(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Printf("School %q created\n", result.School.Name)
			if result.OnboardingRequired {
				fmt.Println("Continue with `schoolctl onboarding start` to finish setup.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&data.NombreEscuela, "school-name", "", "school name")
	cmd.Flags().StringVar(&data.Nombre, "name", "", "your name (optional)")
	cmd.Flags().StringVarP(&data.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&data.Password, "password", "p", "", "password")
	cmd.Flags().StringVar(&data.PasswordConfirmation, "password-confirmation", "", "password confirmation")
	return routed(cmd, "/register-express")
}

func whoamiCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current profile, refreshed from the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.Me(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}
	// Also reachable while unverified: refreshing the profile is how the
	// client notices that verification has lifted the gate.
	return routed(cmd, guard.RouteVerifyPending)
}

func forgotPasswordCmd(app *App) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset link",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := app.Auth.ForgotPassword(cmd.Context(), email)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	_ = cmd.MarkFlagRequired("email")
	return routed(cmd, "/forgot-password")
}

func resetPasswordCmd(app *App) *cobra.Command {
	var data auth.ResetData
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password using the emailed token",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := app.Auth.ResetPassword(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&data.Email, "email", "e", "", "account email")
	cmd.Flags().StringVar(&data.Token, "token", "", "reset token from the email")
	cmd.Flags().StringVarP(&data.Password, "password", "p", "", "new password")
	cmd.Flags().StringVar(&data.PasswordConfirmation, "password-confirmation", "", "password confirmation")
	return routed(cmd, "/reset-password")
}

func verifyEmailCmd(app *App) *cobra.Command {
	var (
		id   int
		hash string
	)
	cmd := &cobra.Command{
		Use:   "verify-email",
		Short: "Confirm an email address from the signed link parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := app.Auth.VerifyEmail(cmd.Context(), id, hash)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "user id from the link")
	cmd.Flags().StringVar(&hash, "hash", "", "signature hash from the link")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("hash")
	return routed(cmd, "/verify-email")
}

func menuCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "List the sections visible to the current role",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Store.Get()
			for _, section := range guard.Visible(s.User.Role, guard.Sections()) {
				fmt.Printf("%-16s %s\n", section.Title, section.Path)
			}
			return nil
		},
	}
	return routed(cmd, guard.RouteDashboard)
}
