package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrom13/schoolmanager-web/api"
	"github.com/chrom13/schoolmanager-web/onboarding"
)

func onboardingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboarding",
		Short: "Guided first-run setup for a newly registered school",
	}
	routed(cmd, "/onboarding/bienvenida")

	cmd.AddCommand(
		onboardingStatusCmd(app),
		onboardingStartCmd(app),
		onboardingSchoolDataCmd(app),
		onboardingStructureCmd(app),
		onboardingFinishCmd(app),
		onboardingSkipCmd(app),
	)
	return cmd
}

func onboardingStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show onboarding progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Onboarding.Status(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(status)
		},
	}
	return routed(cmd, "/onboarding/bienvenida")
}

func onboardingStartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Begin setup (welcome → school data)",
		RunE: func(cmd *cobra.Command, args []string) error {
			next := app.Onboarding.Start()
			app.Nav.Go(next)
			fmt.Printf("Continue with `schoolctl onboarding school-data` (%s)\n", next)
			return nil
		},
	}
	return routed(cmd, "/onboarding/bienvenida")
}

func onboardingSchoolDataCmd(app *App) *cobra.Command {
	var data onboarding.SchoolData
	cmd := &cobra.Command{
		Use:   "school-data",
		Short: "Submit the school details (step 1)",
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := app.Onboarding.CompleteSchoolData(cmd.Context(), data)
			if err != nil {
				if apiErr, ok := api.AsError(err); ok && len(apiErr.Fields) > 0 {
					for field, msgs := range apiErr.Fields {
						for _, msg := range msgs {
							fmt.Printf("  %s: %s\n", field, msg)
						}
					}
				}
				return err
			}
			app.Nav.Go(next)
			fmt.Printf("School data saved, next step: %s\n", next)
			return nil
		},
	}
	cmd.Flags().StringVar(&data.CCT, "cct", "", "CCT identifier")
	cmd.Flags().StringVar(&data.EmailEscuela, "school-email", "", "school contact email")
	cmd.Flags().StringVar(&data.RFC, "rfc", "", "tax id")
	cmd.Flags().StringVar(&data.Telefono, "phone", "", "contact phone")
	cmd.Flags().StringVar(&data.CodigoPostal, "postal-code", "", "postal code")
	return routed(cmd, "/onboarding/paso-1")
}

func onboardingStructureCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "structure",
		Short: "Confirm the academic structure (step 2)",
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := app.Onboarding.CompleteStructure(cmd.Context())
			if err != nil {
				return err
			}
			app.Nav.Go(next)
			fmt.Printf("Structure confirmed, next step: %s\n", next)
			return nil
		},
	}
	return routed(cmd, "/onboarding/paso-2")
}

func onboardingFinishCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Mark onboarding completed and go to the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			next := app.Onboarding.Finish(cmd.Context())
			app.Nav.Go(next)
			fmt.Println("Welcome to your dashboard")
			return nil
		},
	}
	return routed(cmd, "/onboarding/completado")
}

func onboardingSkipCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skip",
		Short: "Defer the remaining setup steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := app.Onboarding.Skip(cmd.Context())
			if err != nil {
				return err
			}
			app.Nav.Go(next)
			fmt.Println("Onboarding skipped, you can finish it later from settings")
			return nil
		},
	}
	return routed(cmd, "/onboarding/bienvenida")
}
