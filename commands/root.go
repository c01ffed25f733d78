// Package commands is the navigation surface of the terminal client. Every
// command is bound to a route, and the route guard resolves each navigation
// before the command body runs, exactly as the web client guards its
// protected views.
package commands

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chrom13/schoolmanager-web/academics"
	"github.com/chrom13/schoolmanager-web/auth"
	"github.com/chrom13/schoolmanager-web/guard"
	"github.com/chrom13/schoolmanager-web/internal/cache"
	errs "github.com/chrom13/schoolmanager-web/internal/errors"
	"github.com/chrom13/schoolmanager-web/navigation"
	"github.com/chrom13/schoolmanager-web/notify"
	"github.com/chrom13/schoolmanager-web/onboarding"
	"github.com/chrom13/schoolmanager-web/session"
	"github.com/chrom13/schoolmanager-web/students"
)

const (
	annotationRoute  = "route"
	annotationPublic = "public"
)

// App bundles the wired components the command tree works against. The
// composition root (cmd/schoolctl) builds it once at startup.
type App struct {
	Log        zerolog.Logger
	Store      *session.Store
	Nav        *navigation.Memory
	Cache      *cache.Cache
	Notifier   notify.Notifier
	Auth       *auth.Service
	Onboarding *onboarding.Machine
	Levels     *academics.Levels
	Grades     *academics.Grades
	Groups     *academics.Groups
	Subjects   *academics.Subjects
	Students   *students.Students
	Guardians  *students.Guardians
}

// Root assembles the full command tree.
func Root(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "schoolctl",
		Short:         "Administrative client for the school management platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return resolveRoute(app, cmd)
		},
	}

	root.AddCommand(
		loginCmd(app),
		logoutCmd(app),
		registerCmd(app),
		registerExpressCmd(app),
		whoamiCmd(app),
		forgotPasswordCmd(app),
		resetPasswordCmd(app),
		verifyEmailCmd(app),
		menuCmd(app),
		onboardingCmd(app),
		levelsCmd(app),
		gradesCmd(app),
		groupsCmd(app),
		subjectsCmd(app),
		studentsCmd(app),
		guardiansCmd(app),
	)
	return root
}

// resolveRoute runs the guard for the command's route before the command
// body executes. Public routes pass through untouched; protected routes
// follow the ordered authentication → verification decision. Redirects are
// surfaced as errors naming the target route.
func resolveRoute(app *App, cmd *cobra.Command) error {
	route, public := routeOf(cmd)
	if route == "" {
		return nil // help, completion, etc.
	}
	app.Nav.Go(route)
	if public {
		return nil
	}
	decision := guard.Resolve(app.Store.Get(), route)
	switch decision.Outcome {
	case guard.Allow:
		return nil
	case guard.RedirectLogin:
		app.Nav.Go(decision.Target)
		return errs.Wrapf(errs.ErrNotAuthenticated, "please run `schoolctl login` first")
	case guard.RedirectVerify:
		app.Nav.Go(decision.Target)
		return errs.Wrapf(errs.ErrEmailNotVerified, "check your inbox (route %s)", decision.Target)
	}
	return nil
}

// routeOf walks up the command chain looking for a route annotation.
func routeOf(cmd *cobra.Command) (route string, public bool) {
	for c := cmd; c != nil; c = c.Parent() {
		if r, ok := c.Annotations[annotationRoute]; ok {
			return r, c.Annotations[annotationPublic] == "true"
		}
	}
	return "", false
}

func routed(cmd *cobra.Command, route string) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationRoute] = route
	if guard.Public(route) {
		cmd.Annotations[annotationPublic] = "true"
	}
	return cmd
}

// printJSON renders a payload for the terminal.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
