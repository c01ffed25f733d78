package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/common-nighthawk/go-figure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/chrom13/schoolmanager-web/academics"
	"github.com/chrom13/schoolmanager-web/api"
	"github.com/chrom13/schoolmanager-web/auth"
	"github.com/chrom13/schoolmanager-web/commands"
	"github.com/chrom13/schoolmanager-web/guard"
	"github.com/chrom13/schoolmanager-web/internal/cache"
	"github.com/chrom13/schoolmanager-web/internal/config"
	errs "github.com/chrom13/schoolmanager-web/internal/errors"
	"github.com/chrom13/schoolmanager-web/internal/resource"
	"github.com/chrom13/schoolmanager-web/navigation"
	"github.com/chrom13/schoolmanager-web/notify"
	"github.com/chrom13/schoolmanager-web/onboarding"
	"github.com/chrom13/schoolmanager-web/session"
	"github.com/chrom13/schoolmanager-web/session/filestore"
	"github.com/chrom13/schoolmanager-web/session/sqlitestore"
	"github.com/chrom13/schoolmanager-web/students"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n%s\n", r, debug.Stack())
			returnError = errors.New("panic recovered")
		}
	}()

	cfg := config.New()
	logger := newLogger(cfg)

	repo, closeRepo, err := newSessionRepo(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	store := session.NewStore(repo, logger)
	if err := store.Hydrate(); err != nil {
		return errors.Wrap(err, "hydrating session")
	}

	nav := navigation.NewMemory(guard.RouteDashboard)
	gate := api.NewGate(func() {
		store.Logout()
		nav.Go(guard.RouteLogin)
	})
	// Every fresh login re-arms the one-shot invalidation reaction.
	store.Subscribe(func(s session.Session) {
		if s.Authenticated() {
			gate.Arm()
		}
	})

	client := api.NewClient(cfg, logger,
		api.WithTokenProvider(store),
		api.WithAuthFailureHook(nav, gate.Fire),
	)

	notifier := notify.NewConsole(logger)
	deps := resource.Deps{Client: client, Cache: cache.New(), Notifier: notifier}
	if err := deps.Validate(); err != nil {
		return err
	}

	authSvc, err := auth.NewService(client, store, logger)
	if err != nil {
		return err
	}
	machine, err := onboarding.NewMachine(client, notifier, logger)
	if err != nil {
		return err
	}

	app := &commands.App{
		Log:        logger,
		Store:      store,
		Nav:        nav,
		Cache:      deps.Cache,
		Notifier:   notifier,
		Auth:       authSvc,
		Onboarding: machine,
		Levels:     academics.NewLevels(deps),
		Grades:     academics.NewGrades(deps),
		Groups:     academics.NewGroups(deps),
		Subjects:   academics.NewSubjects(deps),
		Students:   students.NewStudents(deps),
		Guardians:  students.NewGuardians(deps),
	}

	root := commands.Root(app)
	if len(os.Args) <= 1 {
		displayAppName(cfg.GetAppName())
	}
	return root.Execute()
}

func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func newSessionRepo(cfg config.StorageConfig) (session.Repo, func(), error) {
	switch cfg.GetStorageBackend() {
	case "sqlite":
		repo, err := sqlitestore.New(cfg.GetStoragePath())
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	case "file", "":
		repo, err := filestore.New(cfg.GetStoragePath())
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	default:
		return nil, nil, errs.Wrapf(errs.ErrUnsupported, "storage backend %q", cfg.GetStorageBackend())
	}
}

func displayAppName(name string) {
	banner := figure.NewFigure(name, "", true)
	banner.Print()
}
