// Package cli implements tripctl, the operator command line for the trip
// store: schema migration plus inspection and seeding of users, itineraries
// and itinerary places.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/planmytrip/tripstore/internal/app"
	"github.com/planmytrip/tripstore/internal/config"
	"github.com/planmytrip/tripstore/internal/models"
)

// Store is the part of the trip store the commands drive.
type Store interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUserByUsername(ctx context.Context, userName string) ([]*models.User, error)
	AddUser(ctx context.Context, user *models.User) (bool, error)
	AddItinerary(ctx context.Context, userID int64, itinerary *models.Itinerary) (int64, error)
	GetUserItineraries(ctx context.Context, userID int64) ([]*models.UserItinerary, error)
	GetUserItineraryByID(ctx context.Context, userID, itineraryID int64) (*models.UserItinerary, error)
	AddItineraryEntry(ctx context.Context, userID, itineraryID int64, place *models.Place) (int64, error)
	RemoveItineraryEntryByGoogleID(ctx context.Context, userID, itineraryID int64, googleID string) (bool, error)
	ReplaceItineraryEntryWithGoogleID(ctx context.Context, userID, itineraryID int64, googleID string, replacement *models.Place) (bool, error)
}

type session struct {
	store   Store
	migrate func(ctx context.Context) error
	close   func() error
}

// options holds the persistent flags. Non-empty values override the loaded
// configuration.
type options struct {
	configPath string
	dsn        string
	logLevel   string
	logBackend string
}

func (o *options) apply(c *config.Config) {
	if o.dsn != "" {
		c.DatabaseDSN = o.dsn
	}
	if o.logLevel != "" {
		c.LogLevel = o.logLevel
	}
	if o.logBackend != "" {
		c.LogBackend = o.logBackend
	}
}

// Seams for tests.
var (
	newApp      = app.NewApp
	openSession = defaultOpenSession
)

// defaultOpenSession validates only once flags have been applied, so a flag
// can correct a bad value from the file or environment.
func defaultOpenSession(ctx context.Context, o *options, logOut io.Writer) (*session, error) {
	cfg, err := config.Read(o.configPath)
	if err != nil {
		return nil, err
	}
	o.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a, err := newApp(ctx, cfg, logOut)
	if err != nil {
		return nil, err
	}
	return &session{store: a.Trips(), migrate: a.Migrate, close: a.Close}, nil
}

// Execute runs tripctl with os.Args and exits non-zero on failure. SIGINT,
// SIGTERM and SIGQUIT cancel the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:          "tripctl",
		Short:        "Operate the PlanMyTrip trip store",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&o.configPath, "config", "c", "", "JSON config file (optional)")
	cmd.PersistentFlags().StringVar(&o.dsn, "dsn", "", "PostgreSQL DSN (overrides config)")
	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&o.logBackend, "log-backend", "", "slog or zerolog")

	cmd.AddCommand(migrateCmd(o), usersCmd(o), itinerariesCmd(o), entriesCmd(o))
	return cmd
}

// withSession opens a session for cmd, runs fn and closes the session.
func withSession(cmd *cobra.Command, o *options, fn func(ctx context.Context, s *session) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := openSession(ctx, o, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(ctx, s)
}

func migrateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, o, func(ctx context.Context, s *session) error {
				if err := s.migrate(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			})
		},
	}
}
