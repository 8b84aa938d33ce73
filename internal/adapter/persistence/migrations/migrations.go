package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
)

//go:embed *.sql
var FS embed.FS

// ErrNoCommand is returned by Run when Command selects no action.
var ErrNoCommand = errors.New("no migration command given")

// Command selects one migration action. When several are set the first of
// Version, Force, Up, Down, Steps wins.
type Command struct {
	Up      bool
	Down    bool
	Version bool
	Steps   int
	Force   *int
}

type migrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Version() (uint, bool, error)
	Force(version int) error
}

// New returns a migrator over the embedded SQL files. The caller closes it.
func New(dsn string) (*migrate.Migrate, error) {
	source, err := iofs.New(FS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}

// Up applies every pending migration.
func Up(dsn string) error {
	_, err := Run(dsn, Command{Up: true})
	return err
}

// Run executes cmd against the database at dsn and returns a one-line summary.
func Run(dsn string, cmd Command) (string, error) {
	m, err := New(dsn)
	if err != nil {
		return "", err
	}
	defer m.Close()
	return run(m, cmd)
}

func run(m migrator, cmd Command) (string, error) {
	switch {
	case cmd.Version:
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return "no migrations applied", nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to get version: %w", err)
		}
		return fmt.Sprintf("version: %d, dirty: %v", v, dirty), nil
	case cmd.Force != nil:
		if err := m.Force(*cmd.Force); err != nil {
			return "", fmt.Errorf("failed to force version: %w", err)
		}
		return fmt.Sprintf("forced to version %d", *cmd.Force), nil
	case cmd.Up:
		if err := ignoreNoChange(m.Up()); err != nil {
			return "", fmt.Errorf("failed to run up migrations: %w", err)
		}
		return "migrations applied", nil
	case cmd.Down:
		if err := ignoreNoChange(m.Down()); err != nil {
			return "", fmt.Errorf("failed to run down migrations: %w", err)
		}
		return "migrations reverted", nil
	case cmd.Steps != 0:
		if err := ignoreNoChange(m.Steps(cmd.Steps)); err != nil {
			return "", fmt.Errorf("failed to run %d migration steps: %w", cmd.Steps, err)
		}
		return fmt.Sprintf("applied %d migration steps", cmd.Steps), nil
	default:
		return "", ErrNoCommand
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
