package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/zwrk/workout-api/internal/config"
	"github.com/zwrk/workout-api/internal/database"
	"github.com/zwrk/workout-api/internal/database/users"
	"github.com/zwrk/workout-api/internal/entities"
)

// CreateUserCommand registers a user directly in the database, without a
// running server.
type CreateUserCommand struct {
	FirstName    string `validate:"required"`
	LastName     string `validate:"required"`
	Email        string `validate:"required,email"`
	DatabasePath string `validate:"required"`

	out io.Writer
}

func NewCreateUserCommand() *CreateUserCommand {
	return &CreateUserCommand{out: os.Stdout}
}

func (cmd *CreateUserCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)

	fs.StringVar(&cmd.FirstName, "first", "", "First name (required)")
	fs.StringVar(&cmd.LastName, "last", "", "Last name (required)")
	fs.StringVar(&cmd.Email, "email", "", "Email address, must be unique (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the SQLite database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-user -first <name> -last <name> -email <email> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create a user in a local SQLite database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.FirstName = strings.TrimSpace(cmd.FirstName)
	cmd.LastName = strings.TrimSpace(cmd.LastName)
	cmd.Email = strings.TrimSpace(cmd.Email)

	if err := validator.New().Struct(cmd); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("invalid flag for %s: %s", strings.ToLower(fieldErrs[0].Field()), fieldErrs[0].Tag())
		}
		return err
	}

	return nil
}

func (cmd *CreateUserCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	user := &entities.User{FirstName: cmd.FirstName, LastName: cmd.LastName, Email: cmd.Email}
	if err := users.NewRepository(db.DB).Create(context.Background(), user); err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "Created user %d: %s %s <%s>\n", user.ID, user.FirstName, user.LastName, user.Email)
	return nil
}
