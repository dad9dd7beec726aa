package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

// Run parses args and executes the selected command.
func Run(args []string) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	if parser.Active == nil {
		return fmt.Errorf("no command given")
	}

	logger := zap.NewNop()
	if options.Verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer logger.Sync()
	}

	service, err := New(options, logger, os.Stdout)
	if err != nil {
		return err
	}
	ctx := context.Background()
	switch parser.Active.Name {
	case "login":
		return service.login(ctx)
	case "logout":
		return service.logout(ctx)
	case "status":
		return service.status(ctx)
	case "ask":
		return service.ask(ctx)
	case "auth":
		return service.credentials(ctx)
	}
	return fmt.Errorf("unknown command %q", parser.Active.Name)
}
