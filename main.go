package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/unicsmcr/hs_activities/environment"
)

func newRootCommand() *cobra.Command {
	var port, apiURL string

	cmd := &cobra.Command{
		Use:   "hs_activities",
		Short: "Serves the activity sign-up page backed by the activities API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyFlags(port, apiURL); err != nil {
				return err
			}

			server, err := InitializeServer()
			if err != nil {
				return errors.Wrap(err, "could not create server")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", fmt.Sprintf("port to serve the page on, overrides %s", environment.Port))
	cmd.Flags().StringVar(&apiURL, "api-url", "", fmt.Sprintf("base url of the activities API, overrides %s", environment.APIURL))

	return cmd
}

// applyFlags exports non-empty flag values so they take precedence over the environment
func applyFlags(port, apiURL string) error {
	overrides := map[string]string{
		environment.Port:   port,
		environment.APIURL: apiURL,
	}
	for name, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(name, value); err != nil {
			return errors.Wrapf(err, "could not set %s", name)
		}
	}
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(fmt.Sprintf("server stopped: %s", err))
	}
}
