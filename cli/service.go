package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	ciris "github.com/cirisai/ciris-go"
	"github.com/cirisai/ciris-go/client"
	"github.com/cirisai/ciris-go/client/auth/store"
)

// Service executes CLI commands against one agent.
type Service struct {
	options *Options
	client  *client.Client
	store   store.Store
	logger  *zap.Logger
	output  io.Writer
}

// New creates a Service from parsed options.
func New(options *Options, logger *zap.Logger, output io.Writer) (*Service, error) {
	clientOptions := &ciris.ClientOptions{
		BaseURL: options.URL,
		Auth:    &ciris.ClientAuth{StoreLocation: options.Store},
		Logger:  logger,
	}
	aClient, err := ciris.NewClient(clientOptions)
	if err != nil {
		return nil, err
	}
	return &Service{
		options: options,
		client:  aClient,
		store:   aClient.Store(),
		logger:  logger,
		output:  output,
	}, nil
}

func (s *Service) login(ctx context.Context) error {
	resp, err := s.client.Auth.Login(ctx, s.options.Login.Username, s.options.Login.Password)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.output, "logged in as %s (%s)\n", s.options.Login.Username, resp.Role)
	return nil
}

func (s *Service) logout(ctx context.Context) error {
	if err := s.client.Auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintf(s.output, "logged out of %s\n", s.client.BaseURL())
	return nil
}

func (s *Service) status(ctx context.Context) error {
	status, err := s.client.Agent.Status(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.output, "agent:     %s (%s)\n", status.Name, status.AgentID)
	fmt.Fprintf(s.output, "state:     %s\n", status.CognitiveState)
	fmt.Fprintf(s.output, "uptime:    %.0fs\n", status.UptimeSeconds)
	fmt.Fprintf(s.output, "messages:  %d\n", status.MessagesProcessed)
	if status.CurrentTask != "" {
		fmt.Fprintf(s.output, "task:      %s\n", status.CurrentTask)
	}
	return nil
}

func (s *Service) ask(ctx context.Context) error {
	answer, err := s.client.Agent.Ask(ctx, s.options.Ask.Args.Message)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.output, answer)
	return nil
}

func (s *Service) credentials(ctx context.Context) error {
	cmd := &s.options.Credentials
	switch {
	case cmd.APIKey != "":
		if err := s.store.StoreAPIKey(s.options.URL, cmd.APIKey); err != nil {
			return err
		}
		fmt.Fprintf(s.output, "stored api key for %s\n", s.options.URL)
		return nil
	case cmd.ClearAll:
		if err := s.store.ClearAll(); err != nil {
			return err
		}
		fmt.Fprintln(s.output, "cleared all credentials")
		return nil
	case cmd.Clear:
		if err := s.store.Clear(s.options.URL); err != nil {
			return err
		}
		fmt.Fprintf(s.output, "cleared credentials for %s\n", s.options.URL)
		return nil
	default:
		return s.listCredentials()
	}
}

func (s *Service) listCredentials() error {
	entries, err := s.store.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(s.output, "no stored credentials")
		return nil
	}
	urls := make([]string, 0, len(entries))
	for url := range entries {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	for _, url := range urls {
		entry := entries[url]
		line := url + ":"
		if entry.HasAPIKey {
			line += " api-key"
		}
		if entry.HasToken {
			line += " token"
			if entry.TokenExpired != nil && *entry.TokenExpired {
				line += " (expired)"
			}
		}
		fmt.Fprintln(s.output, line)
	}
	return nil
}
