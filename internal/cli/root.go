// Package cli provides the aiarch-console command tree.
package cli

import (
	"fmt"

	"ai-architect-console/internal/backend"
	"ai-architect-console/internal/config"
	"ai-architect-console/internal/logging"
	"ai-architect-console/internal/media"
	"ai-architect-console/internal/pages"
	"ai-architect-console/internal/supabase"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

type globalFlags struct {
	port       string
	apiBaseURL string
}

// app is everything a command needs, built once from configuration.
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	client   *backend.Client
	resolver media.Resolver
	locale   pages.Locale
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the web console.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "aiarch-console",
		Short: "AI Architect web console",
		Long: `aiarch-console serves the AI Architect web console: projects and the
AI image creations attached to them, backed by the AI Architect REST API.

Run 'aiarch-console serve' (the default) to start the server, or use the
'projects' and 'creations' commands to query the backend directly.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}

	root.PersistentFlags().StringVarP(&flags.port, "port", "p", "", "Port to listen on (overrides PORT)")
	root.PersistentFlags().StringVar(&flags.apiBaseURL, "api-base-url", "", "Backend base URL (overrides API_BASE_URL)")

	root.AddCommand(newServeCommand(flags))
	root.AddCommand(newProjectsCommand(flags))
	root.AddCommand(newCreationsCommand(flags))
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func newApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	cfg, err := config.Load(config.WithAPIBaseURL(flags.apiBaseURL), config.WithPort(flags.port))
	if err != nil {
		return nil, err
	}

	logger := logging.Init(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Output: cmd.ErrOrStderr(),
		Pretty: !cfg.IsProduction(),
	})

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	client := backend.NewClient(cfg.APIBaseURL,
		backend.WithTimeout(cfg.APITimeout),
		backend.WithLogger(logger),
	)

	var resolver media.Resolver = media.NewBackendResolver(client.BaseURL(), client)
	if cfg.UsesMediaStorage() {
		storageClient, err := supabase.NewStorageClient(cfg.MediaStorageURL, cfg.MediaStorageKey, cfg.MediaStorageBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize media storage: %w", err)
		}
		resolver = media.NewStorageResolver(storageClient)
		logger.Info().Str("bucket", storageClient.Bucket()).Msg("serving generated images from storage")
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		client:   client,
		resolver: resolver,
		locale:   pages.Locale{Location: loc},
	}, nil
}
