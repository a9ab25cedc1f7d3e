package main

import (
	"fmt"
	"net"
	"os"
	"os/user"

	"github.com/folio-tools/folio-api/pkg/server"
	"github.com/folio-tools/folio-api/pkg/services/config"
	"github.com/folio-tools/folio-api/pkg/services/library"
	"github.com/folio-tools/folio-api/pkg/services/project"
	"github.com/folio-tools/folio-api/pkg/services/receipt"
	"github.com/folio-tools/folio-api/pkg/services/screentime"
	"github.com/folio-tools/folio-api/pkg/services/suggestion"
	"github.com/folio-tools/folio-api/pkg/store/appstore"
	"github.com/folio-tools/folio-api/pkg/store/ocr"
	"github.com/folio-tools/folio-api/pkg/store/resend"
	"github.com/folio-tools/folio-api/pkg/store/sanity"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the folio web server",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.foliocfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the .foliocfg file (default is $HOME/.foliocfg)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}

	storeCfg, err := registry.ContentStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to load content store config: %w", err)
	}
	emailCfg, err := registry.Email(ctx)
	if err != nil {
		return fmt.Errorf("failed to load email config: %w", err)
	}

	// Secrets from the environment take precedence over the profile file.
	if token := os.Getenv("SANITY_WRITE_TOKEN"); token != "" {
		storeCfg.Token = token
	}
	if key := os.Getenv("RESEND_API_KEY"); key != "" {
		emailCfg.APIKey = key
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	profiles, _ := registry.GetProfiles(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Name: `%s`, Type: `%s`", profile.Name, profile.Type)
	}

	readCfg := storeCfg
	readCfg.Token = ""
	readStore := sanity.NewClient(readCfg)
	writeStore := sanity.NewClient(storeCfg)

	mailer := resend.NewClient(emailCfg.APIKey)
	icons := appstore.NewClient()

	var engine screentime.Engine
	if ocrURL := os.Getenv("OCR_URL"); ocrURL != "" {
		engine = ocr.NewClient(ocrURL)
	} else {
		logger.Warn().Msg("OCR_URL not set, screenshot uploads disabled")
	}

	parser := screentime.NewParser(screentime.WithIconResolver(icons))
	pipeline := screentime.NewPipeline(engine, parser)

	generator := receipt.NewGenerator()
	if path := os.Getenv("ROSTER_FILE"); path != "" {
		roster, err := receipt.LoadRoster(path)
		if err != nil {
			return fmt.Errorf("failed to load roster file: %w", err)
		}
		logger.Info().Msgf("Roster loaded from `%s`.", path)
		generator = receipt.NewGenerator(receipt.WithRoster(roster))
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Generator:   generator,
			Pipeline:    pipeline,
			Books:       library.NewExplorer(readStore),
			Projects:    project.NewExplorer(readStore),
			Suggestions: suggestion.NewController(writeStore, mailer, emailCfg),
			Logger:      logger,
		},
	})

	return api.Start()
}
