// provider-check resolves the current provider configuration and prints
// it with secrets masked. It is a diagnostic for operators: point it at
// the same .env file, settings database, or settings YAML the application
// uses and see exactly which provider each capability would get.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/artspark/aiproviders/pkg/config"
	"github.com/artspark/aiproviders/pkg/factory"
	"github.com/artspark/aiproviders/pkg/settings"
	"github.com/artspark/aiproviders/pkg/types"
)

func main() {
	envFile := flag.String("env", "", "path to a .env file to load before resolving")
	settingsFile := flag.String("settings", "", "path to a YAML settings file to use as the settings store")
	mysqlDSN := flag.String("mysql-dsn", os.Getenv("SETTINGS_MYSQL_DSN"), "MySQL DSN for the settings table (overrides -settings)")
	debug := flag.Bool("debug", false, "log each resolution step")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			logger.Fatalf("failed to load env file %s: %v", *envFile, err)
		}
	} else {
		// Best effort; a missing .env in the working directory is fine.
		_ = godotenv.Load()
	}

	store, err := buildStore(*mysqlDSN, *settingsFile)
	if err != nil {
		logger.Fatalf("failed to build settings store: %v", err)
	}

	resolver := config.NewResolver(
		config.WithStore(store),
		config.WithLogger(logger),
		config.WithDebug(*debug),
	)
	f := factory.New(factory.WithResolver(resolver), factory.WithLogger(logger))

	exitCode := 0
	for _, kind := range []types.ProviderKind{types.KindText, types.KindImage} {
		fmt.Printf("%s:\n", kind)
		fmt.Printf("  format: %s\n", f.ProviderFormat(kind))

		providerSettings, err := resolver.ProviderConfig(kind)
		if err != nil {
			fmt.Printf("  error: %v\n", err)
			exitCode = 1
			continue
		}
		printSettings(providerSettings)
	}
	os.Exit(exitCode)
}

// buildStore selects a settings store: database when a DSN is given, YAML
// file when configured, otherwise none (environment and defaults only).
func buildStore(mysqlDSN, settingsFile string) (settings.Store, error) {
	if mysqlDSN != "" {
		db, err := settings.OpenDB(mysqlDSN)
		if err != nil {
			return nil, err
		}
		return settings.NewDBStore(db)
	}
	if settingsFile != "" {
		return settings.LoadFile(settingsFile)
	}
	return nil, nil
}

func printSettings(s *types.ProviderSettings) {
	switch s.Format {
	case types.FormatVertex:
		fmt.Printf("  project_id: %s\n", s.ProjectID)
		fmt.Printf("  location: %s\n", s.Location)
	default:
		fmt.Printf("  api_key: %s\n", maskKey(s.APIKey))
		if s.APIBase != "" {
			fmt.Printf("  api_base: %s\n", s.APIBase)
		}
	}
}

func maskKey(key string) string {
	if key == "" {
		return "<unset>"
	}
	if len(key) <= 8 {
		return "***"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
