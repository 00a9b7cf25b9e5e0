package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/jonathan/skillmatch/internal/attempts"
	"github.com/jonathan/skillmatch/internal/config"
	"github.com/jonathan/skillmatch/internal/observability"
	"github.com/jonathan/skillmatch/internal/schemas"
)

// loadCLIConfig loads the config file when one was given, otherwise returns
// an empty config so flag defaults apply.
func loadCLIConfig() (*config.Config, error) {
	if configPath == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Verbose {
		verbose = true
	}
	return cfg, nil
}

// newCLILogger builds the process logger honoring the verbose flag
func newCLILogger() (*zap.Logger, error) {
	return observability.NewLogger(false, verbose)
}

// openRepository opens the attempt log backend selected by the config:
// Postgres when database_url is set, MongoDB when mongo_url is set.
// The returned closer releases the backend's resources.
func openRepository(ctx context.Context, cfg *config.Config) (attempts.Repository, func(), error) {
	switch {
	case cfg.DatabaseURL != "":
		repo, err := attempts.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	case cfg.MongoURL != "":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
		}
		repo := attempts.NewMongoRepository(client.Database("skillmatch"))
		closer := func() { _ = client.Disconnect(context.Background()) }
		return repo, closer, nil
	default:
		return nil, nil, fmt.Errorf("no attempt log backend configured: set 'database_url' or 'mongo_url' in the config file")
	}
}

// writeJSONOutput marshals a document to an output file, creating parent
// directories as needed. When schemaName is non-empty the written file is
// checked against the schema; validation problems are warnings, not failures.
func writeJSONOutput(outPath string, document any, schemaName string) error {
	jsonOutput, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}

	if schemaName != "" {
		if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaName)); schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, outPath); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: output validation failed: %v\n", err)
			}
		}
	}

	return nil
}
