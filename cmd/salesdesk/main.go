package main

import (
	"fmt"
	"os"
	_ "salesdesk/docs"
	"salesdesk/internal/adapter/http/routes"
	repository2 "salesdesk/internal/adapter/persistence/repository"
	"salesdesk/internal/infrastructure/database"
	"salesdesk/internal/infrastructure/seed"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Seed flags
	seedValue int64
	seedYear  int

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "salesdesk",
	Short: "SalesDesk - sales administration API",
	Long: `SalesDesk is the backend for the internal sales administration panel.

It serves customers, the service catalog and engagements over a REST API
backed by DynamoDB, plus the dashboard aggregates the panel charts read.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the REST API on PORT (default 8080), ensuring the DynamoDB
tables exist first. Expects AWS credentials and DYNAMODB_ENDPOINT in the
environment or a .env file.`,
	RunE: runServe,
}

// seedCmd loads the demo dataset
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with a deterministic demo dataset",
	Long: `Wipes the store and loads one calendar year of demo data: the service
catalog, the customer portfolio and month-by-month engagements shaped for
the dashboard charts. The same --seed always produces the same dataset.`,
	RunE: runSeed,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Seed flags
	seedCmd.Flags().Int64Var(&seedValue, "seed", 42, "RNG seed for the demo data plan")
	seedCmd.Flags().IntVar(&seedYear, "year", 2026, "Calendar year the demo data covers")

	// Add commands to root
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

// @title           SalesDesk API
// @version         1.0
// @description     Sales administration panel (customers, services, engagements) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runServe wires the router and blocks serving HTTP
func runServe(cmd *cobra.Command, args []string) error {
	return routes.Run(cmd.Context(), logger)
}

// runSeed replaces the store contents with the generated plan
func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ddb, err := database.NewClientFromEnv(ctx)
	if err != nil {
		return err
	}
	if err := database.EnsureTables(ctx, ddb, logger); err != nil {
		return err
	}

	seeder := seed.NewSeeder(
		repository2.NewCustomerDynamoRepository(ddb),
		repository2.NewProductDynamoRepository(ddb),
		repository2.NewOrderDynamoRepository(ddb),
		logger,
	)
	summary, err := seeder.Run(ctx, seedValue, seedYear)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d customers, %d products, %d orders (%d items)\n",
		summary.Customers, summary.Products, summary.Orders, summary.Items)
	return nil
}
