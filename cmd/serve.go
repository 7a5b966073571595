package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/neo/passmeter_backend/internal/logging"
	"github.com/neo/passmeter_backend/internal/server"
	"github.com/spf13/cobra"
)

var port int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PassMeter server",
	Long: `Start the PassMeter server with the specified configuration.
This will expose the password scoring and generation API over HTTP and
open the live-scoring WebSocket endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load environment variables
		if err := godotenv.Load(); err != nil {
			fmt.Println("Warning: .env file not found, using environment defaults")
		}

		// Set up logging
		logLevel := logging.INFO
		if os.Getenv("APP_ENV") == "development" {
			logLevel = logging.DEBUG
		}
		if err := logging.InitDefaultLogger(logging.Config{
			Level:       logLevel,
			Prefix:      "PassMeter",
			Colored:     true,
			LogToFile:   os.Getenv("LOG_FILE") != "",
			LogFilePath: os.Getenv("LOG_FILE"),
		}); err != nil {
			return fmt.Errorf("failed to initialize logger: %v", err)
		}

		config := server.DefaultConfig()
		config.Port = strconv.Itoa(port)
		if origin := os.Getenv("ALLOWED_ORIGIN"); origin != "" {
			config.AllowedOrigin = origin
		}

		srv := server.NewServer(config)

		// Set up signal handling
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		// Start server in a goroutine
		errChan := make(chan error, 1)
		go func() {
			addr := fmt.Sprintf(":%s", config.Port)
			logging.Info("Starting HTTP server", map[string]interface{}{"addr": addr})
			if err := srv.Run(addr); err != nil {
				errChan <- fmt.Errorf("server error: %v", err)
			}
		}()

		// Wait for either server error or shutdown signal
		select {
		case err := <-errChan:
			return err
		case sig := <-sigChan:
			logging.Info("Shutting down", map[string]interface{}{"signal": sig.String()})

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown error: %v", err)
			}
			logging.Info("Shutdown completed gracefully")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 3000, "Port to run the server on")
}
