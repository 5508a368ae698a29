package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhoffm/limerickbox/account"
	"github.com/mhoffm/limerickbox/api"
	"github.com/mhoffm/limerickbox/config"
	"github.com/mhoffm/limerickbox/database"
	"github.com/mhoffm/limerickbox/storage"
	"github.com/mhoffm/limerickbox/uploads"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the limerickbox server",
	Long:  `Start the limerickbox server and serve the registration, profile, upload and download pages.`,
	Example: `limerickbox serve --config config.yml
limerickbox serve -c /path/to/config.yml --log-level debug
`,
	Run: serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if rootCmdPersistentFlags.LogLevel != "" {
		setLogLevel(rootCmdPersistentFlags.LogLevel)
	} else {
		setLogLevel(cfg.LogLevel)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close() //nolint: errcheck

	files, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to initialize upload storage: %v", err)
	}

	server, err := api.New(cfg, account.New(db), uploads.New(db, files))
	if err != nil {
		log.Fatalf("failed to create API server: %v", err)
	}

	// Start the API server in a goroutine
	go func() {
		log.Info("starting API server", "listen", cfg.Listen)
		if err := server.Run(); err != nil {
			log.Error("API server error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.Info("limerickbox started successfully")
	<-c
	log.Info("shutting down gracefully...")
}

// openDatabase opens the sqlite database under the data dir and brings
// the schema up to date.
func openDatabase(cfg *config.Config) (*database.SQLiteDB, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}

	db, err := database.NewSQLiteDB(filepath.Join(cfg.DataDir, "limerickbox.db"))
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close() //nolint: errcheck
		return nil, err
	}

	return db, nil
}
