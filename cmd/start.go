package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"altered-knowledge/core/loader"
	"altered-knowledge/core/logger"
	"altered-knowledge/core/middleware/auth"
	"altered-knowledge/core/middleware/rayid"
	"altered-knowledge/core/session"

	"altered-knowledge/feature/catalog"
	"altered-knowledge/feature/collection"
	"altered-knowledge/feature/deck"
	"altered-knowledge/feature/history"
	"altered-knowledge/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "altered-knowledge/docs/swagger"
)

// @title Altered Knowledge API
// @version 1.0
// @description Collection reconciliation and deck validation for Altered.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the knowledge server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		env, err := setup()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		cfg, logg := env.cfg, env.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Database is optional; without it history is off and the server check reports 503.
		db := env.connectDB()

		var (
			runs     *history.Store
			recorder deck.Recorder
		)
		if db != nil && cfg.History.Enabled {
			runs = history.NewStore(db, cfg.History.Limit)
			if err := runs.Migrate(); err != nil {
				logg.Fatal("Failed to migrate history tables", zap.Error(err))
			}
			recorder = runs
			logg.Info("Validation history enabled")
		}

		sessions := session.NewStore(cfg.Data.CacheTTL(), openSession(env.client, cfg.Storage.Bucket, cfg.Data, logg))
		defer sessions.Close()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		mgr := loader.NewManager(logg)
		player := cfg.Data.Player
		bucket := cfg.Storage.Bucket

		mgr.Register(collection.NewFeature(sessions, player, logg))
		mgr.Register(deck.NewFeature(sessions, env.client, bucket, cfg.Data, logg, recorder))
		mgr.Register(catalog.NewFeature(sessions, player, logg))
		mgr.Register(integrity.NewFeature(env.client, bucket, logg, db, cfg.Data))
		mgr.Register(history.NewFeature(runs, player, logg))

		// RayID first so every log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("player", player),
				zap.Strings("features", mgr.Names()))
			if err := app.Listen(cfg.Server.ListenAddr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
