package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"techblog/internal/handlers"
	"techblog/internal/logger"
	"techblog/internal/markdown"
	"techblog/internal/repository"
	"techblog/internal/repository/db"
	"techblog/internal/server"
	"techblog/internal/service"
)

func main() {
	// load config.yml first so the log level is configurable
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log_level"))

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, sessionConfig())
	apiHandler := handlers.NewHandler(services, markdown.New(), log)

	router := apiHandler.InitRoutes(handlers.RouterConfig{
		TemplateGlob: viper.GetString("templates.glob"),
		FlashSecret:  []byte(viper.GetString("flash.secret")),
	})

	// start HTTP server
	srv := &server.Server{}
	go func() {
		port := viper.GetString("port")
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, router); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetDefault("templates.glob", "web/templates/*.html")
	viper.SetDefault("session.ttl_minutes", 30)
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "techblog.db")
		dbPath = "techblog.db"
	}
	return db.InitDB(dbPath)
}

func sessionConfig() service.SessionConfig {
	return service.SessionConfig{
		SigningKey: viper.GetString("session.signing_key"),
		TTL:        time.Duration(viper.GetInt("session.ttl_minutes")) * time.Minute,
	}
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
