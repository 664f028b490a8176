package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/mdouchement/todoapp/internal/database"
	"github.com/mdouchement/todoapp/internal/repository"
	"github.com/mdouchement/todoapp/internal/server"
	"github.com/muesli/coral"
	"github.com/pkg/errors"
)

const dbname = "todoapp.db"

// maxPortAttempts bounds the auto-increment when the configured port is bound.
const maxPortAttempts = 10

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	cfg string
)

func main() {
	c := &coral.Command{
		Use:     "todoapp",
		Short:   "Todo list REST server",
		Version: fmt.Sprintf("%s - build %.7s @ %s - %s", version, revision, date, runtime.Version()),
		Args:    coral.ExactArgs(0),
	}
	initCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(initCmd)

	reindexCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(reindexCmd)

	serverCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(serverCmd)

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func dbnameWithPath(path string) string {
	if len(path) == 0 {
		return dbname
	}
	return filepath.Join(path, dbname)
}

// konfiguration loads defaults, then the optional YAML file, then the
// TODOAPP_* environment variables (highest precedence).
func konfiguration() (*koanf.Koanf, error) {
	konf := koanf.New(".")

	err := konf.Load(confmap.Provider(map[string]any{
		"database_path":   "",
		"port":            5000,
		"environment":     "development",
		"frontend_origin": "http://localhost:5173",
	}, "."), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load default configuration")
	}

	if cfg != "" {
		if err := konf.Load(file.Provider(cfg), yaml.Parser()); err != nil {
			return nil, errors.Wrap(err, "could not load configuration file")
		}
	}

	err = konf.Load(env.Provider("TODOAPP_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TODOAPP_"))
	}), nil)
	return konf, errors.Wrap(err, "could not load environment configuration")
}

var (
	initCmd = &coral.Command{
		Use:   "init",
		Short: "Init the database",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, err := konfiguration()
			if err != nil {
				return err
			}

			return database.StormInit(dbnameWithPath(konf.String("database_path")))
		},
	}

	//
	//
	reindexCmd = &coral.Command{
		Use:   "reindex",
		Short: "Reindex the database",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, err := konfiguration()
			if err != nil {
				return err
			}

			return database.StormReIndex(dbnameWithPath(konf.String("database_path")))
		},
	}

	//
	//
	serverCmd = &coral.Command{
		Use:   "server",
		Short: "Start server",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf, err := konfiguration()
			if err != nil {
				return err
			}

			ctrl := server.Controller{
				Version:        version,
				Environment:    konf.String("environment"),
				FrontendOrigin: konf.String("frontend_origin"),
			}

			db, err := database.StormOpen(dbnameWithPath(konf.String("database_path")))
			if err != nil {
				log.Printf("Database connection error: %v", err)
				log.Println("Server will continue without database connection, serving demo data.")
				ctrl.Repository = repository.NewDemo()
			} else {
				defer db.Close()
				ctrl.Database = db
				ctrl.Repository = repository.NewStorm(db)
			}

			engine := server.EchoEngine(ctrl)
			server.PrintRoutes(engine)

			listener, port, err := listen(konf.Int("port"))
			if err != nil {
				return err
			}
			log.Printf("Server running in %s mode on port %d\n", ctrl.Environment, port)

			go func() {
				err := engine.Server.Serve(listener)
				if err != nil && err != http.ErrServerClosed {
					log.Fatalf("%+v", errors.Wrap(err, "could not run server"))
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			sig := <-quit
			log.Printf("%s received, shutting down gracefully\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return errors.Wrap(engine.Shutdown(ctx), "could not shutdown server")
		},
	}
)

// listen binds the given port, moving to the next one when it is already in use.
func listen(port int) (net.Listener, int, error) {
	for attempt := 0; attempt < maxPortAttempts; attempt++ {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port+attempt))
		if err == nil {
			return listener, port + attempt, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, 0, errors.Wrapf(err, "could not bind port %d", port+attempt)
		}
		if attempt < maxPortAttempts-1 {
			log.Printf("Port %d is in use. Trying port %d...\n", port+attempt, port+attempt+1)
		}
	}
	return nil, 0, errors.Errorf("could not bind a port in range %d-%d", port, port+maxPortAttempts-1)
}
