package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/app"
	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/config"
	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/console"
	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/db"
	"github.com/123GuruSharan/Airport-Lost-or-Found-Tracker/routes"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	cliApp := &cli.App{
		Name:  "tracker",
		Usage: "Airport lost & found tracker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML config file (values fill unset env vars)",
				Value:   "tracker.toml",
				EnvVars: []string{"TRACKER_CONFIG"},
			},
			&cli.IntFlag{
				Name:  "table-size",
				Usage: "number of index buckets (overrides TABLE_SIZE)",
			},
		},
		Before: func(c *cli.Context) error {
			config.LoadEnv()
			return config.LoadFile(c.String("config"))
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the HTTP server",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Usage: "listen port (overrides PORT)"},
				},
				Action: serve,
			},
			{
				Name:   "console",
				Usage:  "Run the interactive text menu",
				Action: runConsole,
			},
		},
		Action: serve,
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) app.Config {
	cfg := app.LoadConfig()
	if n := c.Int("table-size"); n > 0 {
		cfg.TableSize = n
	}
	if p := c.String("port"); p != "" {
		cfg.Port = p
	}
	return cfg
}

func serve(c *cli.Context) error {
	cfg := loadConfig(c)
	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	r := application.Router
	routes.RegisterRoutes(r, application)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on :%s (table size %d)", cfg.Port, cfg.TableSize)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func runConsole(c *cli.Context) error {
	cfg := loadConfig(c)
	tracker := app.NewTracker(cfg.TableSize)
	menu := console.New(tracker, os.Stdin, os.Stdout)

	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		if sqlDB, err := conn.DB(); err == nil {
			defer sqlDB.Close()
		}
		menu.WithAudit(db.NewRepo(conn))
	}
	log.Printf("console mode, table size %d", tracker.Size())
	return menu.Run(c.Context)
}
