package main

import (
	"blogfeed/config"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
)

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	if c.IsSet("port") {
		if c.Command.Name == "serve" {
			cfg.Server.Port = c.String("port")
		} else {
			cfg.Display.Port = c.String("port")
		}
	}
	if c.IsSet("content-url") {
		cfg.Display.ContentURL = c.String("content-url")
	}
	return cfg, nil
}

var ServeCommand = &cli.Command{
	Name:  "serve",
	Usage: "Serve the post collection as JSON",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "port", Usage: "port to listen on"},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		srv := CreateServer(cfg.Server)
		log.Printf("Start serving on %s", srv.Addr)
		return srv.ListenAndServe()
	},
}

var DisplayCommand = &cli.Command{
	Name:  "display",
	Usage: "Fetch the post collection once and serve it as a page",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "port", Usage: "port to listen on"},
		&cli.StringFlag{Name: "content-url", Usage: "address of the content service"},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, view := CreateDisplayServer(cfg.Display)
		// the fetch ends through Unmount, not through the signal
		view.Mount(c.Context)
		defer view.Unmount()

		errs := make(chan error, 1)
		go func() {
			log.Printf("Start displaying %s on %s", cfg.Display.ContentURL, srv.Addr)
			errs <- srv.ListenAndServe()
		}()

		select {
		case err := <-errs:
			return err
		case <-ctx.Done():
		}

		view.Unmount()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}
