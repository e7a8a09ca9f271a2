package main

import (
	"blogfeed/config"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/motemen/go-loghttp/global"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "blogfeed",
		Usage: "Serve a fixed blog post collection and display it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   config.DefaultPath,
				Usage:   "path to the YAML config file",
				EnvVars: []string{"BLOGFEED_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			ServeCommand,
			DisplayCommand,
		},
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %s", err.Error())
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
