package main

import (
	"blogfeed/config"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// probe runs cmd's flag parsing with an action that only loads config.
func probe(t *testing.T, cmd *cli.Command, args ...string) config.Config {
	t.Helper()
	var got config.Config
	probed := *cmd
	probed.Action = func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		got = cfg
		return err
	}

	app := newApp()
	app.Commands = []*cli.Command{&probed}
	argv := append([]string{"blogfeed", "--config", filepath.Join(t.TempDir(), "missing.yml"), cmd.Name}, args...)
	require.NoError(t, app.Run(argv))
	return got
}

func TestAppCommands(t *testing.T) {
	app := newApp()

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	require.ElementsMatch(t, []string{"serve", "display"}, names)
}

func TestServePortFlag(t *testing.T) {
	cfg := probe(t, ServeCommand, "--port", "9999")

	require.Equal(t, "9999", cfg.Server.Port)
	require.Equal(t, "5174", cfg.Display.Port)
}

func TestDisplayFlags(t *testing.T) {
	cfg := probe(t, DisplayCommand, "--port", "6000", "--content-url", "http://content.test")

	require.Equal(t, "6000", cfg.Display.Port)
	require.Equal(t, "http://content.test", cfg.Display.ContentURL)
	require.Equal(t, "8080", cfg.Server.Port)
}

func TestDefaultsWithoutFlags(t *testing.T) {
	cfg := probe(t, ServeCommand)

	require.Equal(t, config.Default(), cfg)
}

func TestConfigFileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blogfeed.yml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  contentUrl: http://file.test\n"), 0644))
	t.Setenv("BLOGFEED_CONFIG", path)

	var got string
	app := newApp()
	app.Commands = []*cli.Command{{
		Name: "probe",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			got = cfg.Display.ContentURL
			return err
		},
	}}

	require.NoError(t, app.Run([]string{"blogfeed", "probe"}))
	require.Equal(t, "http://file.test", got)
}
