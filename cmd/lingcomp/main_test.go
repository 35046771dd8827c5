package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/lingcomp/rag"
)

func findCommand(t *testing.T, app *cli.App, name string) *cli.Command {
	t.Helper()
	for _, cmd := range app.Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	t.Fatalf("command %q not found", name)
	return nil
}

func stringFlag(t *testing.T, cmd *cli.Command, name string) *cli.StringFlag {
	t.Helper()
	for _, flag := range cmd.Flags {
		if f, ok := flag.(*cli.StringFlag); ok && f.Name == name {
			return f
		}
	}
	t.Fatalf("string flag %q not found on %s", name, cmd.Name)
	return nil
}

func intFlag(t *testing.T, cmd *cli.Command, name string) *cli.IntFlag {
	t.Helper()
	for _, flag := range cmd.Flags {
		if f, ok := flag.(*cli.IntFlag); ok && f.Name == name {
			return f
		}
	}
	t.Fatalf("int flag %q not found on %s", name, cmd.Name)
	return nil
}

// quietApp returns the application with its output captured in out.
func quietApp(out *bytes.Buffer) *cli.App {
	app := newApp()
	app.Writer = out
	app.ErrWriter = out
	return app
}

func TestFeaturesCommandFlags(t *testing.T) {
	cmd := findCommand(t, newApp(), "features")

	t.Run("file defaults", func(t *testing.T) {
		assert.Equal(t, "messages.csv", stringFlag(t, cmd, "input").Value)
		assert.Equal(t, "messages_with_features.csv", stringFlag(t, cmd, "features-out").Value)
		assert.Equal(t, "summary_features_by_method.csv", stringFlag(t, cmd, "summary-out").Value)
	})

	t.Run("workers default to sequential", func(t *testing.T) {
		assert.Equal(t, 1, intFlag(t, cmd, "workers").Value)
	})

	t.Run("cache disabled by default", func(t *testing.T) {
		assert.Empty(t, stringFlag(t, cmd, "cache-db").Value)
	})
}

func TestIndexCommandFlags(t *testing.T) {
	cmd := findCommand(t, newApp(), "index")

	assert.Equal(t, "rag_docs", stringFlag(t, cmd, "docs").Value)
	assert.Equal(t, "rag_index", stringFlag(t, cmd, "db").Value)
	assert.Equal(t, rag.DefaultChunkSize, intFlag(t, cmd, "chunk-size").Value)
	assert.Equal(t, rag.DefaultChunkOverlap, intFlag(t, cmd, "chunk-overlap").Value)
	assert.Equal(t, rag.DefaultBatchSize, intFlag(t, cmd, "batch-size").Value)

	t.Run("embedding flags bound to environment", func(t *testing.T) {
		assert.Equal(t, []string{"LINGCOMP_EMBEDDING_HOST"}, stringFlag(t, cmd, "embedding-host").EnvVars)
		assert.Equal(t, []string{"LINGCOMP_EMBEDDING_MODEL"}, stringFlag(t, cmd, "embedding-model").EnvVars)
		assert.Equal(t, "http://localhost:11434/v1", stringFlag(t, cmd, "embedding-host").Value)
	})
}

func TestAskCommandFlags(t *testing.T) {
	cmd := findCommand(t, newApp(), "ask")

	assert.Equal(t, 3, intFlag(t, cmd, "top-k").Value)
	assert.Equal(t, "meta-llama/Llama-3-70b-chat-hf", stringFlag(t, cmd, "generation-model").Value)
	assert.Equal(t, []string{"LINGCOMP_API_KEY"}, stringFlag(t, cmd, "api-key").EnvVars)
	assert.Empty(t, stringFlag(t, cmd, "api-key").Value)
}

func TestAskRequiresQuery(t *testing.T) {
	var out bytes.Buffer
	app := quietApp(&out)

	err := app.Run([]string{"lingcomp", "--env-file", "", "ask", "--db", t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query is required")
}

func TestIndexEmptyDirectory(t *testing.T) {
	var out bytes.Buffer
	app := quietApp(&out)

	err := app.Run([]string{
		"lingcomp", "--env-file", "", "index",
		"--docs", t.TempDir(),
		"--db", filepath.Join(t.TempDir(), "index"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, rag.ErrNoDocuments))
}

func TestEnvironmentOverridesFlagDefaults(t *testing.T) {
	t.Setenv("LINGCOMP_EMBEDDING_MODEL", "nomic-embed-text")

	var got string
	app := newApp()
	cmd := findCommand(t, app, "ask")
	cmd.Action = func(c *cli.Context) error {
		got = c.String("embedding-model")
		return nil
	}

	require.NoError(t, app.Run([]string{"lingcomp", "--env-file", "", "ask", "hello"}))
	assert.Equal(t, "nomic-embed-text", got)
}

func TestEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadEnv(filepath.Join(t.TempDir(), "missing.env")))
	})

	t.Run("empty path is ignored", func(t *testing.T) {
		assert.NoError(t, loadEnv(""))
	})

	t.Run("values reach subcommand flags", func(t *testing.T) {
		// Registered with t.Setenv so the variable is restored after the test.
		t.Setenv("LINGCOMP_GENERATION_MODEL", "")
		require.NoError(t, os.Unsetenv("LINGCOMP_GENERATION_MODEL"))

		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("LINGCOMP_GENERATION_MODEL=llama3\n"), 0o644))

		var got string
		app := newApp()
		cmd := findCommand(t, app, "ask")
		cmd.Action = func(c *cli.Context) error {
			got = c.String("generation-model")
			return nil
		}

		require.NoError(t, app.Run([]string{"lingcomp", "--env-file", path, "ask", "hello"}))
		assert.Equal(t, "llama3", got)
	})
}

func TestFeaturesCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "messages.csv")
	featuresOut := filepath.Join(dir, "features.csv")
	summaryOut := filepath.Join(dir, "summary.csv")
	require.NoError(t, os.WriteFile(input, []byte(
		"plain,urgent\nTake your pills today.,Take your pills NOW!\nGo for a walk.,Walk every day!\n"), 0o644))

	var out bytes.Buffer
	app := quietApp(&out)
	err := app.Run([]string{
		"lingcomp", "--env-file", "", "--log-level", "error", "features",
		"--input", input,
		"--features-out", featuresOut,
		"--summary-out", summaryOut,
		"--workers", "2",
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Saved per-row features to "+featuresOut)
	assert.Contains(t, out.String(), "Saved summary to "+summaryOut)
	assert.FileExists(t, featuresOut)
	assert.FileExists(t, summaryOut)

	summary, err := os.ReadFile(summaryOut)
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Method,Avg Word Len")
	assert.Contains(t, string(summary), "\nplain,")
	assert.Contains(t, string(summary), "\nurgent,")
}

func TestFeaturesCommandMissingInput(t *testing.T) {
	var out bytes.Buffer
	app := quietApp(&out)
	err := app.Run([]string{
		"lingcomp", "--env-file", "", "features",
		"--input", filepath.Join(t.TempDir(), "nope.csv"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feature extraction failed")
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"WaRn", slog.LevelWarn},
			{"ERROR", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				level, err := parseLevel(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, level)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}

		err := app.Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("installs handler at requested level", func(t *testing.T) {
		prev := slog.Default()
		t.Cleanup(func() { slog.SetDefault(prev) })

		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}

		require.NoError(t, app.Run([]string{"test", "-l", "warn"}))
		assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelInfo))
		assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
	})
}
