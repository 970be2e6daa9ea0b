package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/janekbaraniewski/ecomdash/internal/config"
	"github.com/janekbaraniewski/ecomdash/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var themeFlag string

	root := &cobra.Command{
		Use:          "ecomdash",
		Short:        "ecomdash is a terminal dashboard of e-commerce business insights.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(themeFlag, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runDashboard(rt)
		},
	}
	root.PersistentFlags().StringVar(&themeFlag, "theme", "", "color theme name (see `ecomdash themes`)")

	root.AddCommand(
		newRenderCommand(&themeFlag),
		newThemesCommand(&themeFlag),
		newVersionCommand(),
	)
	return root
}

type runtimeConfig struct {
	cfg  config.Config
	path string
}

// loadRuntime resolves settings in order: config file, ECOMDASH_* environment,
// then the --theme flag. A broken config file is reported and replaced by
// defaults.
func loadRuntime(themeOverride string, stderr io.Writer) (runtimeConfig, error) {
	env, err := config.ReadEnv()
	if err != nil {
		return runtimeConfig{}, err
	}
	if env.Debug {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	path := env.Path()
	cfg, err := config.LoadFrom(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		fmt.Fprintf(stderr, "Config path: %s (using defaults)\n", path)
	}
	cfg = env.Apply(cfg)
	if t := strings.TrimSpace(themeOverride); t != "" {
		cfg.Theme = t
	}

	if !tui.SetThemeByName(cfg.Theme) {
		log.Printf("unknown theme %q, keeping %s", cfg.Theme, tui.ActiveTheme().Name)
	}
	return runtimeConfig{cfg: cfg, path: path}, nil
}
