package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gerunddev/notionclip/internal/config"
	"github.com/gerunddev/notionclip/internal/styles"
)

// Config shows or initializes the configuration file
func Config(args []string) {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "show":
		cfg := loadConfig()
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
			os.Exit(1)
		}
		fmt.Println(string(data))
		fmt.Println(styles.DimStyle.Render("  " + config.ConfigPath()))
	case "init":
		if _, err := os.Stat(config.ConfigPath()); err == nil && !hasFlag(args, "--force") {
			fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ Config already exists at "+config.ConfigPath()+" (use --force to overwrite)"))
			os.Exit(1)
		}
		if err := config.DefaultConfig().Save(); err != nil {
			fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
			os.Exit(1)
		}
		fmt.Println(styles.SuccessStyle.Render("✓ Wrote default config to " + config.ConfigPath()))
	case "path":
		fmt.Println(config.ConfigPath())
	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s (want show, init, or path)\n", sub)
		os.Exit(1)
	}
}
