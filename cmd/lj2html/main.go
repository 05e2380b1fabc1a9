package main

import (
	"fmt"
	"os"
	"strings"

	"lj2html/internal/app"
	"lj2html/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp loads the config and creates an App. The caller must defer a.Close().
// operation identifies the CLI command being run (e.g. "Convert", "List").
func newApp(operation string, args []string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.LoadOrDefault(defaults["config_path"], defaults["base_dir"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.New(cfg, operation, strings.Join(args, " "))
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "lj2html",
	Short: "Render exported journal XML dumps as a static HTML tree",
}

// convert command
var convertCmd = &cobra.Command{
	Use:   "convert INPUT_DIR OUTPUT_DIR [PATTERN]",
	Short: "Convert a dump directory into HTML files",
	Long: `Convert reads the entry and comment XML files in INPUT_DIR and writes one
self-contained HTML file per entry into OUTPUT_DIR, reconstructing each
entry's comment thread.

PATTERN is an optional profile-URL template with one {} slot, e.g.
https://{}.livejournal.com/profile. When omitted, the configured default
applies, and failing that a pattern is inferred from the dump itself.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Convert", args)
		if err != nil {
			return err
		}
		defer a.Close()

		pattern := ""
		if len(args) == 3 {
			pattern = args[2]
		}

		res, err := a.Convert(args[0], args[1], pattern)
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}

		fmt.Printf("Rendered %d entries (%d comments): %d written, %d unchanged\n",
			res.Events, res.Comments, res.Written, res.Unchanged)
		return nil
	},
}

// list command
var listCmd = &cobra.Command{
	Use:   "list INPUT_DIR",
	Short: "List the entries found in a dump directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("List", args)
		if err != nil {
			return err
		}
		defer a.Close()

		summaries, err := a.List(args[0])
		if err != nil {
			return err
		}

		if len(summaries) == 0 {
			fmt.Println("No entries found.")
			return nil
		}

		for _, s := range summaries {
			subject := s.Subject
			if subject == "" {
				subject = "(no subject)"
			}
			fmt.Printf("%6d  %-19s  %3d comments  %-20s  %s\n",
				s.ItemID, s.Date, s.Comments, s.File, subject)
		}
		return nil
	},
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Log Dir: %s\n", cfg.LogDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.LoadOrDefault(defaults["config_path"], defaults["base_dir"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("User Pattern: %s\n", cfg.UserPattern)
		fmt.Printf("Log Dir:      %s\n", cfg.LogDir)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
