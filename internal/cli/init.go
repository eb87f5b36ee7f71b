package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile mirrors the .taskrconfig keys read by core.LoadConfig.
type configFile struct {
	Data struct {
		File string `yaml:"file"`
	} `yaml:"data"`
	Events struct {
		File string `yaml:"file"`
	} `yaml:"events"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .taskrconfig",
	Long: `Write a .taskrconfig file with the default settings into the taskr
base directory so they can be edited. Fails if the file already exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if BasePath == "" {
			return fmt.Errorf("base path not initialized")
		}

		path := filepath.Join(BasePath, ".taskrconfig")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		var cfg configFile
		cfg.Data.File = "data.json"
		cfg.Events.File = "events.jsonl"

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		content := append([]byte("# taskr configuration\n"), data...)

		if err := os.MkdirAll(BasePath, 0o755); err != nil {
			return fmt.Errorf("creating base directory: %w", err)
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
