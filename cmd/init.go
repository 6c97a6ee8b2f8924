package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/landline-sh/landline/config"
	"github.com/landline-sh/landline/content"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config and sample content document",
	Long: `Creates landline.yml with defaults and a sample content.json the
page can render immediately. Existing files are left alone unless
--force is given.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()

	if err := refuseClobber(cfgFile); err != nil {
		return err
	}
	if err := refuseClobber(cfg.Content); err != nil {
		return err
	}

	if err := cfg.Save(cfgFile); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", cfgFile)

	data, err := json.MarshalIndent(content.Default(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling sample content: %w", err)
	}
	data = append(data, '\n')
	if err := atomic.WriteFile(cfg.Content, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Content, err)
	}
	fmt.Printf("wrote %s\n", cfg.Content)

	fmt.Println("run `landline` to open the page")
	return nil
}

func refuseClobber(path string) error {
	if initForce {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	return nil
}
