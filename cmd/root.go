package cmd

import (
	"github.com/spf13/cobra"

	"github.com/landline-sh/landline/app"
	"github.com/landline-sh/landline/config"
)

var (
	cfgFile    string
	contentSrc string
)

var rootCmd = &cobra.Command{
	Use:   "landline",
	Short: "A product landing page for the terminal",
	Long: `Landline renders a product landing page inside the terminal: hero,
stats, features, events, and a contact form, with scroll-driven reveals
and a pointer cursor. Content comes from a JSON document on disk or
over HTTP.

Run it bare to open the page, or use init to write starter files.`,
	RunE: runPage,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.Flags().StringVar(&contentSrc, "content", "", "content document path or URL (overrides config)")
}

func runPage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if contentSrc != "" {
		cfg.Content = contentSrc
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	return app.New(app.Options{Config: cfg, Log: log}).Run()
}
