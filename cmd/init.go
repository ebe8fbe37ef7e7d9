package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsearch/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize docsearch configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure docsearch for your site and generates a .docsearch.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
