package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/postboard/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize postboard configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the posts API base URL and front-end settings, then writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		existing, err := config.Load(cfgFile)
		if err != nil {
			existing = nil
		}
		_, err = config.RunWizard(cfgFile, existing)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
