package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vault-utils",
	Short: "Vault explorer utilities",
	Long:  "Command line utilities for the vault explorer, including reading a single vault card from the chain",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
