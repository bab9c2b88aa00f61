// Package cmd wires the git-switch command tree.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "git-switch",
	Short: "Manage multiple Git identities",
	Long: `git-switch manages multiple Git accounts: identities, SSH keys,
SSH config host aliases, and per-repository overrides.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and returns the resulting error, if any.
func Execute() error {
	return rootCmd.Execute()
}
