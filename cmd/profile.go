package cmd

import (
	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/profile"
	"github.com/spf13/cobra"
)

var (
	profileFlagDescription string
	profileFlagAccounts    []string
	profileFlagDefault     string
	profileFlagAdd         []string
	profileFlagRemove      []string
	profileFlagAccount     string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Group accounts into switchable profiles",
}

var profileCreateCmd = &cobra.Command{
	Use:     "create <name>",
	Short:   "Create a new profile",
	Args:    cobra.ExactArgs(1),
	Example: `  git-switch profile create client-a --accounts work,personal --default work`,
	RunE:    runProfileCreate,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE:  runProfileList,
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch to a profile's account",
	Long: `Switch the global identity to the profile's default account, or to
--account when given.`,
	Args: cobra.ExactArgs(1),
	Example: `  git-switch profile use client-a
  git-switch profile use client-a --account personal`,
	RunE: runProfileUse,
}

var profileUpdateCmd = &cobra.Command{
	Use:     "update <name>",
	Short:   "Edit a profile's membership or default",
	Args:    cobra.ExactArgs(1),
	Example: `  git-switch profile update client-a --add freelance --remove personal`,
	RunE:    runProfileUpdate,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

var profileStatsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Show usage statistics for a profile's accounts",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileStats,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileCreateCmd, profileListCmd, profileUseCmd, profileUpdateCmd, profileDeleteCmd, profileStatsCmd)

	profileCreateCmd.Flags().StringVar(&profileFlagDescription, "description", "", "Profile description")
	profileCreateCmd.Flags().StringSliceVar(&profileFlagAccounts, "accounts", nil, "Accounts in this profile")
	profileCreateCmd.Flags().StringVar(&profileFlagDefault, "default", "", "Default account for this profile")

	profileUseCmd.Flags().StringVar(&profileFlagAccount, "account", "", "Override the profile's default account")

	profileUpdateCmd.Flags().StringVar(&profileFlagDescription, "description", "", "New description")
	profileUpdateCmd.Flags().StringSliceVar(&profileFlagAdd, "add", nil, "Accounts to add")
	profileUpdateCmd.Flags().StringSliceVar(&profileFlagRemove, "remove", nil, "Accounts to remove")
	profileUpdateCmd.Flags().StringVar(&profileFlagDefault, "default", "", "New default account")
}

func runProfileCreate(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	name := args[0]
	if err := e.Profiles.Create(cfg, name, profileFlagDescription, profileFlagAccounts, profileFlagDefault); err != nil {
		return err
	}
	p.Success("Profile '%s' created with %d accounts", name, len(profileFlagAccounts))
	return nil
}

func runProfileList(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	_, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	profiles, err := e.Profiles.Load()
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		p.Info("No profiles configured")
		return nil
	}

	p.Header("Profiles")
	for _, name := range profile.SortedNames(profiles) {
		pr := profiles[name]
		p.Printf("\n%s %s\n", p.Green("▶"), pr.Name)
		if pr.Description != "" {
			p.Printf("  %s\n", pr.Description)
		}
		p.Printf("  Accounts: %d\n", len(pr.Accounts))
		if pr.DefaultAccount != "" {
			p.Printf("  Default: %s\n", p.Cyan(pr.DefaultAccount))
		}
		if pr.LastUsed != nil {
			p.Printf("  Last used: %s\n", pr.LastUsed.Format("2006-01-02 15:04"))
		}
	}
	return nil
}

func runProfileUse(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	account, err := e.Profiles.Resolve(args[0], profileFlagAccount)
	if err != nil {
		return err
	}
	return runUse(cmd, []string{account})
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	cfg, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	name := args[0]
	if err := e.Profiles.Update(cfg, name, profileFlagDescription, profileFlagAdd, profileFlagRemove, profileFlagDefault); err != nil {
		return err
	}
	p.Success("Profile '%s' updated", name)
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	_, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	if err := e.Profiles.Delete(args[0]); err != nil {
		return err
	}
	p.Success("Profile '%s' deleted", args[0])
	return nil
}

func runProfileStats(cmd *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	_, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	profiles, err := e.Profiles.Load()
	if err != nil {
		return err
	}
	pr, ok := profiles[args[0]]
	if !ok {
		return apperr.NotFound("profile '%s' not found", args[0])
	}

	stats, err := e.Analytics.Load()
	if err != nil {
		return err
	}

	p.Header("Profile: " + pr.Name)
	for _, acc := range pr.Accounts {
		p.Printf("  %s: %d switches", acc, stats.AccountUsage[acc])
		if last, ok := stats.LastUsed[acc]; ok {
			p.Printf(", last used %s", last)
		}
		p.Printf("\n")
	}
	return nil
}
