package cmd

import (
	"os"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/git"
	"github.com/spf13/cobra"
)

var (
	remoteFlagHTTPS bool
	remoteFlagSSH   bool
	remoteFlagName  string
)

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Show or convert the current repository's remote URL",
	Long: `Show the origin remote URL. With --https or --ssh, rewrite the
remote to the other transport in place.`,
	Example: `  git-switch remote
  git-switch remote --ssh
  git-switch remote --https`,
	RunE: runRemote,
}

func init() {
	rootCmd.AddCommand(remoteCmd)
	remoteCmd.Flags().BoolVar(&remoteFlagHTTPS, "https", false, "Convert the remote URL to HTTPS")
	remoteCmd.Flags().BoolVar(&remoteFlagSSH, "ssh", false, "Convert the remote URL to SSH")
	remoteCmd.Flags().StringVar(&remoteFlagName, "name", "origin", "Remote to operate on")
}

func runRemote(cmd *cobra.Command, args []string) error {
	if remoteFlagHTTPS && remoteFlagSSH {
		return apperr.Invalid("--https and --ssh are mutually exclusive")
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	_, p, err := e.loadConfig()
	if err != nil {
		return err
	}

	dir, err := os.Getwd()
	if err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "failed to resolve working directory")
	}
	inRepo, err := git.IsRepository(dir)
	if err != nil {
		return err
	}
	if !inRepo {
		return apperr.Invalid("not inside a git repository: %s", dir)
	}

	url, err := git.RemoteURL(dir, remoteFlagName)
	if err != nil {
		return err
	}

	if !remoteFlagHTTPS && !remoteFlagSSH {
		p.Printf("%s\n", url)
		return nil
	}

	var converted string
	if remoteFlagHTTPS {
		converted, err = git.ToHTTPS(url)
	} else {
		converted, err = git.ToSSH(url)
	}
	if err != nil {
		return err
	}

	if converted == url {
		p.Info("Remote already uses this transport: %s", url)
		return nil
	}
	if err := git.SetRemoteURL(dir, remoteFlagName, converted); err != nil {
		return err
	}
	p.Success("Remote '%s' updated: %s", remoteFlagName, converted)
	return nil
}
