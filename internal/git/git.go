// Package git wraps the git binary. Every repository-local operation takes a
// dir argument; an empty dir means the current working directory.
package git

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/rein-hosz/GitSwitch/internal/apperr"
)

// run executes git with the given args, returning stdout. Nonzero exits are
// returned as tool failures carrying the stderr text.
func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return "", apperr.New(apperr.KindToolFailure, "git %s failed: %s",
				strings.Join(args, " "), strings.TrimSpace(stderr.String()))
		}
		return "", apperr.Wrap(apperr.KindToolFailure, err, "failed to run git %s", strings.Join(args, " "))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// IsInstalled checks that the git binary is available.
func IsInstalled() bool {
	return exec.Command("git", "--version").Run() == nil
}

// IsRepository reports whether dir is inside a git work tree. The
// "not a git repository" failure is a normal false, not an error.
func IsRepository(dir string) (bool, error) {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			if strings.Contains(strings.ToLower(stderr.String()), "not a git repository") {
				return false, nil
			}
			return false, apperr.New(apperr.KindToolFailure, "git rev-parse failed: %s",
				strings.TrimSpace(stderr.String()))
		}
		return false, apperr.Wrap(apperr.KindToolFailure, err, "failed to run git")
	}
	return strings.TrimSpace(stdout.String()) == "true", nil
}

// SetGlobalIdentity sets the global user.name and user.email.
func SetGlobalIdentity(name, email string) error {
	if _, err := run("", "config", "--global", "user.name", name); err != nil {
		return fmt.Errorf("failed to set git user.name: %w", err)
	}
	if _, err := run("", "config", "--global", "user.email", email); err != nil {
		return fmt.Errorf("failed to set git user.email: %w", err)
	}
	return nil
}

// GlobalIdentity returns the global user.name and user.email.
// Unset keys yield empty strings.
func GlobalIdentity() (name, email string, err error) {
	name, err = configValue("", "--global", "user.name")
	if err != nil {
		return "", "", err
	}
	email, err = configValue("", "--global", "user.email")
	if err != nil {
		return "", "", err
	}
	return name, email, nil
}

// SetLocalIdentity sets user.name and user.email for the repository at dir.
func SetLocalIdentity(dir, name, email string) error {
	if _, err := run(dir, "config", "--local", "user.name", name); err != nil {
		return fmt.Errorf("failed to set local user.name: %w", err)
	}
	if _, err := run(dir, "config", "--local", "user.email", email); err != nil {
		return fmt.Errorf("failed to set local user.email: %w", err)
	}
	return nil
}

// LocalIdentity returns the repository-local user.name and user.email.
// Unset keys yield empty strings.
func LocalIdentity(dir string) (name, email string, err error) {
	name, err = configValue(dir, "--local", "user.name")
	if err != nil {
		return "", "", err
	}
	email, err = configValue(dir, "--local", "user.email")
	if err != nil {
		return "", "", err
	}
	return name, email, nil
}

// configValue reads a single config key, treating "unset" (exit 1) as empty.
func configValue(dir, scope, key string) (string, error) {
	cmd := exec.Command("git", "config", scope, "--get", key)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", apperr.Wrap(apperr.KindToolFailure, err, "git config --get %s failed", key)
	}
	return strings.TrimSpace(string(output)), nil
}

// SetSSHCommand points core.sshCommand of the repository at dir to a
// specific identity file.
func SetSSHCommand(dir, keyPath string) error {
	sshCmd := shellquote.Join("ssh", "-i", keyPath)
	if _, err := run(dir, "config", "core.sshCommand", sshCmd); err != nil {
		return fmt.Errorf("failed to set core.sshCommand: %w", err)
	}
	return nil
}

// CurrentBranch returns the checked-out branch name of the repository at dir.
func CurrentBranch(dir string) (string, error) {
	return run(dir, "branch", "--show-current")
}

// LastCommitAuthor returns "Name <email>" of the most recent commit, or an
// error when the repository has no commits.
func LastCommitAuthor(dir string) (string, error) {
	return run(dir, "log", "-1", "--pretty=format:%an <%ae>")
}
