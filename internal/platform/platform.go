// Package platform holds filesystem and OS helpers shared by the other
// packages. The home directory is resolved once at the entry point and passed
// down; nothing in here reads the environment on its own except Home.
package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
)

// ConfigDirName is the directory under the user's home that holds the
// git-switch configuration, profiles, analytics, and backups.
const ConfigDirName = ".git-switch"

// Home resolves the user's home directory.
func Home() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", apperr.Wrap(apperr.KindEnvMissing, err, "failed to resolve home directory")
	}
	return home, nil
}

// ConfigDir returns the git-switch config directory for the given home.
func ConfigDir(home string) string {
	return filepath.Join(home, ConfigDirName)
}

// SSHDir returns the user's .ssh directory.
func SSHDir(home string) string {
	return filepath.Join(home, ".ssh")
}

// SSHConfigPath returns the path to the SSH client config file.
func SSHConfigPath(home string) string {
	return filepath.Join(SSHDir(home), "config")
}

// MkdirSecure creates a directory with restrictive permissions.
func MkdirSecure(path string) error {
	if runtime.GOOS == "windows" {
		// Windows doesn't use Unix permissions
		return os.MkdirAll(path, 0755)
	}
	return os.MkdirAll(path, 0700)
}

// CreateFileSecure writes a file with restrictive permissions.
func CreateFileSecure(path string, data []byte) error {
	if runtime.GOOS == "windows" {
		return os.WriteFile(path, data, 0644)
	}
	return os.WriteFile(path, data, 0600)
}

// OpenFileSecure opens a file for writing with restrictive permissions.
func OpenFileSecure(path string, flag int) (*os.File, error) {
	if runtime.GOOS == "windows" {
		return os.OpenFile(path, flag, 0644)
	}
	return os.OpenFile(path, flag, 0600)
}

// CheckFilePermissions reports whether a file is readable only by its owner.
// Always true on Windows.
func CheckFilePermissions(path string) (bool, error) {
	if runtime.GOOS == "windows" {
		return true, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	if info.Mode()&0077 != 0 {
		return false, nil
	}
	return true, nil
}

// PermissionFixCommand returns the command a user should run to fix an
// insecure key file.
func PermissionFixCommand(path string) string {
	if runtime.GOOS == "windows" {
		return "File permissions are not applicable on Windows"
	}
	return fmt.Sprintf("chmod 600 %s", path)
}

// HasCommand checks if a command is available in PATH.
func HasCommand(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// ExpandTilde expands a leading ~ against the given home directory.
func ExpandTilde(home, path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == os.PathSeparator {
		return filepath.Join(home, path[2:])
	}
	return path
}

// ContractTilde replaces the home prefix of a path with ~ for display.
func ContractTilde(home, path string) string {
	if home == "" || path == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + filepath.ToSlash(path[len(home):])
	}
	return path
}

// NormalizePathForSSHConfig converts a path to forward slashes for SSH config.
// SSH config files expect forward slashes even on Windows.
func NormalizePathForSSHConfig(path string) string {
	if runtime.GOOS == "windows" {
		return filepath.ToSlash(path)
	}
	return path
}

// EnsureParentDir creates the parent directory of path if needed.
func EnsureParentDir(path string) error {
	parent := filepath.Dir(path)
	if parent == "" || parent == "." {
		return nil
	}
	if err := MkdirSecure(parent); err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "failed to create directory %s", parent)
	}
	return nil
}
