package git

import (
	"strings"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
)

// RemoteURL returns the fetch URL for the named remote of the repository at
// dir, parsed from `git remote -v` output.
func RemoteURL(dir, remote string) (string, error) {
	output, err := run(dir, "remote", "-v")
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, remote) && strings.Contains(line, "(fetch)") {
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				return fields[1], nil
			}
		}
	}
	return "", apperr.NotFound("remote '%s' not found", remote)
}

// SetRemoteURL rewrites the URL of an existing remote.
func SetRemoteURL(dir, remote, url string) error {
	_, err := run(dir, "remote", "set-url", remote, url)
	return err
}

// AddRemote adds a new remote.
func AddRemote(dir, remote, url string) error {
	_, err := run(dir, "remote", "add", remote, url)
	return err
}

// RemoveRemote deletes a remote.
func RemoveRemote(dir, remote string) error {
	_, err := run(dir, "remote", "remove", remote)
	return err
}

// ToHTTPS converts an scp-style SSH remote URL to HTTPS form.
// https:// URLs pass through unchanged.
func ToHTTPS(url string) (string, error) {
	if strings.HasPrefix(url, "https://") {
		return url, nil
	}
	if strings.HasPrefix(url, "git@") {
		parts := strings.SplitN(url, ":", 2)
		if len(parts) == 2 {
			host := strings.TrimPrefix(parts[0], "git@")
			path := strings.TrimSuffix(parts[1], ".git")
			return "https://" + host + "/" + path + ".git", nil
		}
	}
	return "", apperr.Invalid("cannot convert URL to HTTPS: %s", url)
}

// ToSSH converts an HTTPS remote URL to scp-style SSH form.
// git@ URLs pass through unchanged.
func ToSSH(url string) (string, error) {
	if strings.HasPrefix(url, "git@") {
		return url, nil
	}
	if strings.HasPrefix(url, "https://") {
		rest := strings.TrimPrefix(url, "https://")
		parts := strings.SplitN(rest, "/", 2)
		if len(parts) == 2 {
			path := strings.TrimSuffix(parts[1], ".git")
			return "git@" + parts[0] + ":" + path + ".git", nil
		}
	}
	return "", apperr.Invalid("cannot convert URL to SSH: %s", url)
}
