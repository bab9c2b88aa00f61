package ssh

import (
	"os"
	"os/exec"
	"strings"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
)

const agentUnreachable = "Could not open a connection to your authentication agent"

// agentSoftFailure reports whether ssh-add output means the agent itself is
// unreachable. Only that condition is soft; a rejected or corrupt key is a
// real tool failure.
func agentSoftFailure(output string) bool {
	return strings.Contains(output, agentUnreachable)
}

// AddKeyToAgent loads a private key into the running ssh-agent.
// Returns false without an error when the agent is unreachable; callers
// report that as a warning rather than aborting the switch.
func AddKeyToAgent(keyPath string) (bool, error) {
	if _, err := os.Stat(keyPath); err != nil {
		if os.IsNotExist(err) {
			return false, apperr.NotFound("SSH key not found: %s", keyPath)
		}
		return false, apperr.Wrap(apperr.KindFilesystem, err, "failed to access key %s", keyPath)
	}

	cmd := exec.Command("ssh-add", keyPath)
	output, err := cmd.CombinedOutput()
	if err == nil {
		return true, nil
	}

	msg := string(output)
	if agentSoftFailure(msg) {
		return false, nil
	}
	return false, apperr.Wrap(apperr.KindToolFailure, err, "ssh-add failed for %s: %s", keyPath, strings.TrimSpace(msg))
}

// ListAgentKeys returns the raw `ssh-add -l` output, or "" when the agent is
// unreachable or empty.
func ListAgentKeys() string {
	output, err := exec.Command("ssh-add", "-l").Output()
	if err != nil {
		return ""
	}
	return string(output)
}
