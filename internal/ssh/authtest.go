package ssh

import (
	"os/exec"
	"strings"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
)

// TestAuth probes SSH authentication against a hosting endpoint such as
// git@github.com. Git hosts close the connection with a nonzero exit code
// even on success, so a zero exit or a "successfully authenticated" message
// in stderr both count.
func TestAuth(host string) error {
	cmd := exec.Command("ssh", "-T", "-o", "ConnectTimeout=5", "-o", "StrictHostKeyChecking=no", host)
	output, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}
	if strings.Contains(string(output), "successfully authenticated") {
		return nil
	}
	return apperr.Wrap(apperr.KindToolFailure, err, "ssh -T %s failed: %s", host, strings.TrimSpace(string(output)))
}
