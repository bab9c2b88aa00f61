package ssh

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/pem"
	"fmt"
	"os"
	"os/exec"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/platform"
	"golang.org/x/crypto/ssh"
)

const keyBits = 4096

// GenerateKey creates a passphrase-less RSA-4096 key pair at path, skipping
// generation entirely when a file already exists there. Prefers the system
// ssh-keygen; falls back to in-process generation when it is unavailable.
func GenerateKey(path, comment string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := platform.EnsureParentDir(path); err != nil {
		return err
	}

	if !platform.HasCommand("ssh-keygen") {
		return generateKeyFallback(path, comment)
	}

	cmd := exec.Command("ssh-keygen", "-t", "rsa", "-b", "4096", "-f", path, "-N", "", "-q")
	if comment != "" {
		cmd = exec.Command("ssh-keygen", "-t", "rsa", "-b", "4096", "-f", path, "-N", "", "-q", "-C", comment)
	}
	if output, err := cmd.CombinedOutput(); err != nil {
		return apperr.Wrap(apperr.KindToolFailure, err, "ssh-keygen failed for %s: %s", path, string(output))
	}
	return nil
}

// generateKeyFallback writes an OpenSSH-format RSA key pair without shelling
// out. Used when ssh-keygen is not installed.
func generateKeyFallback(path, comment string) error {
	key, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return fmt.Errorf("failed to generate RSA key: %w", err)
	}

	block, err := ssh.MarshalPrivateKey(key, comment)
	if err != nil {
		return fmt.Errorf("failed to marshal private key: %w", err)
	}

	pub, err := ssh.NewPublicKey(&key.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to derive public key: %w", err)
	}

	privPEM := pem.EncodeToMemory(block)
	if err := platform.CreateFileSecure(path, privPEM); err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "failed to write private key %s", path)
	}

	pubLine := ssh.MarshalAuthorizedKey(pub)
	if comment != "" {
		pubLine = append(pubLine[:len(pubLine)-1], []byte(" "+comment+"\n")...)
	}
	if err := os.WriteFile(path+".pub", pubLine, 0644); err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "failed to write public key %s.pub", path)
	}
	return nil
}
