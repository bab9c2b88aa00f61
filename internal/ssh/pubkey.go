package ssh

import (
	"os"
	"strings"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"golang.org/x/crypto/ssh"
)

// PublicKeyInfo summarizes a public key for display.
type PublicKeyInfo struct {
	Type        string
	Fingerprint string
	Comment     string
	Line        string // full authorized_keys line, trimmed
}

// ReadPublicKey loads and parses the .pub file next to a private key.
func ReadPublicKey(privateKeyPath string) (*PublicKeyInfo, error) {
	pubPath := privateKeyPath + ".pub"
	data, err := os.ReadFile(pubPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.NotFound("public key file not found: %s", pubPath)
		}
		return nil, apperr.Wrap(apperr.KindFilesystem, err, "failed to read public key %s", pubPath)
	}

	key, comment, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindFormat, err, "failed to parse public key %s", pubPath)
	}

	return &PublicKeyInfo{
		Type:        key.Type(),
		Fingerprint: ssh.FingerprintSHA256(key),
		Comment:     comment,
		Line:        strings.TrimSpace(string(data)),
	}, nil
}
