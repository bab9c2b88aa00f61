package template

import (
	"testing"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tpl, err := Get("GitHub")
	require.NoError(t, err)
	require.Equal(t, "git@github.com", tpl.SSHTestHost)

	_, err = Get("sourceforge")
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{"azure", "bitbucket", "github", "gitlab"}, Names())
}

func TestNewAccount(t *testing.T) {
	tpl, err := Get("gitlab")
	require.NoError(t, err)

	acc := NewAccount("work", "john", "john@work.com", tpl)
	require.Equal(t, "work", acc.Name)
	require.Equal(t, "gitlab", acc.Provider)
	require.Equal(t, "~/.ssh/id_rsa_gitlab", acc.SSHKeyPath)
}

func TestTestHostFor(t *testing.T) {
	require.Equal(t, "git@gitlab.com", TestHostFor("gitlab"))
	require.Equal(t, "git@github.com", TestHostFor(""))
	require.Equal(t, "git@github.com", TestHostFor("unknown"))
}

func TestKeyUploadURLFor(t *testing.T) {
	require.Equal(t, "https://github.com/settings/keys", KeyUploadURLFor("github"))
	require.Equal(t, "", KeyUploadURLFor("unknown"))
}
