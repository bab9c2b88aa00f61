package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToHTTPS(t *testing.T) {
	out, err := ToHTTPS("git@github.com:acme/app.git")
	require.NoError(t, err)
	require.Equal(t, "https://github.com/acme/app.git", out)

	out, err = ToHTTPS("git@gitlab.com:group/sub/project")
	require.NoError(t, err)
	require.Equal(t, "https://gitlab.com/group/sub/project.git", out)

	// already https passes through
	out, err = ToHTTPS("https://github.com/acme/app.git")
	require.NoError(t, err)
	require.Equal(t, "https://github.com/acme/app.git", out)

	_, err = ToHTTPS("ftp://weird/url")
	require.Error(t, err)
}

func TestToSSH(t *testing.T) {
	out, err := ToSSH("https://github.com/acme/app.git")
	require.NoError(t, err)
	require.Equal(t, "git@github.com:acme/app.git", out)

	out, err = ToSSH("https://github.com/acme/app")
	require.NoError(t, err)
	require.Equal(t, "git@github.com:acme/app.git", out)

	out, err = ToSSH("git@github.com:acme/app.git")
	require.NoError(t, err)
	require.Equal(t, "git@github.com:acme/app.git", out)

	_, err = ToSSH("ftp://weird/url")
	require.Error(t, err)
}

func TestConversionRoundTrip(t *testing.T) {
	ssh := "git@bitbucket.org:team/repo.git"
	https, err := ToHTTPS(ssh)
	require.NoError(t, err)

	back, err := ToSSH(https)
	require.NoError(t, err)
	require.Equal(t, ssh, back)
}
