package ssh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAgentSoftFailure(t *testing.T) {
	require.True(t, agentSoftFailure("Could not open a connection to your authentication agent"))

	// key problems are hard failures, not an unreachable agent
	require.False(t, agentSoftFailure("Error loading key \"/k/w\": error in libcrypto"))
	require.False(t, agentSoftFailure("Error loading key \"/k/w\": invalid format"))
	require.False(t, agentSoftFailure(""))
}
