package profile

import (
	"testing"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/config"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) (*Store, *config.Config) {
	t.Helper()
	cfg := config.New()
	for _, name := range []string{"work", "personal", "freelance"} {
		cfg.Accounts[name] = config.Account{Name: name, Email: name + "@x.co"}
	}
	return NewStore(t.TempDir()), cfg
}

func TestCreateAndLoad(t *testing.T) {
	s, cfg := testStore(t)

	err := s.Create(cfg, "client-a", "Client A work", []string{"work", "freelance"}, "work")
	require.NoError(t, err)

	profiles, err := s.Load()
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	p := profiles["client-a"]
	require.Equal(t, []string{"work", "freelance"}, p.Accounts)
	require.Equal(t, "work", p.DefaultAccount)
	require.False(t, p.CreatedAt.IsZero())
	require.Nil(t, p.LastUsed)
}

func TestCreateRejectsUnknownAccount(t *testing.T) {
	s, cfg := testStore(t)
	err := s.Create(cfg, "p", "", []string{"ghost"}, "")
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateRejectsForeignDefault(t *testing.T) {
	s, cfg := testStore(t)
	err := s.Create(cfg, "p", "", []string{"work"}, "personal")
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestCreateRejectsDuplicate(t *testing.T) {
	s, cfg := testStore(t)
	require.NoError(t, s.Create(cfg, "p", "", []string{"work"}, ""))

	err := s.Create(cfg, "p", "", []string{"work"}, "")
	require.Error(t, err)
	require.Equal(t, apperr.KindExists, apperr.KindOf(err))
}

func TestResolve(t *testing.T) {
	s, cfg := testStore(t)
	require.NoError(t, s.Create(cfg, "p", "", []string{"work", "personal"}, "work"))

	account, err := s.Resolve("p", "")
	require.NoError(t, err)
	require.Equal(t, "work", account)

	account, err = s.Resolve("p", "personal")
	require.NoError(t, err)
	require.Equal(t, "personal", account)

	_, err = s.Resolve("p", "freelance")
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	profiles, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, profiles["p"].LastUsed, "Resolve stamps LastUsed")
}

func TestResolveNoDefault(t *testing.T) {
	s, cfg := testStore(t)
	require.NoError(t, s.Create(cfg, "p", "", []string{"work"}, ""))

	_, err := s.Resolve("p", "")
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestUpdateMembershipAndDefault(t *testing.T) {
	s, cfg := testStore(t)
	require.NoError(t, s.Create(cfg, "p", "", []string{"work", "personal"}, "personal"))

	// removing the default account clears it
	require.NoError(t, s.Update(cfg, "p", "", []string{"freelance"}, []string{"personal"}, ""))

	profiles, err := s.Load()
	require.NoError(t, err)
	p := profiles["p"]
	require.Equal(t, []string{"work", "freelance"}, p.Accounts)
	require.Equal(t, "", p.DefaultAccount)

	require.NoError(t, s.Update(cfg, "p", "", nil, nil, "freelance"))
	profiles, err = s.Load()
	require.NoError(t, err)
	require.Equal(t, "freelance", profiles["p"].DefaultAccount)
}

func TestDeleteMissing(t *testing.T) {
	s, _ := testStore(t)
	err := s.Delete("ghost")
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSortedNames(t *testing.T) {
	profiles := map[string]Profile{"b": {}, "a": {}, "c": {}}
	require.Equal(t, []string{"a", "b", "c"}, SortedNames(profiles))
}
