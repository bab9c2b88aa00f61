package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/config"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	home := t.TempDir()
	return NewManager(home, config.NewStore(home)), home
}

func sampleConfig() *config.Config {
	cfg := config.New()
	cfg.Accounts["work"] = config.Account{
		Name:       "work",
		Username:   "john-work",
		Email:      "john@work.com",
		SSHKeyPath: "~/.ssh/id_rsa_work",
		Provider:   "github",
	}
	return cfg
}

func TestExportImportRoundTrips(t *testing.T) {
	m, home := newTestManager(t)
	cfg := sampleConfig()

	for _, ext := range []string{"toml", "json", "yaml"} {
		path := filepath.Join(home, "export."+ext)
		require.NoError(t, m.Export(cfg, path, DetectFormat(path)))

		loaded, err := m.Import(path)
		require.NoError(t, err, ext)
		require.Equal(t, cfg.Accounts, loaded.Accounts, ext)
	}
}

func TestDetectFormat(t *testing.T) {
	require.Equal(t, FormatJSON, DetectFormat("a.json"))
	require.Equal(t, FormatYAML, DetectFormat("a.yaml"))
	require.Equal(t, FormatYAML, DetectFormat("a.yml"))
	require.Equal(t, FormatTOML, DetectFormat("a.toml"))
	require.Equal(t, FormatTOML, DetectFormat("a"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	require.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestImportMissingFile(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.Import("/nonexistent/file.toml")
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestImportFillsAccountNames(t *testing.T) {
	m, home := newTestManager(t)
	path := filepath.Join(home, "partial.json")
	data := `{"accounts":{"work":{"username":"u","email":"u@w.co","ssh_key_path":""}}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := m.Import(path)
	require.NoError(t, err)
	require.Equal(t, "work", cfg.Accounts["work"].Name)
	require.Equal(t, config.CurrentVersion, cfg.Version)
}

func TestBackupWritesTimestampedFile(t *testing.T) {
	m, _ := newTestManager(t)
	require.NoError(t, m.Store.Save(sampleConfig()))

	path, err := m.Backup("")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(filepath.Base(path), "git-switch-backup-"))
	require.Equal(t, m.BackupDir, filepath.Dir(path))

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestRestoreKeepsPreRestoreCopy(t *testing.T) {
	m, home := newTestManager(t)
	require.NoError(t, m.Store.Save(sampleConfig()))

	other := config.New()
	other.Accounts["personal"] = config.Account{Name: "personal", Email: "p@gmail.com"}
	backupPath := filepath.Join(home, "other.toml")
	require.NoError(t, m.Export(other, backupPath, FormatTOML))

	require.NoError(t, m.Restore(backupPath))

	restored, err := m.Store.Load()
	require.NoError(t, err)
	require.Contains(t, restored.Accounts, "personal")
	require.NotContains(t, restored.Accounts, "work")

	_, err = os.Stat(m.Store.Path + ".pre-restore")
	require.NoError(t, err)
}

func TestRestoreRejectsBrokenImport(t *testing.T) {
	m, home := newTestManager(t)
	path := filepath.Join(home, "broken.json")
	data := `{"accounts":{"work":{"name":"work","email":"not-an-email"}}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	err := m.Restore(path)
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestMerge(t *testing.T) {
	dst := sampleConfig()
	src := config.New()
	src.Accounts["work"] = config.Account{Name: "work", Email: "new@work.com"}
	src.Accounts["personal"] = config.Account{Name: "personal", Email: "p@gmail.com"}

	skipped := Merge(dst, src, false)
	require.Equal(t, []string{"work"}, skipped)
	require.Equal(t, "john@work.com", dst.Accounts["work"].Email)
	require.Contains(t, dst.Accounts, "personal")

	skipped = Merge(dst, src, true)
	require.Empty(t, skipped)
	require.Equal(t, "new@work.com", dst.Accounts["work"].Email)
}
