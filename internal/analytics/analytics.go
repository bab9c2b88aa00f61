// Package analytics tracks per-account usage counters. Recording failures
// are never fatal; callers downgrade them to warnings.
package analytics

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rein-hosz/GitSwitch/internal/apperr"
	"github.com/rein-hosz/GitSwitch/internal/platform"
)

// FileName is the analytics file inside the git-switch config directory.
const FileName = "analytics.toml"

// UsageStats accumulates switch counts, last-used timestamps (RFC3339), and
// per-account repository apply counts.
type UsageStats struct {
	AccountUsage    map[string]int    `toml:"account_usage"`
	LastUsed        map[string]string `toml:"last_used"`
	RepositoryCount map[string]int    `toml:"repository_count"`
}

// Store persists usage stats in a TOML sidecar file.
type Store struct {
	Path string
}

// NewStore builds an analytics store under the given home directory.
func NewStore(home string) *Store {
	return &Store{Path: filepath.Join(platform.ConfigDir(home), FileName)}
}

// Load reads the stats. A missing file yields empty stats.
func (s *Store) Load() (*UsageStats, error) {
	stats := &UsageStats{
		AccountUsage:    map[string]int{},
		LastUsed:        map[string]string{},
		RepositoryCount: map[string]int{},
	}
	if _, err := os.Stat(s.Path); err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return nil, apperr.Wrap(apperr.KindFilesystem, err, "failed to read analytics %s", s.Path)
	}
	if _, err := toml.DecodeFile(s.Path, stats); err != nil {
		return nil, apperr.Wrap(apperr.KindFormat, err, "failed to decode analytics %s", s.Path)
	}
	if stats.AccountUsage == nil {
		stats.AccountUsage = map[string]int{}
	}
	if stats.LastUsed == nil {
		stats.LastUsed = map[string]string{}
	}
	if stats.RepositoryCount == nil {
		stats.RepositoryCount = map[string]int{}
	}
	return stats, nil
}

// Save writes the stats, overwriting previous content.
func (s *Store) Save(stats *UsageStats) error {
	if err := platform.EnsureParentDir(s.Path); err != nil {
		return err
	}
	f, err := platform.OpenFileSecure(s.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return apperr.Wrap(apperr.KindFilesystem, err, "failed to open analytics file %s", s.Path)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(stats); err != nil {
		return apperr.Wrap(apperr.KindFormat, err, "failed to encode analytics")
	}
	return nil
}

// RecordUsage bumps the switch counter and last-used timestamp for an account.
func (s *Store) RecordUsage(accountName string) error {
	stats, err := s.Load()
	if err != nil {
		return err
	}
	stats.AccountUsage[accountName]++
	stats.LastUsed[accountName] = time.Now().UTC().Format(time.RFC3339)
	return s.Save(stats)
}

// RecordRepository bumps the repository apply counter for an account.
func (s *Store) RecordRepository(accountName string) error {
	stats, err := s.Load()
	if err != nil {
		return err
	}
	stats.RepositoryCount[accountName]++
	return s.Save(stats)
}

// Clear deletes the analytics file. Missing file is a no-op.
func (s *Store) Clear() (bool, error) {
	if err := os.Remove(s.Path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, apperr.Wrap(apperr.KindFilesystem, err, "failed to remove analytics %s", s.Path)
	}
	return true, nil
}

// Entry pairs an account with its usage count for sorted display.
type Entry struct {
	Account string
	Count   int
}

// TopUsage returns accounts sorted by descending usage count, ties broken by
// name.
func TopUsage(counts map[string]int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for account, count := range counts {
		entries = append(entries, Entry{Account: account, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Account < entries[j].Account
	})
	return entries
}
