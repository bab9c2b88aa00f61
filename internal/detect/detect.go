// Package detect implements the repository-to-account matching heuristic
// used by the repo discovery workflow and mismatch warnings.
package detect

import (
	"sort"
	"strings"

	"github.com/rein-hosz/GitSwitch/internal/config"
)

// Confidence tiers. A provider or URL-owner match is the strongest signal;
// committer email and name are weaker and scaled by how much evidence was
// available to check.
const (
	providerConfidence = 0.9
	emailWeight        = 0.6
	nameWeight         = 0.4
)

// ApplyThreshold is the minimum confidence at which bulk-apply will act
// without --force.
const ApplyThreshold = 0.5

// HighConfidence marks suggestions reliable enough to highlight.
const HighConfidence = 0.7

var providerDomains = map[string]string{
	"github.com":    "github",
	"gitlab.com":    "gitlab",
	"bitbucket.org": "bitbucket",
}

// Match scores every account against the available repository evidence and
// returns the best account name with its confidence in [0,1]. Empty inputs
// are treated as absent. Ties break to the lexicographically smallest account
// name so results are stable across runs.
func Match(remoteURL, committerEmail, committerName string, cfg *config.Config) (string, float64) {
	if remoteURL != "" {
		if name := matchByURL(remoteURL, cfg); name != "" {
			return name, providerConfidence
		}
	}
	return matchByIdentity(committerEmail, committerName, cfg)
}

// matchByURL prefers a provider-tag match, then an owner/username match
// extracted from the URL path.
func matchByURL(remoteURL string, cfg *config.Config) string {
	provider := ClassifyProvider(remoteURL)
	if provider == "" {
		return ""
	}

	names := cfg.SortedNames()
	for _, name := range names {
		if strings.EqualFold(cfg.Accounts[name].Provider, provider) {
			return name
		}
	}

	owner := ExtractOwner(remoteURL)
	if owner == "" {
		return ""
	}
	for _, name := range names {
		if cfg.Accounts[name].Username == owner {
			return name
		}
	}
	return ""
}

// ClassifyProvider maps a remote URL to a known hosting provider by domain
// substring, or "" when the host is not recognized.
func ClassifyProvider(remoteURL string) string {
	lowered := strings.ToLower(remoteURL)
	for domain, provider := range providerDomains {
		if strings.Contains(lowered, domain) {
			return provider
		}
	}
	return ""
}

// ExtractOwner pulls the owner path segment out of a remote URL, supporting
// both scheme://host/owner/repo and user@host:owner/repo forms.
func ExtractOwner(remoteURL string) string {
	url := remoteURL

	// scp syntax: user@host:owner/repo(.git)
	if at := strings.Index(url, "@"); at >= 0 && !strings.Contains(url, "://") {
		if colon := strings.Index(url[at:], ":"); colon >= 0 {
			path := url[at+colon+1:]
			if slash := strings.Index(path, "/"); slash > 0 {
				return path[:slash]
			}
			return ""
		}
	}

	// URL syntax: scheme://host/owner/repo(.git)
	if idx := strings.Index(url, "://"); idx >= 0 {
		rest := url[idx+3:]
		if slash := strings.Index(rest, "/"); slash >= 0 {
			path := rest[slash+1:]
			if next := strings.Index(path, "/"); next > 0 {
				return path[:next]
			}
		}
	}
	return ""
}

// matchByIdentity compares committer email and name against every account.
// Email equality contributes 0.6, name equality 0.4; the sum is scaled by
// matches/checks to penalize partial evidence.
func matchByIdentity(email, name string, cfg *config.Config) (string, float64) {
	bestName := ""
	bestScore := 0.0

	candidates := make([]string, 0, len(cfg.Accounts))
	for n := range cfg.Accounts {
		candidates = append(candidates, n)
	}
	sort.Strings(candidates)

	for _, accountName := range candidates {
		acc := cfg.Accounts[accountName]
		score := 0.0
		matches := 0
		checks := 0

		if email != "" {
			checks++
			if email == acc.Email {
				matches++
				score += emailWeight
			}
		}
		if name != "" {
			checks++
			if name == acc.Name {
				matches++
				score += nameWeight
			}
		}

		if checks == 0 {
			continue
		}
		score *= float64(matches) / float64(checks)

		if score > bestScore {
			bestScore = score
			bestName = accountName
		}
	}

	if bestScore <= 0 {
		return "", 0.0
	}
	return bestName, bestScore
}
