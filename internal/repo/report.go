package repo

import (
	"fmt"
	"strings"
	"time"
)

// Report renders a markdown summary of a scan, in the shape produced by the
// `repo report` command.
func (s *Scanner) Report(discovered []Discovered, now time.Time) string {
	var b strings.Builder
	sum := s.Summarize(discovered)

	b.WriteString("# Git Repository Analysis Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.UTC().Format("2006-01-02 15:04 UTC"))

	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- Total repositories: %d\n", sum.Total)
	fmt.Fprintf(&b, "- With suggestions: %d\n", sum.WithSuggestion)
	fmt.Fprintf(&b, "- High confidence: %d\n\n", sum.HighConfidence)

	b.WriteString("## Repository Details\n\n")
	for i, d := range discovered {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, d.Path)
		if d.RemoteURL != "" {
			fmt.Fprintf(&b, "- **Remote**: %s\n", d.RemoteURL)
		}
		if d.Branch != "" {
			fmt.Fprintf(&b, "- **Branch**: %s\n", d.Branch)
		}
		switch {
		case d.CurrentUserName != "" && d.CurrentUserEmail != "":
			fmt.Fprintf(&b, "- **Current Config**: %s <%s>\n", d.CurrentUserName, d.CurrentUserEmail)
		case d.CurrentUserName != "":
			fmt.Fprintf(&b, "- **Current Config**: %s\n", d.CurrentUserName)
		case d.CurrentUserEmail != "":
			fmt.Fprintf(&b, "- **Current Config**: <%s>\n", d.CurrentUserEmail)
		default:
			b.WriteString("- **Current Config**: Not configured\n")
		}
		if d.SuggestedAccount != "" {
			fmt.Fprintf(&b, "- **Suggested Account**: %s (%d%% confidence)\n",
				d.SuggestedAccount, int(d.Confidence*100))
		}
		b.WriteString("\n")
	}
	return b.String()
}
