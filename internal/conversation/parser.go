// Package conversation turns typed terminal input into control activations.
package conversation

import (
	"regexp"
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// KeywordParser matches user input to commands using keywords and simple
// patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
	aliases  map[string]domain.Command
}

type patternRule struct {
	regex *regexp.Regexp
	typ   domain.CommandType
}

var groupPrefix = regexp.MustCompile(`(?i)^(filter|show|sort|order)\s+(?:by\s+)?(\S+)$`)

// NewKeywordParser creates a keyword-based command parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.CommandQuit},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.CommandHelp},
		{regexp.MustCompile(`(?i)^(reset|clear)$`), domain.CommandReset},
	}

	p.aliases = make(map[string]domain.Command)
	for _, f := range domain.Filters() {
		p.aliases[f.String()] = activate(domain.GroupFilter, f.String())
	}
	for _, s := range domain.Sorts() {
		p.aliases[s.String()] = activate(domain.GroupSort, s.String())
	}
	for alias, target := range map[string]string{
		"everything": "all",
		"fast":       "quick",
		"under30":    "quick",
		"a-z":        "name",
		"az":         "name",
		"alpha":      "name",
		"title":      "name",
		"duration":   "time",
		"minutes":    "time",
		"unsorted":   "none",
		"default":    "none",
	} {
		p.aliases[alias] = p.aliases[target]
	}
	return p
}

func activate(g domain.Group, value string) domain.Command {
	return domain.Command{Type: domain.CommandActivate, Group: g, Value: value}
}

// Parse converts user input into a command.
func (p *KeywordParser) Parse(input string) domain.Command {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return domain.Command{Type: domain.CommandUnknown}
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			return domain.Command{Type: rule.typ}
		}
	}

	// "filter easy", "sort by name": the group is explicit, so pass the
	// value through even if it is unknown.
	if m := groupPrefix.FindStringSubmatch(trimmed); m != nil {
		value := strings.ToLower(m[2])
		g := domain.GroupFilter
		if kw := strings.ToLower(m[1]); kw == "sort" || kw == "order" {
			g = domain.GroupSort
		}
		if cmd, ok := p.aliases[value]; ok && cmd.Group == g {
			value = cmd.Value
		}
		return activate(g, value)
	}

	if cmd, ok := p.aliases[strings.ToLower(trimmed)]; ok {
		return cmd
	}

	p.log.Debug("no match, returning unknown command")
	return domain.Command{Type: domain.CommandUnknown, Value: trimmed}
}
