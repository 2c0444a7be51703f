// Package contract provides configuration structs and shared utilities for internal architecture.
package contract

import (
	"os"
	"strings"
)

// Default directories for the batch pipeline.
const (
	DefaultRawDir       = "data/raw"
	DefaultOutputDir    = "data"
	DefaultHistoryDir   = "data/history"
	DefaultDashboardDir = "docs/dashboard"
	DefaultThresholds   = "config/thresholds.yaml"
	DefaultWindowDays   = 7
)

// DefaultOrgs lists the GitHub organizations swept by the activity collector.
var DefaultOrgs = []string{
	"ivviiviivvi",
	"omni-dromenon-machina",
	"labores-profani-crux",
	"organvm-iv-taxis",
	"organvm-v-logos",
	"organvm-vi-koinonia",
	"organvm-vii-kerygma",
	"meta-organvm",
}

// OrgToOrgan maps a GitHub organization name to its organ numeral, the
// short label used as the breakdown key in activity snapshots.
var OrgToOrgan = map[string]string{
	"ivviiviivvi":           "I",
	"omni-dromenon-machina": "II",
	"labores-profani-crux":  "III",
	"organvm-iv-taxis":      "IV",
	"organvm-v-logos":       "V",
	"organvm-vi-koinonia":   "VI",
	"organvm-vii-kerygma":   "VII",
	"meta-organvm":          "META",
}

// OrganFor returns the organ numeral for a GitHub org, falling back to the
// org name itself for unmapped organizations.
func OrganFor(org string) string {
	if organ, ok := OrgToOrgan[org]; ok {
		return organ
	}
	return org
}

// GoatCounterConfig holds GoatCounter API credentials.
type GoatCounterConfig struct {
	Site    string
	Token   string
	BaseURL string
}

// DefaultGoatCounterBaseURL is the API endpoint template; {site} is
// substituted with the configured site code.
const DefaultGoatCounterBaseURL = "https://{site}.goatcounter.com/api/v0"

// NewGoatCounterConfig returns a config with the default base URL.
func NewGoatCounterConfig(site, token string) *GoatCounterConfig {
	return &GoatCounterConfig{Site: site, Token: token, BaseURL: DefaultGoatCounterBaseURL}
}

// GoatCounterFromEnv reads GOATCOUNTER_SITE and GOATCOUNTER_TOKEN.
func GoatCounterFromEnv() *GoatCounterConfig {
	return NewGoatCounterConfig(os.Getenv("GOATCOUNTER_SITE"), os.Getenv("GOATCOUNTER_TOKEN"))
}

// Configured reports whether the required credentials are present.
func (c *GoatCounterConfig) Configured() bool {
	return c.Site != "" && c.Token != ""
}

// APIURL returns the base URL with the site code substituted.
func (c *GoatCounterConfig) APIURL() string {
	return strings.Replace(c.BaseURL, "{site}", c.Site, 1)
}

// GitHubConfig holds GitHub API credentials and the organization sweep list.
type GitHubConfig struct {
	Token   string
	BaseURL string // override for tests; empty means api.github.com
	Orgs    []string
}

// NewGitHubConfig returns a config covering the default organizations.
func NewGitHubConfig(token string) *GitHubConfig {
	return &GitHubConfig{Token: token, Orgs: DefaultOrgs}
}

// GitHubFromEnv reads GITHUB_TOKEN.
func GitHubFromEnv() *GitHubConfig {
	return NewGitHubConfig(os.Getenv("GITHUB_TOKEN"))
}

// Configured reports whether the required credentials are present.
func (c *GitHubConfig) Configured() bool {
	return c.Token != ""
}

// EngineConfig holds the validated directory layout for one aggregation run.
type EngineConfig struct {
	RawDir         string
	OutputDir      string
	HistoryDir     string
	ThresholdsPath string
}
