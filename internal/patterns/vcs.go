package patterns

import "github.com/envgrade/envgrade/internal/types"

// Source-forge and package-registry credentials.
var vcsPatterns = []Pattern{
	{
		Name:        "GitHub Personal Access Token",
		Severity:    types.SevCritical,
		Description: "GitHub classic token (ghp_/gho_/ghu_/ghs_/ghr_)",
		Remediation: "Revoke the token at github.com/settings/tokens and create a fine-grained replacement.",
		Matcher:     rx(`\bgh[pousr]_[A-Za-z0-9]{36}\b`),
	},
	{
		Name:        "GitHub Fine-Grained Token",
		Severity:    types.SevCritical,
		Description: "GitHub fine-grained personal access token",
		Remediation: "Revoke the token at github.com/settings/tokens.",
		Matcher:     rx(`\bgithub_pat_[A-Za-z0-9_]{36,}\b`),
	},
	{
		Name:        "GitLab Personal Access Token",
		Severity:    types.SevCritical,
		Description: "GitLab personal access token",
		Remediation: "Revoke under GitLab user settings → access tokens.",
		Matcher:     rx(`\bglpat-[A-Za-z0-9_-]{20,}\b`),
	},
	{
		Name:        "GitLab Pipeline Trigger Token",
		Severity:    types.SevWarning,
		Description: "GitLab pipeline trigger token",
		Remediation: "Rotate the trigger token in the project CI/CD settings.",
		Matcher:     rx(`\bglptt-[0-9a-f]{40}\b`),
	},
	{
		Name:        "npm Access Token",
		Severity:    types.SevCritical,
		Description: "npm registry access token",
		Remediation: "Revoke with `npm token revoke` and publish via granular tokens.",
		Matcher:     rx(`\bnpm_[A-Za-z0-9]{36}\b`),
	},
	{
		Name:        "npmrc Auth Token",
		Severity:    types.SevCritical,
		Description: "registry _authToken entry from an .npmrc file",
		Remediation: "Remove the token from .npmrc and use an environment variable injected at CI time.",
		Matcher:     rxg(`//[^\s]*:_authToken=(\S+)`, 1),
	},
	{
		Name:        "PyPI Upload Token",
		Severity:    types.SevCritical,
		Description: "PyPI API token",
		Remediation: "Revoke the token in your PyPI account settings and scope a new one per project.",
		Matcher:     rx(`\bpypi-[A-Za-z0-9_-]{50,}\b`),
	},
	{
		Name:        "RubyGems API Key",
		Severity:    types.SevCritical,
		Description: "rubygems credentials entry",
		Remediation: "Revoke the key at rubygems.org/profile/api_keys.",
		Matcher:     rxg(`:rubygems_api_key:\s*(\S+)`, 1),
	},
	{
		Name:        "Docker Hub Access Token",
		Severity:    types.SevCritical,
		Description: "Docker Hub personal access token",
		Remediation: "Revoke the token under Docker Hub security settings.",
		Matcher:     rx(`\bdckr_pat_[A-Za-z0-9_-]{27,}\b`),
	},
}
