package patterns

import "github.com/envgrade/envgrade/internal/types"

// Cloud-provider IAM and platform credentials.
var cloudPatterns = []Pattern{
	{
		Name:        "AWS Access Key ID",
		Severity:    types.SevCritical,
		Description: "AWS IAM access key identifier",
		Remediation: "Deactivate the key in the AWS IAM console, rotate it, and load it from your secret manager.",
		Matcher:     rx(`\b(?:AKIA|ASIA)[0-9A-Z]{16}\b`),
	},
	{
		Name:        "AWS Secret Access Key",
		Severity:    types.SevCritical,
		Description: "AWS IAM secret key assigned near an aws_secret_access_key-style name",
		Remediation: "Rotate the secret key pair in AWS IAM and remove it from this file.",
		Matcher:     rxg(`(?i)(?:aws_secret_access_key|aws_secret_key|secretkey)["'\s:=]+([A-Za-z0-9/+=]{40})\b`, 1),
	},
	{
		Name:        "Google API Key",
		Severity:    types.SevCritical,
		Description: "Google Cloud API key",
		Remediation: "Regenerate the key in the Google Cloud console and restrict it to the APIs you use.",
		Matcher:     rx(`\bAIza[0-9A-Za-z_-]{35}\b`),
	},
	{
		Name:        "GCP Service Account Key",
		Severity:    types.SevCritical,
		Description: "Google Cloud service-account private key material (JSON key file contents)",
		Remediation: "Delete the key from the service account and mint a new one; prefer workload identity.",
		Matcher:     rxg(`"private_key_id"\s*:\s*"([0-9a-f]{40})"`, 1),
	},
	{
		Name:        "Azure Storage Account Key",
		Severity:    types.SevCritical,
		Description: "Azure storage connection string with embedded AccountKey",
		Remediation: "Regenerate the storage account key in the Azure portal and switch to SAS or managed identity.",
		Matcher:     rxg(`(?i)AccountName=[^;\s]+;AccountKey=([A-Za-z0-9+/=]{80,88})`, 1),
	},
	{
		Name:        "Azure SAS Token",
		Severity:    types.SevCritical,
		Description: "Azure shared access signature embedded in a storage URL",
		Remediation: "Revoke the SAS by rotating the signing key and issue a new, short-lived signature.",
		Matcher:     rxg(`https?://[A-Za-z0-9.-]+\.core\.windows\.net/[^\s?]+\?[^\s]*sig=([A-Za-z0-9%+/=]{16,})`, 1),
	},
	{
		Name:        "DigitalOcean Personal Access Token",
		Severity:    types.SevCritical,
		Description: "DigitalOcean API token",
		Remediation: "Revoke the token under API settings and create a scoped replacement.",
		Matcher:     rx(`\bdop_v1_[a-f0-9]{64}\b`),
	},
	{
		Name:        "Fly.io API Token",
		Severity:    types.SevCritical,
		Description: "Fly.io deploy/API token",
		Remediation: "Revoke with `fly tokens revoke` and issue a new deploy token.",
		Matcher:     rx(`\bflyv1_[A-Za-z0-9_-]{43,}\b`),
	},
	{
		Name:        "Heroku API Key",
		Severity:    types.SevWarning,
		Description: "UUID-shaped value assigned near a Heroku-specific name",
		Remediation: "Regenerate the key with `heroku authorizations:rotate`.",
		Matcher:     rxg(`(?i)heroku[A-Za-z0-9_-]*["'\s:=]+([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})\b`, 1),
	},
	{
		Name:        "Cloudflare API Token",
		Severity:    types.SevCritical,
		Description: "Cloudflare API token assigned near a CF-specific name",
		Remediation: "Roll the token in the Cloudflare dashboard and scope it to the needed zones.",
		Matcher:     rxg(`(?i)(?:cloudflare|cf)_?api_?(?:token|key)["'\s:=]+([A-Za-z0-9_-]{40})\b`, 1),
	},
	{
		Name:        "Terraform Cloud Token",
		Severity:    types.SevCritical,
		Description: "Terraform Cloud/Enterprise API token",
		Remediation: "Revoke the token under user settings in Terraform Cloud and re-issue.",
		Matcher:     rx(`\btf[ec]\.[A-Za-z0-9]{30,}\b`),
	},
	{
		Name:        "Databricks Personal Access Token",
		Severity:    types.SevCritical,
		Description: "Databricks workspace PAT",
		Remediation: "Revoke the token in the Databricks workspace settings.",
		Matcher:     rx(`\bdapi[a-f0-9]{32,40}\b`),
	},
}
