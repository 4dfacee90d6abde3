package patterns

import "github.com/envgrade/envgrade/internal/types"

// SaaS API tokens and OAuth secrets.
var saasPatterns = []Pattern{
	{
		Name:        "Stripe Live Secret Key",
		Severity:    types.SevCritical,
		Description: "Stripe live-mode secret key",
		Remediation: "Roll the key immediately in the Stripe dashboard; live keys move money.",
		Matcher:     rx(`\bsk_live_[A-Za-z0-9]{24,}\b`),
	},
	{
		Name:        "Stripe Test Secret Key",
		Severity:    types.SevWarning,
		Description: "Stripe test-mode secret key",
		Remediation: "Roll the key in the Stripe dashboard; test keys still leak account structure.",
		Matcher:     rx(`\bsk_test_[A-Za-z0-9]{24,}\b`),
	},
	{
		Name:        "Stripe Webhook Signing Secret",
		Severity:    types.SevWarning,
		Description: "Stripe webhook endpoint signing secret",
		Remediation: "Roll the signing secret on the webhook endpoint.",
		Matcher:     rx(`\bwhsec_[A-Za-z0-9]{16,}\b`),
	},
	{
		Name:        "Slack Token",
		Severity:    types.SevCritical,
		Description: "Slack bot/user/app token (xox*)",
		Remediation: "Revoke the token via the Slack app config and reinstall the app.",
		Matcher:     rx(`\bxox[abprs]-[A-Za-z0-9-]{10,48}\b`),
	},
	{
		Name:        "SendGrid API Key",
		Severity:    types.SevCritical,
		Description: "SendGrid API key",
		Remediation: "Delete the key under SendGrid API keys and create a restricted one.",
		Matcher:     rx(`\bSG\.[A-Za-z0-9_-]{16,32}\.[A-Za-z0-9_-]{16,64}\b`),
	},
	{
		Name:        "Twilio Account SID",
		Severity:    types.SevInfo,
		Description: "Twilio account identifier; not a secret by itself but pairs with the auth token",
		Remediation: "No rotation needed, but verify the auth token near it has not leaked too.",
		Matcher:     rx(`\bAC[0-9a-fA-F]{32}\b`),
	},
	{
		Name:        "Twilio API Key SID",
		Severity:    types.SevWarning,
		Description: "Twilio API key identifier",
		Remediation: "Delete the API key in the Twilio console if its secret may have leaked.",
		Matcher:     rx(`\bSK[0-9a-fA-F]{32}\b`),
	},
	{
		Name:        "Mailgun API Key",
		Severity:    types.SevCritical,
		Description: "Mailgun private API key",
		Remediation: "Regenerate the key under Mailgun security settings.",
		Matcher:     rx(`\bkey-[0-9a-f]{32}\b`),
	},
	{
		Name:        "Shopify Access Token",
		Severity:    types.SevCritical,
		Description: "Shopify admin/app access token",
		Remediation: "Uninstall and reinstall the app, or rotate the token via the Partners dashboard.",
		Matcher:     rx(`\bshp(?:at|ca|pa|ss)_[0-9a-fA-F]{32}\b`),
	},
	{
		Name:        "Notion Integration Token",
		Severity:    types.SevCritical,
		Description: "Notion internal integration token",
		Remediation: "Rotate the token in the Notion integration settings.",
		Matcher:     rx(`\bsecret_[A-Za-z0-9]{43}\b`),
	},
	{
		Name:        "Linear API Key",
		Severity:    types.SevCritical,
		Description: "Linear API key",
		Remediation: "Revoke the key under Linear security settings.",
		Matcher:     rx(`\blin_api_[A-Za-z0-9]{40,}\b`),
	},
	{
		Name:        "Datadog API Key",
		Severity:    types.SevCritical,
		Description: "32-char hex key assigned near a Datadog-specific name",
		Remediation: "Revoke the key under Datadog organization settings.",
		Matcher:     rxg(`(?i)(?:datadog|dd)_?(?:api_?)?key["'\s:=]+([0-9a-f]{32})\b`, 1),
	},
	{
		Name:        "New Relic API Key",
		Severity:    types.SevCritical,
		Description: "New Relic API key",
		Remediation: "Delete the key under New Relic API keys.",
		Matcher:     rx(`\b(?:NRAK|NRAL|NRII|NRAA)-[A-Z0-9]{27,}\b`),
	},
	{
		Name:        "Snyk API Token",
		Severity:    types.SevCritical,
		Description: "UUID-shaped token assigned near a Snyk-specific name",
		Remediation: "Revoke the token under Snyk account settings.",
		Matcher:     rxg(`(?i)snyk[A-Za-z0-9_-]*["'\s:=]+([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})\b`, 1),
	},
	{
		Name:        "PostHog Project API Key",
		Severity:    types.SevInfo,
		Description: "PostHog project (write-only) API key",
		Remediation: "Project keys are public by design, but rotate if paired with a personal key.",
		Matcher:     rx(`\bphc_[A-Za-z0-9]{32,}\b`),
	},
	{
		Name:        "PostHog Personal API Key",
		Severity:    types.SevCritical,
		Description: "PostHog personal API key",
		Remediation: "Revoke the key under PostHog personal settings.",
		Matcher:     rx(`\bphx_[A-Za-z0-9]{32,}\b`),
	},
	{
		Name:        "Okta SSWS Token",
		Severity:    types.SevCritical,
		Description: "Okta API token in an SSWS authorization scheme",
		Remediation: "Revoke the token in the Okta admin console.",
		Matcher:     rxg(`\bSSWS\s+([A-Za-z0-9._-]{40,})\b`, 1),
	},
	{
		Name:        "Telegram Bot Token",
		Severity:    types.SevCritical,
		Description: "Telegram bot API token",
		Remediation: "Revoke via @BotFather with /revoke.",
		Matcher:     rx(`\b\d{8,10}:AA[A-Za-z0-9_-]{33}\b`),
	},
	{
		Name:        "Netlify Access Token",
		Severity:    types.SevWarning,
		Description: "Netlify personal access token",
		Remediation: "Revoke under Netlify user applications.",
		Matcher:     rx(`\bnf[pc]?_[A-Za-z0-9]{20,}\b`),
	},
	{
		Name:        "Vercel Token",
		Severity:    types.SevCritical,
		Description: "Vercel API token",
		Remediation: "Delete the token under Vercel account tokens.",
		Matcher:     rx(`\bvercel_[A-Za-z0-9]{24,}\b`),
	},
	{
		Name:        "Airtable Personal Access Token",
		Severity:    types.SevCritical,
		Description: "Airtable PAT",
		Remediation: "Revoke the token at airtable.com/create/tokens.",
		Matcher:     rx(`\bpat[A-Za-z0-9]{14}\.[a-f0-9]{64}\b`),
	},
	{
		Name:        "Sentry Auth Token",
		Severity:    types.SevCritical,
		Description: "Sentry organization auth token",
		Remediation: "Revoke the token under Sentry auth tokens.",
		Matcher:     rx(`\bsntrys_[A-Za-z0-9_-]{40,}\b`),
	},
	{
		Name:        "Sentry DSN",
		Severity:    types.SevWarning,
		Description: "Sentry DSN with embedded public key",
		Remediation: "Rotate the DSN key if it was exposed outside your deployment.",
		Matcher:     rx(`https://[0-9a-f]{32}@o\d+\.ingest\.sentry\.io/\d+`),
	},
}
