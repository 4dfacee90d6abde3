package patterns

import "github.com/envgrade/envgrade/internal/types"

// Webhook URLs and chat-platform bot tokens. Webhook URLs are capability
// URLs: whoever holds them can post, so they rate warning rather than
// critical.
var webhookPatterns = []Pattern{
	{
		Name:        "Slack Webhook URL",
		Severity:    types.SevWarning,
		Description: "Slack incoming webhook URL",
		Remediation: "Delete and recreate the webhook in the Slack app config.",
		Matcher:     rx(`https://hooks\.slack\.com/services/[A-Z0-9]{9,}/[A-Z0-9]{9,}/[A-Za-z0-9]{24,}`),
	},
	{
		Name:        "Discord Webhook URL",
		Severity:    types.SevWarning,
		Description: "Discord channel webhook URL",
		Remediation: "Delete the webhook in the channel integration settings.",
		Matcher:     rx(`https://discord\.com/api/webhooks/\d+/[A-Za-z0-9_-]+`),
	},
	{
		Name:        "Discord Bot Token",
		Severity:    types.SevCritical,
		Description: "Discord bot token",
		Remediation: "Regenerate the token in the Discord developer portal.",
		Matcher:     rx(`\b[MN][A-Za-z0-9_-]{23}\.[A-Za-z0-9_-]{6}\.[A-Za-z0-9_-]{27}\b`),
	},
	{
		Name:        "Netlify Build Hook",
		Severity:    types.SevWarning,
		Description: "Netlify build hook URL",
		Remediation: "Delete the build hook in the site settings and create a new one.",
		Matcher:     rx(`https://api\.netlify\.com/build_hooks/[A-Za-z0-9]{20,}`),
	},
	{
		Name:        "Zapier Webhook URL",
		Severity:    types.SevWarning,
		Description: "Zapier catch-hook URL",
		Remediation: "Regenerate the hook URL in the Zap's trigger settings.",
		Matcher:     rx(`https://hooks\.zapier\.com/hooks/catch/\d+/[A-Za-z0-9]+`),
	},
	{
		Name:        "IFTTT Webhook URL",
		Severity:    types.SevWarning,
		Description: "IFTTT maker webhook URL",
		Remediation: "Reset the maker key at ifttt.com/maker_webhooks.",
		Matcher:     rx(`https://maker\.ifttt\.com/use/[A-Za-z0-9_-]+`),
	},
}
