package patterns

import "github.com/envgrade/envgrade/internal/types"

const uriRemediation = "Rotate the database password and move the URI into your secret manager."

// Connection URIs with embedded basic-auth credentials. The span covers only
// the password portion. The generic URL entry is intentionally last within
// this group so scheme-specific names win catalog order.
var uriPatterns = []Pattern{
	{
		Name:        "PostgreSQL URI with Credentials",
		Severity:    types.SevCritical,
		Description: "postgres:// URI with an embedded password",
		Remediation: uriRemediation,
		Matcher:     rxg(`\bpostgres(?:ql)?://[^\s:@/]+:([^\s@/]+)@[^\s/]+`, 1),
	},
	{
		Name:        "MySQL URI with Credentials",
		Severity:    types.SevCritical,
		Description: "mysql:// URI with an embedded password",
		Remediation: uriRemediation,
		Matcher:     rxg(`\bmysql://[^\s:@/]+:([^\s@/]+)@[^\s/]+`, 1),
	},
	{
		Name:        "MongoDB URI with Credentials",
		Severity:    types.SevCritical,
		Description: "mongodb:// or mongodb+srv:// URI with an embedded password",
		Remediation: uriRemediation,
		Matcher:     rxg(`\bmongodb(?:\+srv)?://[^\s:@/]+:([^\s@/]+)@[^\s/]+`, 1),
	},
	{
		Name:        "Redis URI with Credentials",
		Severity:    types.SevCritical,
		Description: "redis:// URI with an embedded password",
		Remediation: "Rotate the Redis AUTH password and re-deploy clients.",
		Matcher:     rxg(`\bredis(?:s|\+ssl)?://[^\s:@/]*:([^\s@/]+)@`, 1),
	},
	{
		Name:        "AMQP URI with Credentials",
		Severity:    types.SevCritical,
		Description: "amqp:// broker URI with an embedded password",
		Remediation: "Rotate the broker user's password and restrict its vhost permissions.",
		Matcher:     rxg(`\bamqps?://[^\s:@/]+:([^\s@/]+)@`, 1),
	},
	{
		Name:        "SQL Server URI with Credentials",
		Severity:    types.SevCritical,
		Description: "sqlserver:// URI with an embedded password",
		Remediation: uriRemediation,
		Matcher:     rxg(`\bsqlserver://[^\s:@/;]+:([^\s@/;]+)@`, 1),
	},
	{
		Name:        "Cloudinary URL",
		Severity:    types.SevCritical,
		Description: "cloudinary:// URL carrying the API secret",
		Remediation: "Regenerate the API secret in the Cloudinary console.",
		Matcher:     rxg(`\bcloudinary://\d{6,}:([A-Za-z0-9_-]{10,})@`, 1),
	},
	{
		Name:        "URL with Basic Auth",
		Severity:    types.SevWarning,
		Description: "URL of any scheme with user:password@ credentials",
		Remediation: "Strip the credentials from the URL and supply them out of band.",
		Matcher:     rxg(`\b[a-z][a-z0-9+.-]*://[^\s:@/]+:([^\s@/]+)@[^\s]+`, 1),
	},
}
