package patterns

import "github.com/envgrade/envgrade/internal/types"

// Cryptographic material and bearer credentials.
var keyPatterns = []Pattern{
	{
		Name:        "Private Key (PEM)",
		Severity:    types.SevCritical,
		Description: "PEM-encoded private key header",
		Remediation: "Treat the key as compromised: generate a new keypair and revoke anything signed with this one.",
		Matcher:     rx(`-----BEGIN (?:RSA |EC |DSA |OPENSSH |PGP |ENCRYPTED )?PRIVATE KEY(?: BLOCK)?-----`),
	},
	{
		Name:        "JSON Web Token",
		Severity:    types.SevWarning,
		Description: "three-part base64url JWT",
		Remediation: "Invalidate the session or signing key if the token is still within its validity window.",
		Matcher:     rx(`\beyJ[A-Za-z0-9_-]{8,}\.[A-Za-z0-9_-]{8,}\.[A-Za-z0-9_-]{8,}\b`),
	},
	{
		Name:        "Bearer Token",
		Severity:    types.SevCritical,
		Description: "Authorization header with a bearer credential",
		Remediation: "Revoke the token with its issuer; headers in logs and snippets are frequently copied around.",
		Matcher:     rxg(`(?i)authorization["'\s:=]+bearer\s+([A-Za-z0-9._~+/=-]{16,})`, 1),
	},
	{
		Name:        "Basic Auth Header",
		Severity:    types.SevCritical,
		Description: "Authorization header with base64 basic credentials",
		Remediation: "Change the password behind the credential; base64 is not encryption.",
		Matcher:     rxg(`(?i)authorization["'\s:=]+basic\s+([A-Za-z0-9+/=]{16,})`, 1),
	},
}
