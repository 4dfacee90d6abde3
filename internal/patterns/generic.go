package patterns

import "github.com/envgrade/envgrade/internal/types"

// genericPatterns is the fallback tier: low-confidence catch-alls applied
// after every specific pattern. Entries here are never critical, so a
// specific pattern always gets the chance to produce the higher-severity
// finding for the same text.
var genericPatterns = []Pattern{
	{
		Name:        "Generic Secret Assignment",
		Severity:    types.SevWarning,
		Description: "secret/password/token/key-named variable assigned a literal value",
		Remediation: "Move the value out of the file and into your secret manager or CI secret store.",
		Matcher:     rxg(`(?i)\b[A-Za-z0-9_]*(?:secret|password|passwd|token|api_?key|key)[A-Za-z0-9_]*\s*[:=]\s*["']?([^\s"']{8,})`, 1),
	},
}
