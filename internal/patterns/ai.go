package patterns

import "github.com/envgrade/envgrade/internal/types"

// AI provider API keys. Anthropic and OpenRouter are registered before the
// broader OpenAI-style sk- shape so the more specific name wins catalog
// order; both may still fire on one token, which dedup keeps distinct.
var aiPatterns = []Pattern{
	{
		Name:        "Anthropic API Key",
		Severity:    types.SevCritical,
		Description: "Anthropic API key",
		Remediation: "Disable the key in the Anthropic console and mint a workspace-scoped one.",
		Matcher:     rx(`\bsk-ant-[A-Za-z0-9_-]{30,}\b`),
	},
	{
		Name:        "OpenRouter API Key",
		Severity:    types.SevCritical,
		Description: "OpenRouter API key",
		Remediation: "Revoke the key in the OpenRouter dashboard.",
		Matcher:     rx(`\bsk-or-v1-[A-Za-z0-9_-]{20,}\b`),
	},
	{
		Name:        "OpenAI API Key",
		Severity:    types.SevCritical,
		Description: "OpenAI API key (classic T3BlbkFJ or project-scoped form)",
		Remediation: "Revoke the key at platform.openai.com/api-keys.",
		Matcher:     rx(`\bsk-(?:proj-[A-Za-z0-9_-]{20,}|[A-Za-z0-9]{20}T3BlbkFJ[A-Za-z0-9]{20})\b`),
	},
	{
		Name:        "OpenAI-Style Secret Key",
		Severity:    types.SevWarning,
		Description: "generic sk- prefixed secret key",
		Remediation: "Identify the issuing provider and rotate the key there.",
		Matcher:     rx(`\bsk-[A-Za-z0-9]{32,}\b`),
	},
	{
		Name:        "Groq API Key",
		Severity:    types.SevCritical,
		Description: "Groq API key",
		Remediation: "Revoke the key in the Groq console.",
		Matcher:     rx(`\bgsk_[A-Za-z0-9]{30,}\b`),
	},
	{
		Name:        "Perplexity API Key",
		Severity:    types.SevCritical,
		Description: "Perplexity API key",
		Remediation: "Revoke the key in Perplexity API settings.",
		Matcher:     rx(`\bpplx-[A-Za-z0-9]{30,}\b`),
	},
	{
		Name:        "Replicate API Token",
		Severity:    types.SevCritical,
		Description: "Replicate API token",
		Remediation: "Revoke the token at replicate.com/account.",
		Matcher:     rx(`\br8_[A-Za-z0-9]{30,}\b`),
	},
	{
		Name:        "Hugging Face Token",
		Severity:    types.SevCritical,
		Description: "Hugging Face user access token",
		Remediation: "Invalidate the token under Hugging Face access tokens.",
		Matcher:     rx(`\bhf_[A-Za-z0-9]{30,}\b`),
	},
	{
		Name:        "Weights & Biases API Key",
		Severity:    types.SevCritical,
		Description: "40-char hex key assigned near a wandb-specific name",
		Remediation: "Rotate the key at wandb.ai/authorize.",
		Matcher:     rxg(`(?i)wandb[A-Za-z0-9_-]*["'\s:=]+([a-f0-9]{40})\b`, 1),
	},
	{
		Name:        "Cohere API Key",
		Severity:    types.SevCritical,
		Description: "key-shaped value assigned near a Cohere-specific name",
		Remediation: "Revoke the key in the Cohere dashboard.",
		Matcher:     rxg(`(?i)cohere[A-Za-z0-9_-]*["'\s:=]+([A-Za-z0-9]{40})\b`, 1),
	},
	{
		Name:        "Mistral API Key",
		Severity:    types.SevCritical,
		Description: "key-shaped value assigned near a Mistral-specific name",
		Remediation: "Revoke the key in the Mistral console.",
		Matcher:     rxg(`(?i)mistral[A-Za-z0-9_-]*["'\s:=]+([A-Za-z0-9]{32})\b`, 1),
	},
}
