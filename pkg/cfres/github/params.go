// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package github

// NormalizeParams returns a copy of the hook configuration ready to send to GitHub.
// CloudFormation passes every scalar property as a string, so an "active" of "true"
// or "false" is turned back into a boolean. Every other field is passed through.
func NormalizeParams(params map[string]any) map[string]any {
	normalized := make(map[string]any, len(params))
	for key, value := range params {
		normalized[key] = value
	}

	if active, ok := normalized["active"].(string); ok {
		switch active {
		case "true":
			normalized["active"] = true
		case "false":
			normalized["active"] = false
		}
	}

	return normalized
}
