// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package props

import (
	"encoding/json"
)

const redacted = "****"

// SensitiveFields are resource properties that never leave the function in clear text.
var SensitiveFields = []string{"ApiToken"}

// Redact returns a copy of the properties document with every sensitive field masked.
// Documents that are not JSON objects are dropped entirely rather than logged as-is.
func Redact(properties json.RawMessage) json.RawMessage {
	if len(properties) == 0 {
		return properties
	}

	var propsMap map[string]any
	if err := json.Unmarshal(properties, &propsMap); err != nil {
		return json.RawMessage(`"` + redacted + `"`)
	}

	for _, field := range SensitiveFields {
		if _, ok := propsMap[field]; ok {
			propsMap[field] = redacted
		}
	}

	masked, err := json.Marshal(propsMap)
	if err != nil {
		return json.RawMessage(`"` + redacted + `"`)
	}
	return masked
}

// Decode unmarshals the properties document into v. An empty document leaves v untouched.
func Decode(properties json.RawMessage, v any) error {
	if len(properties) == 0 {
		return nil
	}
	return json.Unmarshal(properties, v)
}
