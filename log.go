package waypoint

import (
	"maps"
	"net/url"
)

// LogMaskVal stands in for a credential in logged request URIs.
const LogMaskVal = "xxxxxx"

// credentialParams are the query params clients send credentials in.
// Supabase redirects carry access_token and refresh_token.
var credentialParams = []string{"access_token", "password", "refresh_token", "token"}

// MaskCredentials copies vals, replacing the values of every credential param
// with a single LogMaskVal.
//
// vals is never modified.
func MaskCredentials(vals url.Values) url.Values {
	masked := maps.Clone(vals)
	for _, key := range credentialParams {
		if masked.Has(key) {
			masked.Set(key, LogMaskVal)
		}
	}

	return masked
}
