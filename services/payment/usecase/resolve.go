package usecase

// ResolveTranID picks the transaction identifier from the three places the
// gateway may deliver it, with fixed precedence: request body, then path
// parameter, then query string. Returns "" when none carries a value.
func ResolveTranID(body, path, query string) string {
	return firstNonEmpty(body, path, query)
}

// ResolveValID picks the validation identifier, preferring the query string
// over the request body, which is how the gateway delivers it on the
// browser-redirect leg.
func ResolveValID(query, body string) string {
	return firstNonEmpty(query, body)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
