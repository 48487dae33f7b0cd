// Package template fills counselor response templates with
// session-specific personalization placeholders.
package template

import "strings"

const (
	firstNameToken   = "{first_name}"
	partnerNameToken = "{partner_name}"

	// Shown when the user never provided a partner name.
	defaultPartnerName = "your partner"
)

// Render substitutes every occurrence of {first_name} and {partner_name} in
// the template. A missing first name renders as an empty string; a missing
// or empty partner name falls back to "your partner". Any other {...} token
// passes through unchanged. Render never fails.
func Render(template, firstName, partnerName string) string {
	if partnerName == "" {
		partnerName = defaultPartnerName
	}

	rendered := strings.ReplaceAll(template, firstNameToken, firstName)
	rendered = strings.ReplaceAll(rendered, partnerNameToken, partnerName)
	return rendered
}
