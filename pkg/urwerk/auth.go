package urwerk

import (
	"encoding/base64"
	"strings"
)

// MaintenanceUser is the account used for factory maintenance endpoints.
const MaintenanceUser = "production-msh"

// BasicAuth returns a Basic Authorization header value for user and secret.
// Newlines are stripped from the joined credentials before encoding.
func BasicAuth(user, secret string) string {
	credentials := strings.ReplaceAll(user+":"+secret, "\n", "")

	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}

// TokenAuth returns a Token Authorization header value.
func TokenAuth(token string) string {
	return "Token " + token
}

// AuthHeader wraps an Authorization value in a header map.
func AuthHeader(value string) map[string]string {
	return map[string]string{"Authorization": value}
}
