package http

import (
	"strings"

	"github.com/neusy/urwerk-client/pkg/urwerk"
)

// BuildURL joins root, the endpoint segments and the encoded params.
// root is expected without a trailing slash. Segments are inserted verbatim,
// so a segment may itself contain "/".
func BuildURL(root string, endpoint urwerk.Endpoint, params urwerk.Params) (string, error) {
	var builder strings.Builder

	builder.WriteString(root)

	if len(endpoint) > 0 {
		builder.WriteByte('/')
		builder.WriteString(endpoint.String())
	}

	if len(params) > 0 {
		query, err := params.Encode()
		if err != nil {
			return "", err
		}

		builder.WriteByte('?')
		builder.WriteString(query)
	}

	return builder.String(), nil
}
