package http

import "strings"

// JoinEndpoint glues a service base URL and an endpoint name together without
// doubling or dropping the separator.
func JoinEndpoint(baseURL, endpoint string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}
