package myhttp

import (
	"fmt"
	"net/http"
	"os"
)

func HostnameWithScheme(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// GuessHostnameWithScheme derives the externally reachable base URL when no
// request is at hand, like when registering pubsub push-subscriptions.
func GuessHostnameWithScheme() string {
	hostname := os.Getenv("SERVICE_HOSTNAME")
	if hostname != "" {
		return "https://" + hostname
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return fmt.Sprintf("http://localhost:%s", port)
}
