package digitalocean

import (
	"errors"
	"net/http"

	"github.com/digitalocean/godo"
)

// isStatusCode checks if the error is a DigitalOcean API error with one of
// the given HTTP status codes.
func isStatusCode(err error, codes ...int) bool {
	if err == nil {
		return false
	}

	var apiErr *godo.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		for _, code := range codes {
			if apiErr.Response.StatusCode == code {
				return true
			}
		}
	}
	return false
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return isStatusCode(err, http.StatusNotFound)
}

// IsUnauthorized checks if an error indicates a missing or invalid token.
func IsUnauthorized(err error) bool {
	return isStatusCode(err, http.StatusUnauthorized)
}

// IsRateLimited checks if an error indicates API rate limiting.
func IsRateLimited(err error) bool {
	return isStatusCode(err, http.StatusTooManyRequests)
}
