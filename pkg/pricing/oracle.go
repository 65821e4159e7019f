// Package pricing holds round-trip price sources: a local heuristic used for
// demos and tests, an HTTP client for a remote pricing service, and a
// cache decorator.
package pricing

import "context"

// Oracle prices one round trip between two calendar dates (YYYY-MM-DD).
type Oracle interface {
	GetPrice(ctx context.Context, origin, destination, departDate, returnDate string) (float64, error)
}

// PriceQuote is the wire format of the remote pricing service.
type PriceQuote struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Depart      string  `json:"depart"`
	Return      string  `json:"return"`
	Price       float64 `json:"price"`
}

const dateLayout = "2006-01-02"
