// Package potter provides an HTTP client for the public Harry Potter books API.
//
// # Overview
//
// Shelf needs exactly one thing from the API: a random book. The client
// issues GET /{lang}/books/random against the configured base URL and
// decodes the body into a Book.
//
//	client, err := potter.NewClient("", potter.WithLanguage("en"))
//	if err != nil {
//		return err
//	}
//	book, err := client.FetchRandomBook(ctx)
//
// # Book Shape
//
// The API returns more fields than Shelf displays. Book keeps the ones the
// screens use plus the localized title and index, which are passed through
// untouched. Number is the series position and the only identity key; the
// favorites store deduplicates on it.
//
// Decoded books are checked with go-playground/validator before they are
// returned:
//
//   - number: required, greater than zero
//   - originalTitle: required
//   - pages: not negative
//   - cover: a URL when present
//
// A payload that fails the check is reported as a fetch failure rather than
// rendered half-empty.
//
// # Error Handling
//
// Every failure from FetchRandomBook is a *FetchError carrying the stage
// that failed (request, status, decode, validate). Callers that only care
// whether the fetch failed use errors.Is(err, potter.ErrFetch).
//
// There are no retries. The http.Client has a fixed timeout so the loading
// screen cannot spin forever on a dead network.
//
// # Testing
//
// BookFetcher is the interface the UI depends on. Tests either fake it or
// point a real Client at an httptest.Server.
package potter
