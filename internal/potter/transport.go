package potter

import (
	"log/slog"
	"net/http"
	"time"
)

// LoggingTransport is an http.RoundTripper that logs each outbound request
// and its response status at debug level.
type LoggingTransport struct {
	Base   http.RoundTripper
	Logger *slog.Logger
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.Logger == nil {
		return base.RoundTrip(req)
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start)
	if err != nil {
		t.Logger.Debug("outbound request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"elapsed", elapsed,
			"error", err)
		return resp, err
	}
	t.Logger.Debug("outbound request",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"elapsed", elapsed)
	return resp, nil
}
