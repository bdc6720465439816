package client

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// CreateHTTPClient returns the client used for the employee endpoint.
// A zero timeout leaves requests bounded only by their context.
func CreateHTTPClient(log *zap.Logger, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			log.Debug("redirected", zap.Stringer("url", req.URL), zap.Int("hops", len(via)))

			return nil
		},
	}
}
