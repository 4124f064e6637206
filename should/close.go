// Package should holds cleanup helpers whose failures are logged rather than
// returned, for use in defer statements.
package should

import (
	"io"

	"github.com/amp-labs/objectgraph/logger"
)

// Close closes closer and logs msg at error level if that fails.
//
// Example:
//
//	defer should.Close(f, "closing record file")
func Close(closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger.Get().Error(msg, "error", err)
	}
}
