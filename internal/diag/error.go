package diag

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Err aggregates every error-severity log into a single Go error backed by
// hashicorp/go-multierror, for callers that only want one error value
// alongside the full diagnostic stream. It returns nil if Failed() is
// false. This is a secondary, Go-idiomatic view of the log stream; it
// never replaces the structured Logs()/Format() path.
func (c *Context) Err() error {
	var result *multierror.Error
	for _, log := range c.logs {
		for _, part := range log.Parts {
			if part.Level != SeverityError {
				continue
			}
			if part.Snippet != nil {
				result = multierror.Append(result, fmt.Errorf("%s:%d:%d: %s",
					part.Snippet.Path, part.Snippet.LineStart.Line, part.Snippet.Cursor.StartColumn, part.Msg))
			} else {
				result = multierror.Append(result, fmt.Errorf("%s", part.Msg))
			}
		}
	}
	return result.ErrorOrNil()
}
