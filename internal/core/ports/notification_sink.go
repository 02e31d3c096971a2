package ports

import "context"

// NotificationSink receives human-readable success/warning/error messages.
// The workflow calls it with the text a toast would display; it does not
// depend on how (or whether) the sink renders them.
type NotificationSink interface {
	Success(ctx context.Context, message string)
	Warning(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}
