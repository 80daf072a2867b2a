// Package workers runs the background jobs of the catalog server.
// It defines the Worker interface and a Workers aggregate that starts and
// stops every configured worker together.
package workers

import "context"

// Worker is a background job bound to the lifetime of the server.
//
// Run must not block: implementations start their own goroutines and keep
// going until ctx is cancelled or Stop is called. Stop blocks until the
// worker has finished.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
