// Package workers runs the application's background loops.
//
// A [Worker] blocks until its context is cancelled. [Workers] starts a set
// of them side by side and returns once every one has stopped.
package workers

import "context"

// Worker is a long-running background job.
//
// Run must return promptly after ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
