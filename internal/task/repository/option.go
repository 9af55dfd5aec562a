package repository

import "georeminder/internal/model"

// ListTasksOptions holds filter parameters for listing tasks.
type ListTasksOptions struct {
	// Completed filters on completion state when set.
	Completed *bool
	// NewestFirst orders by creation time descending (task history view).
	NewestFirst bool
}

// ApplyActivationOptions holds the post-activation write. Task carries the
// already-mutated ledger fields; PrevActivations is the counter value the
// trigger decision was evaluated against.
type ApplyActivationOptions struct {
	Task            model.Task
	PrevActivations int
}
