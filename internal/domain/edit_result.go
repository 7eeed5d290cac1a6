package domain

// EditResult is the immutable outcome of attempting to change one field of a
// task: either success, or failure carrying a human-readable reason.
type EditResult struct {
	ok     bool
	reason string
}

// EditOK returns a successful edit result.
func EditOK() EditResult {
	return EditResult{ok: true}
}

// EditFailed returns a failed edit result with the given reason.
func EditFailed(reason string) EditResult {
	return EditResult{reason: reason}
}

// OK reports whether the edit succeeded.
func (r EditResult) OK() bool {
	return r.ok
}

// Reason returns the failure reason, empty on success.
func (r EditResult) Reason() string {
	return r.reason
}
