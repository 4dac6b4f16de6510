package utils

// BulkFailure reports why one item of a bulk operation failed
type BulkFailure struct {
	ID     uint   `json:"id"`
	Reason string `json:"reason"`
}

// BulkResult carries the partial-success outcome of a bulk operation. Every
// item is attempted independently; the batch never aborts on the first
// failure.
type BulkResult struct {
	Updated []uint        `json:"updated"`
	Failed  []BulkFailure `json:"failed"`
}

// Succeed records a successful item
func (r *BulkResult) Succeed(id uint) {
	r.Updated = append(r.Updated, id)
}

// Fail records a failed item with its reason
func (r *BulkResult) Fail(id uint, reason string) {
	r.Failed = append(r.Failed, BulkFailure{ID: id, Reason: reason})
}
