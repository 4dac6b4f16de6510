package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulkResultPartialOutcome(t *testing.T) {
	var result BulkResult

	// four items, one bad: the batch keeps going and reports both sides
	for _, id := range []uint{1, 2, 4} {
		result.Succeed(id)
	}
	result.Fail(3, "order not found")

	assert.Len(t, result.Updated, 3)
	assert.Len(t, result.Failed, 1)
	assert.Equal(t, uint(3), result.Failed[0].ID)
	assert.Equal(t, "order not found", result.Failed[0].Reason)
}
