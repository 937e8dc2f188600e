package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_PushPopOrder(t *testing.T) {
	var q Queue

	q.PushBack(1)
	q.PushBack(2)
	q.PushBack(3)

	assert.Equal(t, 3, q.Len())

	front, ok := q.PeekFront()
	assert.True(t, ok)
	assert.Equal(t, int64(1), front)

	assert.Equal(t, int64(1), q.PopFront())
	assert.Equal(t, int64(2), q.PopFront())
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, int64(3), q.PopFront())
	assert.Equal(t, 0, q.Len())
}

func TestQueue_PeekFrontEmpty(t *testing.T) {
	var q Queue
	_, ok := q.PeekFront()
	assert.False(t, ok)
}

func TestQueue_InterleavedPushPop(t *testing.T) {
	var q Queue

	q.PushBack(10)
	q.PushBack(20)
	assert.Equal(t, int64(10), q.PopFront())
	q.PushBack(30)
	q.PushBack(40)
	assert.Equal(t, int64(20), q.PopFront())
	assert.Equal(t, int64(30), q.PopFront())
	assert.Equal(t, int64(40), q.PopFront())
	assert.Equal(t, 0, q.Len())
}

func TestQueue_CompactsUnderSustainedUse(t *testing.T) {
	var q Queue

	for i := int64(0); i < 1000; i++ {
		q.PushBack(i)
		assert.Equal(t, i, q.PopFront())
	}
	assert.Equal(t, 0, q.Len())
}
