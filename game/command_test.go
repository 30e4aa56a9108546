package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueFIFO(t *testing.T) {
	var q Queue
	q.Push(Move(-1))
	q.Push(Rotate())
	q.Push(Tick())
	assert.Equal(t, 3, q.Len())

	cmd, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, Move(-1), cmd)

	q.Push(Move(1))
	for _, want := range []Command{Rotate(), Tick(), Move(1)} {
		cmd, ok = q.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, cmd)
	}

	_, ok = q.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())

	q.Push(Tick())
	q.Clear()
	assert.Equal(t, 0, q.Len())
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "move(-1)", Move(-1).String())
	assert.Equal(t, "move(+1)", Move(1).String())
	assert.Equal(t, "rotate", Rotate().String())
	assert.Equal(t, "command(9)", CommandKind(9).String())
}

func TestDirectionAt(t *testing.T) {
	assert.Equal(t, -1, DirectionAt(0, 300))
	assert.Equal(t, -1, DirectionAt(149.9, 300))
	assert.Equal(t, 1, DirectionAt(150, 300))
	assert.Equal(t, 1, DirectionAt(299, 300))
}
