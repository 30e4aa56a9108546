package game

import "fmt"

// CommandKind enumerates the mutations a session can apply to its engine.
type CommandKind uint8

const (
	CommandTick CommandKind = iota
	CommandMove
	CommandRotate
	CommandRestart
)

func (k CommandKind) String() string {
	switch k {
	case CommandTick:
		return "tick"
	case CommandMove:
		return "move"
	case CommandRotate:
		return "rotate"
	case CommandRestart:
		return "restart"
	default:
		return fmt.Sprintf("command(%d)", uint8(k))
	}
}

// Command is one queued engine mutation. Dir is only meaningful for CommandMove.
type Command struct {
	Kind CommandKind
	Dir  int
}

func (c Command) String() string {
	if c.Kind == CommandMove {
		return fmt.Sprintf("move(%+d)", c.Dir)
	}
	return c.Kind.String()
}

// Tick returns a gravity command.
func Tick() Command { return Command{Kind: CommandTick} }

// Move returns a horizontal move command.
func Move(dir int) Command { return Command{Kind: CommandMove, Dir: dir} }

// Rotate returns a rotation command.
func Rotate() Command { return Command{Kind: CommandRotate} }

// Queue is a FIFO of commands.
type Queue struct {
	items []Command
	head  int
}

// Push appends cmd to the back of the queue.
func (q *Queue) Push(cmd Command) {
	q.items = append(q.items, cmd)
}

// Pop removes and returns the front command.
func (q *Queue) Pop() (Command, bool) {
	if q.head >= len(q.items) {
		return Command{}, false
	}
	cmd := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return cmd, true
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Clear drops every pending command.
func (q *Queue) Clear() {
	q.items = q.items[:0]
	q.head = 0
}
