package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A - move left
	ActionRight        // D - move right
	ActionFire         // Space - fire a projectile
	ActionQuit         // Q - end the game immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeySource is a non-blocking keyboard.
// ReadKey is only called after HasPendingKey returned true.
type KeySource interface {
	HasPendingKey() bool
	ReadKey() rune
}

// InputFrame represents the input for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// KeyQueue is a bounded FIFO of key presses implementing KeySource.
// Platforms that receive keys as events push them here and the game loop
// drains one per tick, the way a console keyboard buffer behaves.
type KeyQueue struct {
	keys []rune
	cap  int
}

// DefaultKeyQueueSize bounds how many unread keys are kept.
const DefaultKeyQueueSize = 16

// NewKeyQueue creates a queue holding at most size keys.
// Keys pushed while the queue is full are dropped.
func NewKeyQueue(size int) *KeyQueue {
	if size <= 0 {
		size = DefaultKeyQueueSize
	}
	return &KeyQueue{keys: make([]rune, 0, size), cap: size}
}

// Push appends a key. It reports false if the key was dropped.
func (q *KeyQueue) Push(r rune) bool {
	if len(q.keys) >= q.cap {
		return false
	}
	q.keys = append(q.keys, r)
	return true
}

// HasPendingKey reports whether a key is waiting.
func (q *KeyQueue) HasPendingKey() bool {
	return len(q.keys) > 0
}

// ReadKey pops the oldest key. It returns 0 when the queue is empty.
func (q *KeyQueue) ReadKey() rune {
	if len(q.keys) == 0 {
		return 0
	}
	r := q.keys[0]
	q.keys = q.keys[1:]
	return r
}

// Len returns the number of queued keys.
func (q *KeyQueue) Len() int {
	return len(q.keys)
}

// Reset discards all queued keys.
func (q *KeyQueue) Reset() {
	q.keys = q.keys[:0]
}
