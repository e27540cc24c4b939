package physics

import "github.com/lixenwraith/astrobits/vmath"

// Trail is a bounded FIFO of positions sampled every stride ticks
type Trail struct {
	points []vmath.Vec2
	head   int // index of oldest point
	n      int

	stride int
	ticks  int
}

// NewTrail creates a trail seeded with the starting position
func NewTrail(capacity, stride int, x, y float64) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	if stride < 1 {
		stride = 1
	}
	t := &Trail{
		points: make([]vmath.Vec2, capacity),
		stride: stride,
	}
	t.push(vmath.Vec2{X: x, Y: y})
	return t
}

// Tick advances the sampling counter and records (x,y) once per stride
// Returns true when a sample was taken
func (t *Trail) Tick(x, y float64) bool {
	t.ticks++
	if t.ticks < t.stride {
		return false
	}
	t.ticks = 0
	t.push(vmath.Vec2{X: x, Y: y})
	return true
}

func (t *Trail) push(p vmath.Vec2) {
	capacity := len(t.points)
	if t.n == capacity {
		// Evict oldest
		t.head = (t.head + 1) % capacity
		t.n--
	}
	t.points[(t.head+t.n)%capacity] = p
	t.n++
}

// Len returns the number of stored points
func (t *Trail) Len() int { return t.n }

// Cap returns the maximum number of stored points
func (t *Trail) Cap() int { return len(t.points) }

// Points returns stored points, oldest first
func (t *Trail) Points() []vmath.Vec2 {
	out := make([]vmath.Vec2, t.n)
	for i := range t.n {
		out[i] = t.points[(t.head+i)%len(t.points)]
	}
	return out
}

// Last returns the most recent sample
func (t *Trail) Last() vmath.Vec2 {
	return t.points[(t.head+t.n-1)%len(t.points)]
}
