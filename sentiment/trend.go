package sentiment

// DefaultWindow is the number of recent turn scores a trend keeps.
const DefaultWindow = 8

// Trend is a fixed-capacity ring buffer over recent per-turn scores.
// Once full, pushing a new score drops the oldest one, bounding memory
// for arbitrarily long sessions. Appended scores are never changed.
type Trend struct {
	scores []int
	head   int
	count  int
}

// NewTrend creates a trend window holding up to capacity scores.
// A non-positive capacity falls back to DefaultWindow.
func NewTrend(capacity int) *Trend {
	if capacity <= 0 {
		capacity = DefaultWindow
	}
	return &Trend{scores: make([]int, capacity)}
}

// Push appends a score, evicting the oldest when the window is full.
func (t *Trend) Push(score int) {
	t.scores[t.head] = score
	t.head = (t.head + 1) % len(t.scores)
	if t.count < len(t.scores) {
		t.count++
	}
}

// Len is the number of scores currently in the window.
func (t *Trend) Len() int {
	return t.count
}

// Average is the mean of the windowed scores, zero when empty.
func (t *Trend) Average() float64 {
	if t.count == 0 {
		return 0
	}
	sum := 0
	for _, s := range t.Scores() {
		sum += s
	}
	return float64(sum) / float64(t.count)
}

// Label classifies the window average.
func (t *Trend) Label() Label {
	avg := t.Average()
	switch {
	case avg > 0:
		return Positive
	case avg < 0:
		return Negative
	default:
		return Neutral
	}
}

// Scores returns the windowed scores oldest-first.
func (t *Trend) Scores() []int {
	out := make([]int, 0, t.count)
	start := t.head - t.count
	if start < 0 {
		start += len(t.scores)
	}
	for i := 0; i < t.count; i++ {
		out = append(out, t.scores[(start+i)%len(t.scores)])
	}
	return out
}
