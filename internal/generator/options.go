package generator

const (
	DefaultSteps = 40
	MaxSteps     = 100000
)

// Options configures board scrambling behavior.
type Options struct {
	Size  int   // Side length of the generated boards
	Steps int   // Number of random blank slides applied to the goal board
	Seed  int64 // Seed for reproducible boards (0 = time-based)
}

// DefaultOptions returns standard scrambler options for a k×k board.
func DefaultOptions(k int) *Options {
	return &Options{
		Size:  k,
		Steps: DefaultSteps,
		Seed:  0,
	}
}
