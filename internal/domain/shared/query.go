package shared

// Selector holds filter criteria used to match records.
// Keys are entity-specific and interpreted by each repository.
type Selector struct {
	Search  string
	Filters map[string]any
}

// NewSelector returns an empty selector
func NewSelector() Selector {
	return Selector{Filters: make(map[string]any)}
}

// With adds a filter criterion and returns the selector for chaining
func (s Selector) With(key string, value any) Selector {
	if s.Filters == nil {
		s.Filters = make(map[string]any)
	}
	s.Filters[key] = value
	return s
}

// FindConfig holds pagination, ordering and relation-inclusion options
// for a query.
type FindConfig struct {
	Skip      int
	Take      int
	OrderBy   string
	OrderDir  string
	Relations []string
}

// DefaultTake is the page size applied when a FindConfig does not set one.
const DefaultTake = 50

// DefaultFindConfig returns a find config with default values
func DefaultFindConfig() FindConfig {
	return FindConfig{
		Skip:     0,
		Take:     DefaultTake,
		OrderBy:  "created_at",
		OrderDir: "desc",
	}
}

// Normalize fills in default pagination values for zero or negative inputs
func (c FindConfig) Normalize() FindConfig {
	if c.Skip < 0 {
		c.Skip = 0
	}
	if c.Take <= 0 {
		c.Take = DefaultTake
	}
	if c.OrderBy == "" {
		c.OrderBy = "created_at"
	}
	if c.OrderDir == "" {
		c.OrderDir = "desc"
	}
	return c
}
