package settings

// Provider supplies per-user planning settings. Settings storage lives in the
// auth/settings service, not here; the core only reads the capacity ceiling.
type Provider interface {
	MaxTopPriorities(userID string) int
}

const DefaultMaxTopPriorities = 3

// Static serves the same ceiling for every user, sourced from config.
type Static struct {
	Max int
}

func NewStatic(max int) *Static {
	if max <= 0 {
		max = DefaultMaxTopPriorities
	}
	return &Static{Max: max}
}

func (s *Static) MaxTopPriorities(userID string) int {
	return s.Max
}
