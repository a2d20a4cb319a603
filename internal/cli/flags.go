package cli

import "tdep/internal/config"

// Flags holds command-line flags
type Flags struct {
	Plan          string
	Filter        string
	IgnoreUnknown bool
	Reorder       bool
	FailFast      bool
	OnlyFailed    bool
	Record        bool
	Deps          bool
	Order         bool
	Limit         int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Plan:          f.Plan,
		Filter:        f.Filter,
		IgnoreUnknown: f.IgnoreUnknown,
		Reorder:       f.Reorder,
		FailFast:      f.FailFast,
		OnlyFailed:    f.OnlyFailed,
		Record:        f.Record,
		Deps:          f.Deps,
		Order:         f.Order,
		Limit:         f.Limit,
	}
}
