package agent

import (
	"fmt"

	"capture/heuristic"
)

type Role int

const (
	Collector Role = iota
	Guardian
)

func (r Role) String() string {
	if r == Collector {
		return "collector"
	}
	return "guardian"
}

// Info identifies one member of a team before it is bound to an engine slot.
type Info struct {
	Name    string
	Role    Role
	Profile heuristic.Profile
}

// CreateTeam returns the collector and the guardian, in that order, tuned
// by profile.
func CreateTeam(profile heuristic.Profile) []Info {
	return []Info{
		{Name: fmt.Sprintf("%s.%s", profile.Name, Collector), Role: Collector, Profile: profile},
		{Name: fmt.Sprintf("%s.%s", profile.Name, Guardian), Role: Guardian, Profile: profile},
	}
}

// New builds the agent described by info for engine slot index.
func New(info Info, index int, options ...Option) *Greedy {
	if info.Role == Collector {
		return NewCollector(index, info.Profile.Offense, options...)
	}
	return NewGuardian(index, info.Profile.Defense, options...)
}
