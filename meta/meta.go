// meta/meta.go
package meta

// MaxTurns is the number of single-agent moves after which a match ends.
const MaxTurns = 1200

// ScaredTime is how many of its own moves an agent stays scared after the
// opposing team eats a capsule.
const ScaredTime = 40

// SightRange is the manhattan radius within which opponents are visible.
// Zero means opponents are always visible.
const SightRange = 0

// NumGames is the number of games per matchup in tuning experiments.
const NumGames = 10
