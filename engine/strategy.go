package engine

import (
	"fmt"
	"strings"
)

// Strategy selects the search algorithm. The set is closed.
type Strategy int

const (
	// BFS is breadth-first search: fewest steps, no replanning.
	BFS Strategy = iota + 1
	// BestFirst is Euclidean best-first search driven by the replanning
	// controller.
	BestFirst
)

var strategyNames = map[Strategy]string{
	BFS:       "bfs",
	BestFirst: "bestfirst",
}

// strategyAliases maps accepted spellings to strategies. "astar" and
// "dstar" are the names the best-first variant has been published under.
var strategyAliases = map[string]Strategy{
	"bfs":        BFS,
	"breadth":    BFS,
	"bestfirst":  BestFirst,
	"best-first": BestFirst,
	"astar":      BestFirst,
	"dstar":      BestFirst,
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy { return []Strategy{BFS, BestFirst} }

// String returns the canonical strategy name.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy resolves a name or alias, ignoring case and surrounding
// spaces. Returns ErrUnknownStrategy otherwise.
func ParseStrategy(name string) (Strategy, error) {
	if s, ok := strategyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseStrategy.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}
