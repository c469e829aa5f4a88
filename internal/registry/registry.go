// Package registry provides a global registry for scoring policy factories.
// Policies register themselves in init() functions, allowing the CLI to
// select one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mastermind/internal/core"
)

// DefaultScorer is the ID of the policy used when none is configured.
const DefaultScorer = "canonical"

// Scorer computes feedback for a guess against a secret.
// Implementations are pure: the same inputs always give the same Feedback.
type Scorer interface {
	// ID returns a unique identifier for this policy (e.g., "canonical").
	// Used for CLI flags and config files.
	ID() string

	// Title returns a human-readable description for listings.
	Title() string

	// Score compares guess to secret. Both codes must be complete.
	Score(secret core.Secret, guess core.Guess) core.Feedback
}

// ScorerInfo contains metadata about a registered policy.
type ScorerInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new scorer.
type Factory func() Scorer

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scorer factory to the registry.
// Panics if a policy with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scoring policy %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered policies, sorted by ID.
func List() []ScorerInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScorerInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ScorerInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a scorer by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Scorer, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scoring policy %q", id)
	}

	return f(), nil
}

// Exists checks if a policy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
