package entities

import (
	"sort"

	"github.com/tavernkeep/tavernkeep/internal/errors"
)

// MaxTotalLevel is the cap on a character's combined class levels.
const MaxTotalLevel = 20

// MultiClass tracks the levels a character holds in each class. Class names
// are unique; the sum of all levels never exceeds MaxTotalLevel.
type MultiClass struct {
	Levels map[string]int `json:"levels"`
}

// NewMultiClass creates a MultiClass with a single class at level 1
func NewMultiClass(class string) MultiClass {
	return MultiClass{Levels: map[string]int{class: 1}}
}

// TotalLevel returns the sum of all class levels
func (m *MultiClass) TotalLevel() int {
	total := 0
	for _, lvl := range m.Levels {
		total += lvl
	}
	return total
}

// ClassNames returns the class names in sorted order
func (m *MultiClass) ClassNames() []string {
	names := make([]string, 0, len(m.Levels))
	for name := range m.Levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Level returns the level held in the named class, zero if absent
func (m *MultiClass) Level(class string) int {
	return m.Levels[class]
}

// Has reports whether the character holds levels in the named class
func (m *MultiClass) Has(class string) bool {
	_, ok := m.Levels[class]
	return ok
}

// AddClass adds a new class at level 1. Fails if the class is already held
// or the level cap is reached.
func (m *MultiClass) AddClass(class string) error {
	if class == "" {
		return errors.InvalidArgument("class name cannot be empty")
	}
	if m.Has(class) {
		return errors.AlreadyExistsf("already a %s", class)
	}
	if m.TotalLevel()+1 > MaxTotalLevel {
		return errors.FailedPreconditionf("total level cannot exceed %d", MaxTotalLevel)
	}
	if m.Levels == nil {
		m.Levels = make(map[string]int)
	}
	m.Levels[class] = 1
	return nil
}

// LevelUp raises the named class by one level, respecting the cap
func (m *MultiClass) LevelUp(class string) error {
	if !m.Has(class) {
		return errors.NotFoundf("no levels in %s", class)
	}
	if m.TotalLevel()+1 > MaxTotalLevel {
		return errors.FailedPreconditionf("total level cannot exceed %d", MaxTotalLevel)
	}
	m.Levels[class]++
	return nil
}

// LevelDown lowers the named class by one level. A class never drops below
// level 1; remove it instead.
func (m *MultiClass) LevelDown(class string) error {
	if !m.Has(class) {
		return errors.NotFoundf("no levels in %s", class)
	}
	if m.Levels[class] <= 1 {
		return errors.OutOfRangef("%s is already at level 1", class)
	}
	m.Levels[class]--
	return nil
}

// RemoveClass removes the named class and returns the freed levels. The
// caller is responsible for reassigning them (see Character.RemoveClass for
// the auto-transfer rule). The last remaining class cannot be removed.
func (m *MultiClass) RemoveClass(class string) (int, error) {
	if !m.Has(class) {
		return 0, errors.NotFoundf("no levels in %s", class)
	}
	if len(m.Levels) == 1 {
		return 0, errors.FailedPrecondition("cannot remove the only class")
	}
	freed := m.Levels[class]
	delete(m.Levels, class)
	return freed, nil
}

// AssignLevels adds freed levels to an existing class. Used to resolve a
// pending reassignment after a class removal; the cap still holds because
// the freed levels were counted before removal.
func (m *MultiClass) AssignLevels(class string, levels int) error {
	if !m.Has(class) {
		return errors.NotFoundf("no levels in %s", class)
	}
	if levels < 0 {
		return errors.InvalidArgument("levels cannot be negative")
	}
	if m.TotalLevel()+levels > MaxTotalLevel {
		return errors.FailedPreconditionf("total level cannot exceed %d", MaxTotalLevel)
	}
	m.Levels[class] += levels
	return nil
}
