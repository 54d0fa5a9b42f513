package entities

import (
	"github.com/tavernkeep/tavernkeep/internal/errors"
)

// DefaultFeatureScore is the starting value for every feature point
const DefaultFeatureScore = 10

// carryCapacityPerStrength converts strength into carry capacity
const carryCapacityPerStrength = 15

// Feature names, used as button arguments and text labels
const (
	FeatureStrength     = "strength"
	FeatureDexterity    = "dexterity"
	FeatureConstitution = "constitution"
	FeatureIntelligence = "intelligence"
	FeatureWisdom       = "wisdom"
	FeatureCharisma     = "charisma"
)

// FeatureNames lists the six scores in display order
var FeatureNames = []string{
	FeatureStrength,
	FeatureDexterity,
	FeatureConstitution,
	FeatureIntelligence,
	FeatureWisdom,
	FeatureCharisma,
}

// FeaturePoints holds the six core ability scores
type FeaturePoints struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// NewFeaturePoints returns scores at the default value
func NewFeaturePoints() FeaturePoints {
	return FeaturePoints{
		Strength:     DefaultFeatureScore,
		Dexterity:    DefaultFeatureScore,
		Constitution: DefaultFeatureScore,
		Intelligence: DefaultFeatureScore,
		Wisdom:       DefaultFeatureScore,
		Charisma:     DefaultFeatureScore,
	}
}

// CarryCapacity derives the weight the character can carry from strength
func (f *FeaturePoints) CarryCapacity() int {
	return f.Strength * carryCapacityPerStrength
}

// Score returns the named score
func (f *FeaturePoints) Score(name string) (int, error) {
	switch name {
	case FeatureStrength:
		return f.Strength, nil
	case FeatureDexterity:
		return f.Dexterity, nil
	case FeatureConstitution:
		return f.Constitution, nil
	case FeatureIntelligence:
		return f.Intelligence, nil
	case FeatureWisdom:
		return f.Wisdom, nil
	case FeatureCharisma:
		return f.Charisma, nil
	default:
		return 0, errors.NotFoundf("unknown feature %q", name)
	}
}

// SetScore updates the named score
func (f *FeaturePoints) SetScore(name string, value int) error {
	if value < 0 {
		return errors.InvalidArgument("score cannot be negative")
	}
	switch name {
	case FeatureStrength:
		f.Strength = value
	case FeatureDexterity:
		f.Dexterity = value
	case FeatureConstitution:
		f.Constitution = value
	case FeatureIntelligence:
		f.Intelligence = value
	case FeatureWisdom:
		f.Wisdom = value
	case FeatureCharisma:
		f.Charisma = value
	default:
		return errors.NotFoundf("unknown feature %q", name)
	}
	return nil
}
