package main

// MaxStrength is the stat ceiling used to derive the AI aggression factor
const MaxStrength = 10.0

// Character is an immutable fighter template. Profiles are shared by
// reference across fighters and never mutated at runtime.
type Character struct {
	ID       int
	Name     string
	Color    string // hex, display only
	Speed    float64
	Strength float64
	Ability  AbilityKind
}

// Characters is the playable roster
var Characters = [4]Character{
	{ID: 0, Name: "Blaze", Color: "#ff5533", Speed: 6.0, Strength: 5, Ability: AbilityDash},
	{ID: 1, Name: "Boulder", Color: "#aa8855", Speed: 3.5, Strength: 9, Ability: AbilityShockwave},
	{ID: 2, Name: "Volt", Color: "#ffdd33", Speed: 5.0, Strength: 6, Ability: AbilityStunBlast},
	{ID: 3, Name: "Wisp", Color: "#66ccff", Speed: 6.5, Strength: 3, Ability: AbilityDecoy},
}

// CharacterByID returns the profile for an id, falling back to the first
func CharacterByID(id int) *Character {
	if id < 0 || id >= len(Characters) {
		return &Characters[0]
	}
	return &Characters[id]
}
