package main

import "fmt"

const (
	ArenaWidth  = 900.0
	ArenaHeight = 600.0
	FallMargin  = 120.0 // falling past ArenaHeight+FallMargin is a ring-out
)

// Platform is a static axis-aligned rectangle. Main marks the ground
// platform; the flag only feeds the AI edge-avoidance heuristics, physics
// treats every platform the same.
type Platform struct {
	X, Y, W, H float64
	Main       bool
}

// DefaultPlatforms returns the standard arena layout: one main ground
// platform and three floating ledges.
func DefaultPlatforms() []Platform {
	return []Platform{
		{X: 80, Y: 520, W: 740, H: 40, Main: true},
		{X: 140, Y: 380, W: 160, H: 14},
		{X: 370, Y: 300, W: 160, H: 14},
		{X: 600, Y: 380, W: 160, H: 14},
	}
}

// spawnSlots are the fixed starting positions, assigned in fighter order
var spawnSlots = [...]struct {
	X, Y   float64
	Facing int
}{
	{X: 220, Y: 480, Facing: FacingRight},
	{X: 680, Y: 480, Facing: FacingLeft},
	{X: 450, Y: 260, Facing: FacingRight},
	{X: 340, Y: 480, Facing: FacingRight},
	{X: 560, Y: 480, Facing: FacingLeft},
}

// mainPlatform returns the first platform flagged Main, or the first
// platform when none is flagged.
func mainPlatform(platforms []Platform) *Platform {
	for i := range platforms {
		if platforms[i].Main {
			return &platforms[i]
		}
	}
	return &platforms[0]
}

// ValidatePlatforms rejects arena layouts the physics and AI cannot run on
func ValidatePlatforms(platforms []Platform) error {
	if len(platforms) == 0 {
		return fmt.Errorf("arena needs at least one platform")
	}
	return nil
}
