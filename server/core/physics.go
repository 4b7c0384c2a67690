package core

import (
	"math"

	"github.com/automoto/stickbrawl/shared/gamemath"
	"github.com/automoto/stickbrawl/shared/netcomponents"
	"github.com/automoto/stickbrawl/tags"
)

// Physics constants, tuned for 60 Hz sub-steps.
const (
	gravity      = 0.75
	jumpSpeed    = 13.0
	maxSpeed     = 4.0
	acceleration = 0.6
	friction     = 0.5
	maxFallSpeed = 10.0
	maxVertSpeed = 16.0
	physicsRate  = 60
)

// updatePhysics runs sub-stepped physics for all fighters. Called once per
// server tick so the 60 Hz constants hold at lower tick rates.
func (s *Server) updatePhysics(now int64) {
	stepsPerTick := physicsRate / s.tickRate
	if stepsPerTick < 1 {
		stepsPerTick = 1
	}

	for step := 0; step < stepsPerTick; step++ {
		for entity, b := range s.bodies {
			if !s.world.Valid(entity) {
				continue
			}
			vel := netcomponents.NetVelocity.Get(s.world.Entry(entity))
			stepFighter(b, vel, now < b.LockedUntil)
		}
	}

	for entity, b := range s.bodies {
		if !s.world.Valid(entity) {
			continue
		}
		entry := s.world.Entry(entity)
		pos := netcomponents.NetPosition.Get(entry)
		pos.X, pos.Y = b.feet()
		netcomponents.NetVelocity.Get(entry).OnGround = b.OnGround
	}
}

// stepFighter performs a single 60 Hz sub-step for one fighter. A locked
// fighter ignores movement input but still falls and slides.
func stepFighter(b *fighterBody, vel *netcomponents.NetVelocityData, locked bool) {
	if !locked && !b.knockedOut() {
		if b.Direction != 0 && !(b.GuardPressed && b.OnGround) {
			vel.SpeedX += float64(b.Direction) * acceleration
			b.Facing = b.Direction
		}

		if b.JumpPressed && !b.JumpWasPressed && b.OnGround {
			vel.SpeedY = -jumpSpeed
			b.OnGround = false
		}
	}
	b.JumpWasPressed = b.JumpPressed

	if b.OnGround {
		vel.SpeedX = gamemath.ApplyFriction(vel.SpeedX, friction)
	}
	vel.SpeedX = gamemath.ClampSpeed(vel.SpeedX, maxSpeed)

	vel.SpeedY += gravity
	if vel.SpeedY > maxFallSpeed {
		vel.SpeedY = maxFallSpeed
	}

	dx := vel.SpeedX
	if dx != 0 {
		if check := b.Object.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
				vel.SpeedX = 0
			}
		}
		b.Object.X += dx
	}

	dy := math.Max(math.Min(vel.SpeedY, maxVertSpeed), -maxVertSpeed)
	checkDist := dy
	if dy >= 0 {
		checkDist++
	}

	if check := b.Object.Check(0, checkDist, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			b.Object.Y += check.ContactWithObject(solids[0]).Y()
			vel.SpeedY = 0
			b.OnGround = dy >= 0
			b.Object.Update()
			return
		}
	}

	b.OnGround = false
	b.Object.Y += dy
	b.Object.Update()
}
