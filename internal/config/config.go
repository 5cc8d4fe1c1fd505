package config

import "time"

const (
	WindowWidth  = 960
	WindowHeight = 640
	WindowTitle  = "Breathing Bubble - hold while breathing in, release to breathe out"

	TicksPerSecond = 60

	// Breathing cycle
	InhaleDuration = 4 * time.Second
	HoldDuration   = 2 * time.Second
	ExhaleDuration = 6 * time.Second
	RestDuration   = 2 * time.Second

	// Sync score, adjusted once per tick while pressing
	SyncMax     = 100.0
	SyncMin     = 0.0
	SyncReward  = 1.0
	SyncPenalty = 2.0
	SyncRate    = 0.1

	// Bubble parameters
	ScaleMin       = 1.0
	ScaleMax       = 1.5
	GlowMin        = 0.5
	GlowMax        = 1.0
	RadiusDivisor  = 8.0
	GlowRadius     = 1.8
	HighlightSize  = 0.3
	HighlightShift = 0.35
	BodyShift      = 0.3

	// Particles
	ParticleCount     = 30
	ParticleMaxSpeed  = 0.5
	ParticleMinRadius = 1.0
	ParticleRadiusVar = 3.0
	ParticleMinAlpha  = 0.1
	ParticleAlphaVar  = 0.5

	// Button dimensions
	ButtonWidth   = 140
	ButtonHeight  = 44
	ButtonYOffset = 96

	// HUD
	TitleFontSize = 28
	BodyFontSize  = 16
	MeterWidth    = 220
	MeterHeight   = 8

	// Gradient sprites: unit circles are rasterized at this radius, and the
	// cache is flushed once it holds this many textures.
	SpriteRadius    = 256
	SpriteCacheSize = 32

	// Snapshot defaults
	SnapshotWidth  = 800
	SnapshotHeight = 600
)
