package game

// Terrain grid (height-field cells; world units = cells * TerrainScale).
const (
	TerrainWidth   = 200
	TerrainHeight  = 200
	TerrainScale   = 1.0
	TerrainOctaves = 4
	TerrainSeed    = 42 // fixed default; HUNT_SEED overrides the session seed
)

// Terrain shaping.
const (
	TerrainHeightScale = 15.0 // noise-to-world height multiplier
	TerrainEdgeLift    = 3.0  // rim rise toward map edges
	TerrainMinHeight   = -1.0
	RiverHalfWidth     = 0.1 // in normalized [-0.5,0.5] coords
	RiverDepth         = 2.0
	WaterLevel         = 2.0
	SnowLine           = 10.0
)

// Window defaults.
const (
	WindowWidth  = 1200
	WindowHeight = 800
	FovDegrees   = 70.0
	NearPlane    = 0.1
	FarPlane     = 600.0
)

// Player.
const (
	PlayerEyeHeight    = 1.8
	PlayerMoveSpeed    = 10.0
	PlayerSprintMult   = 1.7
	MouseSensitivity   = 0.2
	StaminaDrainRate   = 22.0 // per second while sprinting
	StaminaRecoverRate = 14.0
	HungerDrainRate    = 0.35 // slow survival pressure
	ThirstDrainRate    = 0.55
	StarveDamageRate   = 2.0 // HP/s once a meter hits zero
)

// Rifle.
const (
	RifleFireInterval    = 0.5
	RifleDamage          = 25.0
	RifleProjectileSpeed = 150.0
	RifleMagazine        = 10
	RifleReloadTime      = 2.0
	ProjectileMaxRange   = 500.0
)

// Animal spawn/behavior.
const (
	DeerCount      = 10
	RabbitCount    = 15
	SpawnRadius    = 50.0
	SpawnClearance = 8.0 // minimum distance from the player spawn
	RespawnDelay   = 25.0
	CorpseLinger   = 15.0

	AnimalStateMin  = 2.0 // randomized dwell time bounds
	AnimalStateMax  = 5.0
	ForageRangeMin  = 5.0
	ForageRangeMax  = 20.0
	ForageArrive    = 1.0
	FleeSpeedMult   = 1.8
	AlertDelay      = 1.2
	AnimalHitRadius = 1.0

	DeerSpeed       = 6.0
	DeerDetectRange = 60.0
	DeerFleeRange   = 40.0
	DeerScore       = 50

	RabbitSpeed       = 4.0
	RabbitDetectRange = 30.0
	RabbitFleeRange   = 20.0
	RabbitScore       = 25
)

// Session objective: kills needed to win the hunt.
const ObjectiveKills = 8

// Day cycle. One virtual day lasts DayLengthSeconds of game time.
const (
	DayLengthSeconds = 480.0
	DawnHour         = 6.0
	NoonHour         = 12.0
	DuskHour         = 18.0
	StartHour        = 8.0
)

// Particles.
const (
	MaxParticles      = 8000
	MaxParticleRender = 10000
)

// Weather. Conditions hold for a random span, then cross-fade to the next
// pick over WeatherTransitionTime.
const (
	WeatherTransitionTime = 10.0
	WeatherHoldMin        = 60.0
	WeatherHoldMax        = 150.0
	RainSpawnRate         = 600.0
	SnowSpawnRate         = 320.0
	PrecipRadius          = 45.0
	LightningMinGap       = 8.0
	LightningChance       = 0.08
)

// Collision quadtree.
const (
	QuadCapacity = 16
	QuadMaxDepth = 8
)

// Animal tracks.
const (
	TrackSpacing  = 1.6
	MaxTracks     = 14
	TrackFadeTime = 20.0
)

// Font atlas layout: 16 cols x 6 rows of 8x8 glyphs, ASCII 32-127.
const (
	FontCellW  = 8
	FontCellH  = 8
	FontCols   = 16
	FontRows   = 6
	FontAtlasW = FontCellW * FontCols
	FontAtlasH = FontCellH * FontRows
)
