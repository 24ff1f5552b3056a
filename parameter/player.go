package parameter

// Player Defaults
const (
	// PlayerMoveSpeed is world units per second
	PlayerMoveSpeed = 10.0

	// PlayerRotSpeed is radians per second
	PlayerRotSpeed = 5.0

	PlayerStartX = 22.0
	PlayerStartY = 12.0

	// PlayerDirX, PlayerDirY face toward decreasing x
	PlayerDirX = -1.0
	PlayerDirY = 0.0

	// PlayerPlaneX, PlayerPlaneY give a ~66 degree horizontal field of view
	PlayerPlaneX = 0.0
	PlayerPlaneY = 0.66
)
