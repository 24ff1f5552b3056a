package parameter

// Window Defaults
const (
	WindowTitle  = "raycaster"
	WindowWidth  = 900
	WindowHeight = 600
)

// Projection
const (
	// WallHeightFactor scales projected wall height, 1 = cell is as tall as it is wide
	WallHeightFactor = 1.0

	// FixedWallHeightValue is used when the fixed wall height override is on
	FixedWallHeightValue = 20

	// MaxLineHeightFactor caps projected height at this multiple of the surface height
	MaxLineHeightFactor = 8

	FloorColor   = 0x505050ff
	CeilingColor = 0x828282ff
)

// Textures
const (
	TextureWidth = 512
	TextureCount = 9
	TextureDir   = "img"
)

// TextureFiles are indexed by wall code-1
var TextureFiles = [TextureCount]string{
	"DUNGEONBRICKS.png",
	"DUNGEONCELL.png",
	"SPOOKYDOOR.png",
	"CROSSCUBE.png",
	"OFFICEDOOR.png",
	"PIPES.png",
	"ROUNDBRICKS.png",
	"LAVAROCKS.png",
	"GRAYWALL.png",
}

// Minimap
const (
	MinimapEnabled = true

	// MinimapScale is pixels per world cell
	MinimapScale = 6

	// MinimapRayStride draws every Nth column ray
	MinimapRayStride    = 5
	MinimapRayThickness = 2

	// MinimapHeadingCells is the heading line length in cells
	MinimapHeadingCells     = 3
	MinimapHeadingThickness = 2

	MinimapPlayerRadius = 3

	// MinimapMargin is the window-space inset from the bottom-right corner
	MinimapMargin = 10
)
