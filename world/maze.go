package world

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/raycaster/vmath"
)

// MazeConfig controls maze world generation
type MazeConfig struct {
	// Size is the declared grid edge; even sizes carve size-1 and pad with wall
	Size int

	// Braiding: 0.0 (perfect maze, a tree) to 1.0 (no dead ends).
	// Higher values add loops; plaza and pillar constraints take precedence.
	Braiding float64

	// Materials are wall codes; the first is the base, the rest are accents
	Materials []Cell

	// AccentChance is the probability a wall uses an accent material
	AccentChance float64

	Seed int64 // 0 = random
}

type gridPoint struct {
	X, Y int
}

var (
	carveDirs = [4]gridPoint{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	orthoDirs = [4]gridPoint{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
)

// GenerateMaze carves a recursive-backtracker maze and spawns at (1.5, 1.5)
func GenerateMaze(cfg MazeConfig) (*Map, error) {
	if cfg.Size < MinSize {
		return nil, fmt.Errorf("maze size %d below minimum %d", cfg.Size, MinSize)
	}
	materials := cfg.Materials
	if len(materials) == 0 {
		materials = []Cell{1}
	}
	for _, m := range materials {
		if m == Open || m > MaxCode {
			return nil, fmt.Errorf("%w: maze material %d", ErrCodeRange, m)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Carving works on odd extents so rooms sit on odd coordinates
	extent := cfg.Size
	if extent%2 == 0 {
		extent--
	}

	solid := make([][]bool, cfg.Size)
	for x := range solid {
		solid[x] = make([]bool, cfg.Size)
		for y := range solid[x] {
			solid[x][y] = true
		}
	}

	start := gridPoint{1, 1}
	carve(solid, extent, start, rng)
	if cfg.Braiding > 0 {
		braid(solid, extent, cfg.Braiding, rng)
	}

	grid := make([][]int, cfg.Size)
	for x := range grid {
		grid[x] = make([]int, cfg.Size)
		for y := range grid[x] {
			if !solid[x][y] {
				continue
			}
			code := materials[0]
			if len(materials) > 1 && rng.Float64() < cfg.AccentChance {
				code = materials[1+rng.Intn(len(materials)-1)]
			}
			grid[x][y] = int(code)
		}
	}

	w, err := New(grid, cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("generated maze invalid: %w", err)
	}

	return &Map{
		Name:  fmt.Sprintf("maze-%d", seed),
		World: w,
		Spawn: &vmath.Vec2{X: float64(start.X) + 0.5, Y: float64(start.Y) + 0.5},
	}, nil
}

// carve opens a uniform spanning tree over odd coordinates inside [1, extent-2]
func carve(solid [][]bool, extent int, start gridPoint, rng *rand.Rand) {
	stack := []gridPoint{start}
	solid[start.X][start.Y] = false

	candidates := make([]gridPoint, 0, 4)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range carveDirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			if nx > 0 && nx < extent-1 && ny > 0 && ny < extent-1 && solid[nx][ny] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		solid[curr.X+d.X/2][curr.Y+d.Y/2] = false
		next := gridPoint{curr.X + d.X, curr.Y + d.Y}
		solid[next.X][next.Y] = false
		stack = append(stack, next)
	}
}

// braid knocks through dead ends with the given probability
func braid(solid [][]bool, extent int, probability float64, rng *rand.Rand) {
	candidates := make([]gridPoint, 0, 4)

	for x := 1; x < extent-1; x += 2 {
		for y := 1; y < extent-1; y += 2 {
			if solid[x][y] {
				continue
			}

			exits := 0
			for _, d := range orthoDirs {
				if !solid[x+d.X][y+d.Y] {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates = candidates[:0]
			for _, d := range carveDirs {
				nx, ny := x+d.X, y+d.Y
				wx, wy := x+d.X/2, y+d.Y/2
				if nx <= 0 || nx >= extent-1 || ny <= 0 || ny >= extent-1 {
					continue
				}
				if !solid[nx][ny] && solid[wx][wy] && safeToOpen(solid, wx, wy) {
					candidates = append(candidates, gridPoint{wx, wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				solid[c.X][c.Y] = false
			}
		}
	}
}

// safeToOpen rejects openings that would create a 2×2 open plaza or an isolated pillar
func safeToOpen(solid [][]bool, x, y int) bool {
	open := func(tx, ty int) bool {
		if tx < 0 || ty < 0 || tx >= len(solid) || ty >= len(solid) {
			return false
		}
		return !solid[tx][ty]
	}

	for _, q := range [4]gridPoint{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		if open(x+q.X, y) && open(x, y+q.Y) && open(x+q.X, y+q.Y) {
			return false
		}
	}

	for _, d := range orthoDirs {
		nx, ny := x+d.X, y+d.Y
		if open(nx, ny) || nx < 0 || ny < 0 || nx >= len(solid) || ny >= len(solid) {
			continue
		}
		links := 0
		for _, d2 := range orthoDirs {
			mx, my := nx+d2.X, ny+d2.Y
			if mx == x && my == y {
				continue
			}
			if mx >= 0 && my >= 0 && mx < len(solid) && my < len(solid) && solid[mx][my] {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}

	return true
}
