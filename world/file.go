package world

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/raycaster/vmath"
)

// Map is a world plus optional metadata from a map file
type Map struct {
	Name  string
	World *World
	Spawn *vmath.Vec2 // nil keeps the configured player position
}

// mapFile is the YAML layout; each row is a string of digit cell codes
type mapFile struct {
	Name  string     `yaml:"name,omitempty"`
	Size  int        `yaml:"size"`
	Spawn *spawnFile `yaml:"spawn,omitempty"`
	Cells []string   `yaml:"cells"`
}

type spawnFile struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadMap reads and validates a YAML map file
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map %s: %w", path, err)
	}
	m, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return m, nil
}

// ParseMap decodes and validates YAML map data
func ParseMap(data []byte) (*Map, error) {
	var f mapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}

	size := f.Size
	if size == 0 {
		size = len(f.Cells)
	}

	grid := make([][]int, len(f.Cells))
	for x, row := range f.Cells {
		row = strings.TrimSpace(row)
		grid[x] = make([]int, len(row))
		for y, ch := range []byte(row) {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: cell (%d, %d) = %q", ErrCodeRange, x, y, ch)
			}
			grid[x][y] = int(ch - '0')
		}
	}

	w, err := New(grid, size)
	if err != nil {
		return nil, err
	}

	m := &Map{Name: f.Name, World: w}
	if f.Spawn != nil {
		spawn := vmath.Vec2{X: f.Spawn.X, Y: f.Spawn.Y}
		if !w.OpenAt(spawn.X, spawn.Y) {
			return nil, fmt.Errorf("spawn (%.2f, %.2f) is not in an open cell", spawn.X, spawn.Y)
		}
		m.Spawn = &spawn
	}
	return m, nil
}

// EncodeMap renders m in the map file layout
func EncodeMap(m *Map) ([]byte, error) {
	f := mapFile{
		Name:  m.Name,
		Size:  m.World.Size(),
		Cells: make([]string, m.World.Size()),
	}
	if m.Spawn != nil {
		f.Spawn = &spawnFile{X: m.Spawn.X, Y: m.Spawn.Y}
	}

	var sb strings.Builder
	for x := 0; x < m.World.Size(); x++ {
		sb.Reset()
		for y := 0; y < m.World.Size(); y++ {
			sb.WriteByte('0' + byte(m.World.At(x, y)))
		}
		f.Cells[x] = sb.String()
	}

	return yaml.Marshal(&f)
}

// SaveMap writes m to path in the map file layout
func SaveMap(path string, m *Map) error {
	data, err := EncodeMap(m)
	if err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write map %s: %w", path, err)
	}
	return nil
}
