package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	spawned := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSolids:
			level.Solids = appendRects(level.Solids, og.Objects)
		case GroupWalls:
			level.Walls = appendRects(level.Walls, og.Objects)
		case GroupHazards:
			level.Hazards = appendRects(level.Hazards, og.Objects)
		case GroupDeadZones:
			level.DeadZones = appendRects(level.DeadZones, og.Objects)
		case GroupGoal:
			level.Goals = appendRects(level.Goals, og.Objects)
		case GroupPlatforms:
			for _, o := range og.Objects {
				axis := strings.ToLower(o.Properties.GetString("axis"))
				if axis != AxisY {
					axis = AxisX
				}
				level.Platforms = append(level.Platforms, PlatformSpawn{
					Rect:        rectOf(o),
					Axis:        axis,
					Travel:      o.Properties.GetFloat("travel"),
					DurationSec: o.Properties.GetFloat("duration"),
				})
			}
		case GroupPlayerSpawn:
			// The first spawn wins.
			if len(og.Objects) > 0 && !spawned {
				level.Spawn = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
				spawned = true
			}
		}
	}

	if len(level.Solids) == 0 && len(level.Walls) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrEmptyLevel)
	}
	if !spawned {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	// Sort platforms left-to-right for a stable entity order.
	sort.SliceStable(level.Platforms, func(i, j int) bool {
		return level.Platforms[i].X < level.Platforms[j].X
	})

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		level, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func appendRects(dst []Rect, objects []*tiled.Object) []Rect {
	for _, o := range objects {
		if o.Width <= 0 || o.Height <= 0 {
			continue
		}
		dst = append(dst, rectOf(o))
	}
	return dst
}

func rectOf(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}
