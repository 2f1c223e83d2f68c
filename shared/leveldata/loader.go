package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names.
const (
	GroupGround      = "Ground"
	GroupSlide       = "Slide"
	GroupRamps       = "Ramps"
	GroupHazards     = "Hazards"
	GroupFinish      = "Finish"
	GroupEnemies     = "Enemies"
	GroupPlayerSpawn = "PlayerSpawn"

	// TileLayer holds solid tiles; a tile's "slope" property marks a ramp.
	TileLayer = "wg-tiles"
)

// ErrNoSpawn is returned for a level without a PlayerSpawn object.
var ErrNoSpawn = errors.New("leveldata: level has no player spawn")

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("leveldata: load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	lvl := &Level{
		Name:     strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:    float64(levelMap.Width) * tileW,
		Height:   float64(levelMap.Height) * tileH,
		TileSize: tileW,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var slopeType string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					slopeType = tilesetTile.Properties.GetString("slope")
				}

				lvl.Ground = append(lvl.Ground, Rect{
					X:         float64(x) * tileW,
					Y:         lvl.Height - float64(y+1)*tileH,
					W:         tileW,
					H:         tileH,
					SlopeType: slopeType,
				})
			}
		}
		break
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case GroupGround:
				lvl.Ground = append(lvl.Ground, lvl.rect(o, ""))
			case GroupRamps:
				lvl.Ground = append(lvl.Ground, lvl.rect(o, o.Properties.GetString("slope")))
			case GroupSlide:
				lvl.Slides = append(lvl.Slides, lvl.rect(o, o.Properties.GetString("slope")))
			case GroupHazards:
				lvl.Hazards = append(lvl.Hazards, lvl.rect(o, ""))
			case GroupFinish:
				lvl.Finishes = append(lvl.Finishes, lvl.rect(o, ""))
			case GroupEnemies:
				lvl.Enemies = append(lvl.Enemies, lvl.spawn(o))
			case GroupPlayerSpawn:
				lvl.PlayerSpawn = lvl.spawn(o)
				spawnFound = true
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%w: %s", ErrNoSpawn, tmxPath)
	}

	// Left-to-right for a stable build order.
	sort.SliceStable(lvl.Enemies, func(i, j int) bool {
		return lvl.Enemies[i].X < lvl.Enemies[j].X
	})

	return lvl, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and loads them in
// file name order; a level's index in the result is its scene index.
func LoadAll(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("leveldata: glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("leveldata: no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		lvl, err := Load(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func (l *Level) rect(o *tiled.Object, slope string) Rect {
	return Rect{
		X:         o.X,
		Y:         l.Height - (o.Y + o.Height),
		W:         o.Width,
		H:         o.Height,
		SlopeType: slope,
	}
}

func (l *Level) spawn(o *tiled.Object) Spawn {
	dir := 1.0
	if strings.EqualFold(o.Properties.GetString("direction"), "left") {
		dir = -1
	}
	return Spawn{
		X:         o.X,
		Y:         l.Height - o.Y,
		Direction: dir,
	}
}
