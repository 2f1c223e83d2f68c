package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/hopdrop/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LevelsDir is the directory of the embedded levels inside LevelFS.
const LevelsDir = "levels"

// LevelFS exposes the embedded levels.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevels loads every embedded level in scene order.
func LoadLevels() ([]*leveldata.Level, error) {
	return leveldata.LoadAll(assetFS, LevelsDir)
}

// MustLoadLevels is LoadLevels for program start-up.
func MustLoadLevels() []*leveldata.Level {
	levels, err := LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}
