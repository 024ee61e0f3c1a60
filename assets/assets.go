package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/skyhop/shared/leveldata"
)

const levelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadLevel loads levels/<name>.tmx from the embedded tree.
func LoadLevel(name string) (*leveldata.Level, error) {
	return leveldata.Load(assetFS, fmt.Sprintf("%s/%s.tmx", levelsDir, name))
}

// LevelNames lists the embedded levels in sorted order.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAll(assetFS, levelsDir)
	return names, err
}
