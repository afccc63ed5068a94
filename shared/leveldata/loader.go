package leveldata

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

// LoadProject parses an LDtk project file. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS. Levels saved as separate files are read
// relative to the project file.
func LoadProject(fsys fs.FS, projectPath string) (*Project, error) {
	f, err := fsys.Open(projectPath)
	if err != nil {
		return nil, fmt.Errorf("open project %s: %w", projectPath, err)
	}
	defer f.Close()

	p, err := DecodeProject(f)
	if err != nil {
		return nil, fmt.Errorf("decode project %s: %w", projectPath, err)
	}

	dir := path.Dir(projectPath)
	for i := range p.Levels {
		lvl := &p.Levels[i]
		if lvl.LayerInstances != nil || lvl.ExternalRelPath == "" {
			continue
		}
		ext, err := loadExternalLevel(fsys, path.Join(dir, lvl.ExternalRelPath))
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", lvl.Identifier, err)
		}
		lvl.LayerInstances = ext.LayerInstances
		if lvl.FieldInstances == nil {
			lvl.FieldInstances = ext.FieldInstances
		}
	}

	return p, nil
}

// DecodeProject decodes a project document from r without resolving
// external level files.
func DecodeProject(r io.Reader) (*Project, error) {
	var p Project
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func loadExternalLevel(fsys fs.FS, levelPath string) (*Level, error) {
	b, err := fs.ReadFile(fsys, levelPath)
	if err != nil {
		return nil, fmt.Errorf("read external level %s: %w", levelPath, err)
	}
	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, fmt.Errorf("decode external level %s: %w", levelPath, err)
	}
	return &lvl, nil
}

// Load picks the loader by path: .ldtk/.json project files, single .tmx
// maps, or a directory of .tmx maps.
func Load(fsys fs.FS, p string) (*Project, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".ldtk", ".json":
		return LoadProject(fsys, p)
	case ".tmx":
		return LoadTMX(fsys, p)
	}
	return LoadAllTMX(fsys, p)
}

// AssetRoot is the directory that tileset paths of the project loaded by
// Load(fsys, p) are relative to. LDtk paths are relative to the project
// file; adapted Tiled paths are already rooted at fsys.
func AssetRoot(p string) string {
	switch strings.ToLower(path.Ext(p)) {
	case ".ldtk", ".json":
		return path.Dir(p)
	}
	return "."
}
