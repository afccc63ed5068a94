// Package sample embeds a two-room project the preview opens when no
// project is given on the command line.
package sample

import "embed"

// Project is the project file name inside FS.
const Project = "world.ldtk"

//go:embed world.ldtk tiles.png
var FS embed.FS
