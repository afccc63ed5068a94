// Command ldtkinfo imports a project headlessly and prints a summary of
// every area, its entities and its collision.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/automoto/ldtkworld/config"
	"github.com/automoto/ldtkworld/importer"
	"github.com/automoto/ldtkworld/shared/collision"
	"github.com/automoto/ldtkworld/shared/leveldata"
	"github.com/automoto/ldtkworld/shared/texture"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	scheme := flag.String("scheme", "", "area identifier scheme: iid or name (overrides config)")
	workers := flag.Int("workers", 0, "parallel import workers (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[ldtkinfo] %v", err)
		}
		cfg = c
	}
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("[ldtkinfo] could not read .env: %v", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		log.Fatalf("[ldtkinfo] %v", err)
	}
	if *scheme != "" {
		cfg.Import.Scheme = *scheme
	}
	if *workers > 0 {
		cfg.Import.Workers = *workers
	}
	if flag.NArg() > 0 {
		cfg.Import.Project = flag.Arg(0)
	}
	if cfg.Import.Project == "" {
		fmt.Fprintln(os.Stderr, "usage: ldtkinfo [flags] <project.ldtk | map.tmx | maps-dir>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("[ldtkinfo] invalid config: %v", err)
	}

	w, err := run(cfg)
	if err != nil {
		log.Fatalf("[ldtkinfo] %v", err)
	}
	report(os.Stdout, w, cfg.Collision)
}

func run(cfg *config.Config) (*importer.World, error) {
	abs, err := filepath.Abs(cfg.Import.Project)
	if err != nil {
		return nil, err
	}
	dir, name := filepath.Dir(abs), filepath.Base(abs)
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		dir, name = abs, "."
	}

	fsys := os.DirFS(dir)
	doc, err := leveldata.Load(fsys, name)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.Import.Options()
	if err != nil {
		return nil, err
	}
	im := importer.New(texture.NewImageLoader(fsys, leveldata.AssetRoot(name)), opts...)
	return im.Build(doc)
}

func report(out io.Writer, w *importer.World, coll config.CollisionConfig) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tNAME\tPOSITION\tTILES\tSOLIDS\tENTITIES")
	for _, a := range w.Areas() {
		counts := make(map[string]int)
		for _, e := range a.Entities {
			counts[e.Identifier]++
		}
		fmt.Fprintf(tw, "%s\t%s\t%v,%v\t%dx%d (%d)\t%d\t%s\n",
			a.ID, a.Name, a.Position.X, a.Position.Y,
			a.WidthInTiles, a.HeightInTiles, len(a.Tiles),
			len(collision.SolidRects(&a.TiledArea, coll.IsSolid)),
			entitySummary(counts))
	}

	if spawn, ok := w.Spawn(); ok {
		fmt.Fprintf(tw, "\nspawn\t%s\t%v,%v\t\t\t%s\n", spawn.Area.ID, spawn.Position.X, spawn.Position.Y, spawn.EntityIID)
	}
}

func entitySummary(counts map[string]int) string {
	if len(counts) == 0 {
		return "-"
	}
	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Strings(names)

	s := ""
	for i, n := range names {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s x%d", n, counts[n])
	}
	return s
}
