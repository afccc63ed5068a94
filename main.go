package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/ldtkworld/assets"
	"github.com/automoto/ldtkworld/config"
	"github.com/automoto/ldtkworld/scenes"
	"github.com/automoto/ldtkworld/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close() error
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Preview.Width, config.C.Preview.Height)
	return config.C.Preview.Width, config.C.Preview.Height
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	scheme := flag.String("scheme", "", "area identifier scheme: iid or name (overrides config)")
	workers := flag.Int("workers", 0, "parallel import workers (overrides config)")
	flag.Parse()

	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		config.C = c
	}
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Warning: Could not read .env: %v", err)
	}
	if err := config.ApplyEnv(config.C); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	if *scheme != "" {
		config.C.Import.Scheme = *scheme
	}
	if *workers > 0 {
		config.C.Import.Workers = *workers
	}
	if flag.NArg() > 0 {
		config.C.Import.Project = flag.Arg(0)
	}
	if err := config.Validate(config.C); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	source := assets.SampleSource()
	if config.C.Import.Project != "" {
		s, err := assets.DiskSource(config.C.Import.Project)
		if err != nil {
			log.Fatalf("Failed to open project: %v", err)
		}
		source = s
	}

	// Initialize persistence and restore the last session
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSession()

	ebiten.SetWindowSize(config.C.Preview.Width*2, config.C.Preview.Height*2)
	ebiten.SetWindowTitle("ldtkworld")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	scene := scenes.NewPreviewScene(source, saved)
	defer func() {
		if err := scene.Close(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}()

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Print(err)
	}
}
