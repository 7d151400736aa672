package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/sketchbook/colorer"
	"github.com/olivierh59500/sketchbook/config"
	"github.com/olivierh59500/sketchbook/physics"
	"github.com/olivierh59500/sketchbook/sketch"
)

// Drawing constants
const (
	MoverScale  = 1.5 // Radius per unit of mass
	FieldStroke = 1.0
)

var background = color.RGBA{12, 12, 16, 255}

// Simulation is the ebiten game wrapping a scene
type Simulation struct {
	scene      *sketch.Scene
	ConfigPath string // Reloaded with L, empty uses SavePath
	SavePath   string // Written with S
	Paused     bool
	ShowField  bool
	ShowMosaic bool
	status     string
}

// NewSimulation builds the scene for cfg
func NewSimulation(cfg config.Config, configPath, savePath string) (*Simulation, error) {
	scene, err := sketch.New(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("sketch ready: %dx%d, %s colorer, %d movers, seed %d",
		cfg.Width, cfg.Height, cfg.Colorer.Kind, cfg.Movers.Count, scene.Seed())
	return &Simulation{
		scene:      scene,
		ConfigPath: configPath,
		SavePath:   savePath,
		ShowField:  cfg.Field.Show,
		ShowMosaic: true,
	}, nil
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	s.handleInput()
	if s.Paused {
		return nil
	}
	s.scene.Step(s.scene.Config().Field.TimeStep)
	return nil
}

// Draw is called each frame by Ebitengine
func (s *Simulation) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if s.ShowMosaic {
		s.drawMosaic(screen)
	}
	if s.ShowField {
		s.drawField(screen)
	}
	s.drawMovers(screen)
	s.drawStatus(screen)
}

// Layout returns the screen size
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := s.scene.Config()
	return cfg.Width, cfg.Height
}

func (s *Simulation) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.Paused = !s.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.scene.Mosaic().Advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.ShowField = !s.ShowField
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.ShowMosaic = !s.ShowMosaic
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.reload()
	}
}

func (s *Simulation) save() {
	if err := config.Save(s.SavePath, s.scene.Config()); err != nil {
		log.Printf("save failed: %v", err)
		s.status = "save failed"
		return
	}
	log.Printf("config saved to %s", s.SavePath)
	s.status = "saved " + s.SavePath
}

// reload swaps in a new scene; the running one is kept when loading fails
func (s *Simulation) reload() {
	path := s.ConfigPath
	if path == "" {
		path = s.SavePath
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("reload failed: %v", err)
		s.status = "reload failed"
		return
	}
	scene, err := sketch.New(cfg)
	if err != nil {
		log.Printf("reload failed: %v", err)
		s.status = "reload failed"
		return
	}
	if cfg.Width != s.scene.Config().Width || cfg.Height != s.scene.Config().Height {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetTPS(cfg.TPS)
	s.scene = scene
	s.ShowField = cfg.Field.Show
	log.Printf("config reloaded from %s", path)
	s.status = "loaded " + path
}

func (s *Simulation) drawMosaic(screen *ebiten.Image) {
	for _, tile := range s.scene.Mosaic().Tiles() {
		tl := s.scene.ToScreen(r2.Vec{X: tile.Cell.Left(), Y: tile.Cell.Top()})
		vector.DrawFilledRect(screen,
			float32(tl.X), float32(tl.Y),
			float32(tile.Cell.Size.X), float32(tile.Cell.Size.Y),
			tile.Color, false)
	}
}

func (s *Simulation) drawField(screen *ebiten.Image) {
	field := s.scene.Flow().Field()
	if field == nil {
		return
	}
	length := s.scene.Config().Field.Resolution / physics.MagnitudeScale
	field.Each(func(origin, force r2.Vec) {
		from := s.scene.ToScreen(origin)
		to := s.scene.ToScreen(r2.Add(origin, r2.Scale(length, force)))
		clr := colorer.HSV(s.scene.FieldHue(origin), 0.6, 0.9)
		vector.StrokeLine(screen,
			float32(from.X), float32(from.Y), float32(to.X), float32(to.Y),
			FieldStroke, clr, true)
	})
}

func (s *Simulation) drawMovers(screen *ebiten.Image) {
	for _, m := range s.scene.Flow().Movers() {
		p := s.scene.ToScreen(m.Position())
		clr := colorer.HSVA(0, 0, 1, 0.8)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(m.Mass()*MoverScale), clr, true)
	}
}

func (s *Simulation) drawStatus(screen *ebiten.Image) {
	msg := fmt.Sprintf("frame %d  t=%.2f  seed %d", s.scene.Frame(), s.scene.Flow().Time(), s.scene.Seed())
	if s.Paused {
		msg += "  [paused]"
	}
	if s.status != "" {
		msg += "  " + s.status
	}
	text.Draw(screen, msg, basicfont.Face7x13, 6, 16, color.White)
	text.Draw(screen, "Space=Pause  R=Rotate  F=Field  M=Mosaic  S=Save  L=Load",
		basicfont.Face7x13, 6, 32, color.White)
}
