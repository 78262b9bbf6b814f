package glide

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/glide/lerp"
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	Resizable     bool
	// ShowFPS draws an FPS counter above every stage sprite.
	ShowFPS bool
	// Background fills the screen before sprites are drawn. The zero value
	// leaves the screen cleared to transparent black.
	Background lerp.Color
	// Update runs after the animator ticks, once per frame.
	Update func() error
	// Draw runs after the stage is drawn.
	Draw func(screen *ebiten.Image)
}

// Stage is an ordered list of sprites drawn back to front.
type Stage struct {
	Sprites []*Sprite
}

// Add appends sprites to the top of the stage.
func (st *Stage) Add(sprites ...*Sprite) {
	st.Sprites = append(st.Sprites, sprites...)
}

// Remove drops s from the stage.
func (st *Stage) Remove(s *Sprite) {
	for i, sp := range st.Sprites {
		if sp == s {
			st.Sprites = append(st.Sprites[:i], st.Sprites[i+1:]...)
			return
		}
	}
}

// Draw draws every sprite in order.
func (st *Stage) Draw(dst *ebiten.Image) {
	for _, s := range st.Sprites {
		s.Draw(dst)
	}
}

// Game adapts an Animator and Stage to ebiten.Game. Each Update advances a
// FrameClock by one tick at ebiten's TPS, if the animator uses one, then
// ticks the animator.
type Game struct {
	Animator *Animator
	Stage    *Stage
	Config   RunConfig
}

// NewGame returns a Game for custom ebiten setups. Run uses it internally.
func NewGame(anim *Animator, stage *Stage, cfg RunConfig) *Game {
	if stage == nil {
		stage = &Stage{}
	}
	return &Game{Animator: anim, Stage: stage, Config: cfg}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if fc, ok := g.Animator.Clock().(*FrameClock); ok {
		fc.Advance(1000 / float64(ebiten.TPS()))
	}
	g.Animator.Tick()
	if g.Config.Update != nil {
		return g.Config.Update()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.Config.Background.A > 0 {
		screen.Fill(g.Config.Background)
	}
	g.Stage.Draw(screen)
	if g.Config.Draw != nil {
		g.Config.Draw(screen)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Config.Width > 0 && g.Config.Height > 0 {
		return g.Config.Width, g.Config.Height
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives anim and stage until the window closes or
// an Update callback returns an error.
func Run(anim *Animator, stage *Stage, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	g := NewGame(anim, stage, cfg)
	if cfg.ShowFPS {
		fps, _ := anim.NewFPSSprite()
		g.Stage.Add(fps)
	}
	return ebiten.RunGame(g)
}
