package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-logr/logr"

	"github.com/san-kum/dancecube/internal/anim"
	"github.com/san-kum/dancecube/internal/config"
	"github.com/san-kum/dancecube/internal/logger"
	"github.com/san-kum/dancecube/internal/panel"
	"github.com/san-kum/dancecube/internal/scene"
)

// Theme colors
var (
	ColPanel   = rl.NewColor(10, 10, 10, 200)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColError   = rl.NewColor(230, 80, 80, 255)
)

const (
	fontPath   = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	panelX     = 20
	panelY     = 20
	panelW     = 300
	lineHeight = 22
	logLines   = 4
)

type App struct {
	Ctx    *scene.Context
	Driver *anim.Driver
	Panel  *panel.Panel
	Font   rl.Font

	binding  *panel.SceneBinding
	lines    *logger.Logger
	log      logr.Logger
	editing  bool
	editBuf  string
	status   string
	quit     bool
	ownsFont bool
}

func initWindow(w config.WindowConfig) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	rl.SetWindowMinSize(320, 240)
	rl.SetTargetFPS(int32(w.FPS))
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono with bilinear filtering, falling back to the
// raylib default font when it is not installed.
func loadFont() (rl.Font, bool) {
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault(), false
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, true
}

// NewApp binds ctx to a tweak panel and an animation driver drawing into the
// current window. The window must already be open.
func NewApp(ctx *scene.Context, settings anim.Settings, lines *logger.Logger, log logr.Logger) *App {
	p := panel.New("dancecube", log)
	a := &App{
		Ctx:     ctx,
		Panel:   p,
		binding: panel.BindScene(p, ctx),
		lines:   lines,
		log:     log.WithName("gui"),
	}
	a.Font, a.ownsFont = loadFont()
	a.Driver = anim.NewDriver(ctx, &Renderer{Overlay: a.DrawHUD}, settings, log)
	a.resize()
	return a
}

// Run opens the window, animates ctx until the window is closed or Q is
// pressed, then closes the window.
func Run(ctx *scene.Context, settings anim.Settings, w config.WindowConfig, lines *logger.Logger, log logr.Logger) error {
	initWindow(w)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to open window %dx%d", w.Width, w.Height)
	}

	app := NewApp(ctx, settings, lines, log)
	defer app.Close()
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	a.log.Info("window loop started")
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Driver.Tick()
	}
	a.log.Info("window loop stopped", "frames", a.Driver.Frames())
}

func (a *App) Close() {
	if a.ownsFont {
		rl.UnloadFont(a.Font)
		a.ownsFont = false
	}
}

func (a *App) resize() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	dpi := rl.GetWindowScaleDPI()
	a.Ctx.Resize(w, h, float64(dpi.X))
}

// Update handles window events and panel input for the next frame.
func (a *App) Update() {
	if rl.IsWindowResized() {
		a.resize()
	}
	if a.editing {
		a.updateEdit()
		return
	}

	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.Panel.Toggle()
	}
	if a.Panel.Hidden {
		return
	}

	if pressed(rl.KeyDown) {
		a.Panel.Next()
	}
	if pressed(rl.KeyUp) {
		a.Panel.Prev()
	}

	step := 1
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		step = 10
	}
	c := a.Panel.Selected()
	if c == nil {
		return
	}
	if c.Kind == panel.KindNumber {
		if pressed(rl.KeyLeft) {
			a.report(c.Nudge(-step))
		}
		if pressed(rl.KeyRight) {
			a.report(c.Nudge(step))
		}
	}
	if rl.IsKeyPressed(rl.KeyEnter) && c.Kind == panel.KindColor {
		a.editing, a.editBuf = true, ""
		a.status = ""
	}
}

func (a *App) updateEdit() {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch < 127 && len(a.editBuf) < 7 {
			a.editBuf += string(rune(ch))
		}
	}
	if pressed(rl.KeyBackspace) && len(a.editBuf) > 0 {
		a.editBuf = a.editBuf[:len(a.editBuf)-1]
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.editing, a.editBuf = false, ""
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		hex := strings.TrimSpace(a.editBuf)
		if !strings.HasPrefix(hex, "#") {
			hex = "#" + hex
		}
		if c := a.Panel.Selected(); c != nil {
			a.report(c.SetColor(hex))
		}
		a.editing, a.editBuf = false, ""
	}
}

func (a *App) report(err error) {
	if err != nil {
		a.status = err.Error()
		return
	}
	a.status = ""
}

func pressed(key int32) bool {
	return rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key)
}

// DrawHUD draws the panel, status line and frame counter over the scene.
func (a *App) DrawHUD() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()

	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 20, h-30, 14, ColTextDim)
	a.drawText("[UP/DOWN] SELECT  [LEFT/RIGHT] ADJUST  [SHIFT] x10  [ENTER] COLOR  [H] PANEL  [Q] QUIT",
		w-760, h-30, 14, ColTextDim)
	if a.status != "" {
		a.drawText(a.status, 20, h-54, 14, ColError)
	}
	if a.Panel.Hidden {
		return
	}

	controls := a.Panel.Controls()
	rows := len(controls) + len(a.Panel.Folders()) + logLines + 3
	rl.DrawRectangle(panelX, panelY, panelW, int32(rows*lineHeight), ColPanel)

	x, y := panelX+12, panelY+10
	a.drawText(a.Panel.Title, x, y, 20, ColSelect)
	y += lineHeight + 6

	folder := ""
	for i, c := range controls {
		if c.Folder != folder {
			folder = c.Folder
			a.drawText(folder, x, y, 14, ColAccent)
			y += lineHeight
		}
		value := c.String()
		if a.editing && i == a.Panel.Cursor() {
			value = a.editBuf + "_"
		}
		col, marker := ColText, "  "
		if i == a.Panel.Cursor() {
			col, marker = ColSelect, "> "
		}
		a.drawText(fmt.Sprintf("%s%-14s %s", marker, c.Name, value), x, y, 14, col)
		if c.Kind == panel.KindColor {
			if hex, err := scene.ParseColor(c.Color()); err == nil {
				rl.DrawRectangle(panelX+panelW-36, int32(y), 20, 14, toColor(hex))
			}
		}
		y += lineHeight
	}

	if a.lines == nil {
		return
	}
	y += 6
	for _, l := range a.lines.Tail(logLines) {
		if len(l) > 40 {
			l = l[:40]
		}
		a.drawText(l, x, y, 12, ColTextDim)
		y += lineHeight - 4
	}
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
