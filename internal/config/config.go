package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/dancecube/internal/anim"
	"github.com/san-kum/dancecube/internal/scene"
	"github.com/san-kum/dancecube/internal/tween"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFPS    = 60
	DefaultTitle  = "dancecube"
)

type Config struct {
	Seed      int64           `yaml:"seed"`
	Particles ParticlesConfig `yaml:"particles"`
	Grid      GridConfig      `yaml:"grid"`
	Animation AnimationConfig `yaml:"animation"`
	Camera    CameraConfig    `yaml:"camera"`
	Lights    LightsConfig    `yaml:"lights"`
	Window    WindowConfig    `yaml:"window"`
}

type ParticlesConfig struct {
	Count         int          `yaml:"count"`
	Mode          string       `yaml:"mode"`
	RightColor    string       `yaml:"right_color"`
	LeftColor     string       `yaml:"left_color"`
	Interpolation float32      `yaml:"interpolation"`
	Spread        [3]float32   `yaml:"spread"`
	Offsets       [][3]float32 `yaml:"offsets"`
	Size          float32      `yaml:"size"`
}

type GridConfig struct {
	Scatter      float32 `yaml:"scatter"`
	Spacing      float32 `yaml:"spacing"`
	LevelSpacing float32 `yaml:"level_spacing"`
	CubeSize     float32 `yaml:"cube_size"`
}

type TweenConfig struct {
	To       float32 `yaml:"to"`
	Duration float32 `yaml:"duration"`
	Delay    float32 `yaml:"delay"`
}

type AnimationConfig struct {
	AngularRate float32     `yaml:"angular_rate"`
	Cube        TweenConfig `yaml:"cube"`
	CameraX     TweenConfig `yaml:"camera_x"`
	CameraY     TweenConfig `yaml:"camera_y"`
	CameraZ     TweenConfig `yaml:"camera_z"`
}

type CameraConfig struct {
	Fov      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
}

type LightsConfig struct {
	AmbientColor     string     `yaml:"ambient_color"`
	AmbientIntensity float32    `yaml:"ambient_intensity"`
	PointColor       string     `yaml:"point_color"`
	PointIntensity   float32    `yaml:"point_intensity"`
	PointPosition    [3]float32 `yaml:"point_position"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

func DefaultConfig() *Config {
	anims := anim.DefaultSettings()
	cam := scene.DefaultCamera()
	return &Config{
		Seed: 0,
		Particles: ParticlesConfig{
			Count:         scene.DefaultParticleCount,
			Mode:          string(scene.ModeGradient),
			RightColor:    scene.DefaultRightColor,
			LeftColor:     scene.DefaultLeftColor,
			Interpolation: scene.DefaultInterpolation,
			Spread:        scene.DefaultSpread,
			Offsets:       [][3]float32{scene.DefaultOffsets[0], scene.DefaultOffsets[1]},
			Size:          scene.DefaultPointSize,
		},
		Grid: GridConfig{
			Scatter:      scene.DefaultScatter,
			Spacing:      anims.CubeSpacing,
			LevelSpacing: anims.LevelSpacing,
			CubeSize:     1,
		},
		Animation: AnimationConfig{
			AngularRate: anims.AngularRate,
			Cube:        TweenConfig{Duration: anims.CubeTiming.Duration, Delay: anims.CubeTiming.Delay},
			CameraX:     tweenConfig(anims.CameraTarget[0]),
			CameraY:     tweenConfig(anims.CameraTarget[1]),
			CameraZ:     tweenConfig(anims.CameraTarget[2]),
		},
		Camera: CameraConfig{
			Fov:      cam.Fov,
			Near:     cam.Near,
			Far:      cam.Far,
			Position: cam.Position,
		},
		Lights: LightsConfig{
			AmbientColor:     "#ffffff",
			AmbientIntensity: 0.5,
			PointColor:       "#ffffff",
			PointIntensity:   0.5,
			PointPosition:    [3]float32{2, 3, 4},
		},
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
			Title:  DefaultTitle,
		},
	}
}

func tweenConfig(s tween.Spec) TweenConfig {
	return TweenConfig{To: s.To, Duration: s.Duration, Delay: s.Delay}
}

func (t TweenConfig) spec() tween.Spec {
	return tween.Spec{To: t.To, Duration: t.Duration, Delay: t.Delay}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the scene cannot be built from.
func (c *Config) Validate() error {
	if _, _, err := c.ParticleParams().Validate(); err != nil {
		return err
	}
	if len(c.Particles.Offsets) != 2 {
		return fmt.Errorf("particles.offsets: expected 2 entries, got %d", len(c.Particles.Offsets))
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("camera.fov %g out of range (0, 180)", c.Camera.Fov)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera: near %g and far %g must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far)
	}
	if _, err := scene.ParseColor(c.Lights.AmbientColor); err != nil {
		return fmt.Errorf("lights.ambient_color: %w", err)
	}
	if _, err := scene.ParseColor(c.Lights.PointColor); err != nil {
		return fmt.Errorf("lights.point_color: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

func (c *Config) ParticleParams() scene.ParticleParams {
	return scene.ParticleParams{
		Count:         c.Particles.Count,
		Mode:          scene.Mode(c.Particles.Mode),
		RightColor:    c.Particles.RightColor,
		LeftColor:     c.Particles.LeftColor,
		Interpolation: c.Particles.Interpolation,
		Spread:        c.Particles.Spread,
	}
}

// SceneOptions converts the config into scene construction options. The
// config is expected to be valid.
func (c *Config) SceneOptions() scene.Options {
	opts := scene.DefaultOptions()
	opts.Seed = c.Seed
	opts.Scatter = c.Grid.Scatter
	opts.CubeSize = c.Grid.CubeSize
	opts.Particles = c.ParticleParams()
	for i := 0; i < len(opts.Offsets) && i < len(c.Particles.Offsets); i++ {
		opts.Offsets[i] = c.Particles.Offsets[i]
	}
	opts.PointSize = c.Particles.Size
	opts.Camera.Fov = c.Camera.Fov
	opts.Camera.Near = c.Camera.Near
	opts.Camera.Far = c.Camera.Far
	opts.Camera.Position = c.Camera.Position
	opts.Ambient = scene.AmbientLight{Color: colorOrWhite(c.Lights.AmbientColor), Intensity: c.Lights.AmbientIntensity}
	opts.Light = scene.PointLight{
		Color:     colorOrWhite(c.Lights.PointColor),
		Intensity: c.Lights.PointIntensity,
		Position:  mgl32.Vec3(c.Lights.PointPosition),
	}
	opts.Width = c.Window.Width
	opts.Height = c.Window.Height
	return opts
}

func (c *Config) AnimSettings() anim.Settings {
	return anim.Settings{
		AngularRate:  c.Animation.AngularRate,
		CubeSpacing:  c.Grid.Spacing,
		LevelSpacing: c.Grid.LevelSpacing,
		CubeTiming:   anim.Timing{Duration: c.Animation.Cube.Duration, Delay: c.Animation.Cube.Delay},
		CameraTarget: [3]tween.Spec{c.Animation.CameraX.spec(), c.Animation.CameraY.spec(), c.Animation.CameraZ.spec()},
	}
}

func colorOrWhite(s string) colorful.Color {
	col, err := scene.ParseColor(s)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return col
}
