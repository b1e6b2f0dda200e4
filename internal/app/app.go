// Package app runs the tutorial window: open a window, clear it every frame
// and close on Escape, optionally flying a camera around.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/tinyrange/learnedgl/internal/camera"
	"github.com/tinyrange/learnedgl/internal/config"
	"github.com/tinyrange/learnedgl/internal/graphics"
	"github.com/tinyrange/learnedgl/internal/window"
)

var log = logrus.WithField("component", "app")

// DefaultTitleInterval is how often the camera state is written to the title bar.
const DefaultTitleInterval = 250 * time.Millisecond

type App struct {
	Config *config.Config

	// NewWindow opens the window. graphics.New is used when nil.
	NewWindow func(opts window.Options) (graphics.Window, error)

	// Viper, when set, is watched and clear color changes in the config file
	// are applied to the open window.
	Viper *viper.Viper

	// TitleInterval overrides DefaultTitleInterval when positive.
	TitleInterval time.Duration
}

func New(cfg *config.Config, v *viper.Viper) *App {
	return &App{Config: cfg, Viper: v}
}

// Run opens the window and renders until it is asked to close, step fails or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	cfg := a.Config
	newWindow := a.NewWindow
	if newWindow == nil {
		newWindow = graphics.New
	}

	gfx, err := newWindow(cfg.WindowOptions())
	if err != nil {
		return errors.Wrap(err, "open window")
	}

	info := gfx.Info()
	log.WithFields(logrus.Fields{
		"vendor":   info.Vendor,
		"renderer": info.Renderer,
		"version":  info.Version,
		"glsl":     info.GLSL,
	}).Info("OpenGL context ready")

	gfx.SetClearColor(graphics.Color(cfg.RGBA()))
	if !cfg.VSync {
		gfx.SetMaxFPS(cfg.MaxFPS)
	}

	if a.Viper != nil {
		config.Watch(a.Viper, func(next *config.Config, err error) {
			if err != nil {
				log.WithError(err).Warn("ignoring config change")
				return
			}
			gfx.SetClearColor(graphics.Color(next.RGBA()))
			log.WithField("clear_color", next.ClearColor).Info("clear color updated")
		})
	}

	platform := gfx.PlatformWindow()
	var cam *camera.Camera
	if cfg.Camera {
		cam = attachCamera(platform)
	}

	titleInterval := DefaultTitleInterval
	if a.TitleInterval > 0 {
		titleInterval = a.TitleInterval
	}
	var lastTitle time.Time
	err = gfx.Loop(func(f graphics.Frame) error {
		if ctx.Err() != nil {
			platform.SetShouldClose(true)
			return nil
		}
		if cam == nil {
			return nil
		}

		cam.Translate(f, f.DeltaTime())
		if now := time.Now(); now.Sub(lastTitle) >= titleInterval {
			platform.SetTitle(cameraTitle(cfg.Title, cam))
			lastTitle = now
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "render loop")
	}
	log.Info("window closed")
	return nil
}

// attachCamera creates a camera for the window and feeds it cursor and
// scroll events. The callbacks run inside Poll on the render thread.
func attachCamera(platform window.Window) *camera.Camera {
	width, height := platform.BackingSize()
	cam := camera.New(width, height)
	platform.SetCursorPosCallback(func(x, y float64) {
		cam.Rotate(float32(x), float32(y))
	})
	platform.SetScrollCallback(func(_, yoff float64) {
		cam.Zoom(float32(yoff))
	})
	return cam
}

func cameraTitle(title string, cam *camera.Camera) string {
	p := cam.Position
	return fmt.Sprintf("%s | pos (%.2f, %.2f, %.2f) yaw %.1f pitch %.1f fov %.1f",
		title, p.X, p.Y, p.Z, cam.Yaw, cam.Pitch, cam.Fov)
}
