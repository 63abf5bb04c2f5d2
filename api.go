package forgecs

import (
	"go.uber.org/zap"

	"github.com/kaelstrom/forgecs/internal/applog"
)

// AppConfig configures a new App.
type AppConfig struct {
	World WorldConfig
	Log   applog.Config
}

// App is the composition root: it owns a World, a ResourceManager, a
// SystemManager, and a PluginManager, and provides the Update loop that
// drives a game or simulation built on top of them.
type App struct {
	World     *World
	Resources *ResourceManager
	Systems   *SystemManager
	Plugins   *PluginManager
	Log       *applog.Logger
}

// NewApp builds an empty App ready to have plugins and systems added to it.
func NewApp(cfg AppConfig) *App {
	return &App{
		World:     NewWorld(cfg.World),
		Resources: NewResourceManager(),
		Systems:   NewSystemManager(),
		Plugins:   NewPluginManager(),
		Log:       applog.New(cfg.Log),
	}
}

// AddPlugin registers plugin with the App's PluginManager. Like
// PluginManager.Add, it does not build the plugin; call Build once every
// plugin the app needs has been added.
func (a *App) AddPlugin(plugin Plugin) error {
	return a.Plugins.Add(plugin)
}

// Build runs every registered plugin's Build in dependency order, then
// initializes every registered system that implements Initializer. Logs and
// returns the first error.
func (a *App) Build() error {
	if err := a.Plugins.BuildAll(a); err != nil {
		a.Log.Error("plugin build failed", zap.Error(err))
		return err
	}
	if err := a.Systems.InitAll(a); err != nil {
		a.Log.Error("system init failed", zap.Error(err))
		return err
	}
	return nil
}

// AddSystem registers system to run in stage, initializing it immediately
// if Build has already run.
func (a *App) AddSystem(stage Stage, system System) error {
	if err := a.Systems.Add(a, stage, system); err != nil {
		a.Log.Error("system registration failed",
			zap.String("system", system.Name()), zap.Error(err))
		return err
	}
	return nil
}

// Update runs one frame: every enabled system's Update, stage by stage.
func (a *App) Update(dt float64) error {
	if err := a.Systems.UpdateAll(a, dt); err != nil {
		a.Log.Error("system update failed", zap.Error(err))
		return err
	}
	return nil
}

// Close flushes the App's logger. Call once before process exit.
func (a *App) Close() error {
	return a.Log.Sync()
}
