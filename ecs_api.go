package forgecs

// Stage orders when a System runs within one SystemManager.UpdateAll call.
// Systems run stage by stage, in registration order within a stage.
type Stage int

const (
	PreUpdate Stage = iota
	Update
	PostUpdate
	Render
)

// System is one unit of per-frame logic. Update runs every
// SystemManager.UpdateAll call for the system's stage, skipped while the
// system is disabled.
type System interface {
	Name() string
	Update(app *App, dt float64) error
}

// Initializer is an optional System extension. Init runs once: during
// SystemManager.InitAll, or immediately on Add if InitAll has already run.
// Disabled systems are initialized too.
type Initializer interface {
	Init(app *App) error
}

// systemEntry pairs a System with its stage and enabled flag.
type systemEntry struct {
	system  System
	stage   Stage
	enabled bool
}

// SystemManager runs Systems stage by stage: PreUpdate, then Update, then
// PostUpdate, then Render. Within a stage, systems run in the order they
// were added.
type SystemManager struct {
	entries     []*systemEntry
	byName      map[string]*systemEntry
	initialized bool
}

// NewSystemManager returns an empty SystemManager.
func NewSystemManager() *SystemManager {
	return &SystemManager{byName: make(map[string]*systemEntry)}
}

// Add registers system to run in stage. Fails with ErrDuplicateSystemName if
// a system with the same name is already registered. If the manager has
// already been initialized (InitAll has run), the new system's Init runs
// immediately.
func (m *SystemManager) Add(app *App, stage Stage, system System) error {
	name := system.Name()
	if _, dup := m.byName[name]; dup {
		return ErrDuplicateSystemName
	}
	entry := &systemEntry{system: system, stage: stage, enabled: true}
	m.entries = append(m.entries, entry)
	m.byName[name] = entry
	if initer, ok := system.(Initializer); ok && m.initialized {
		return initer.Init(app)
	}
	return nil
}

// InitAll calls Init on every registered system that implements Initializer,
// stage by stage in the order
// PreUpdate, Update, PostUpdate, Render and within a stage in registration
// order, and marks the manager initialized so subsequently added systems are
// initialized eagerly by Add. Stops and returns the first error.
func (m *SystemManager) InitAll(app *App) error {
	for _, stage := range [...]Stage{PreUpdate, Update, PostUpdate, Render} {
		for _, entry := range m.entries {
			initer, ok := entry.system.(Initializer)
			if entry.stage != stage || !ok {
				continue
			}
			if err := initer.Init(app); err != nil {
				return err
			}
		}
	}
	m.initialized = true
	return nil
}

// UpdateAll runs every enabled system's Update, stage by stage in the order
// PreUpdate, Update, PostUpdate, Render, and within a stage in registration
// order. Stops and returns the first error.
func (m *SystemManager) UpdateAll(app *App, dt float64) error {
	for _, stage := range [...]Stage{PreUpdate, Update, PostUpdate, Render} {
		for _, entry := range m.entries {
			if entry.stage != stage || !entry.enabled {
				continue
			}
			if err := entry.system.Update(app, dt); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetEnabled toggles whether the named system's Update runs. Returns false
// if no system with that name is registered.
func (m *SystemManager) SetEnabled(name string, enabled bool) bool {
	entry, ok := m.byName[name]
	if !ok {
		return false
	}
	entry.enabled = enabled
	return true
}

// Enabled reports whether the named system currently runs, and whether it
// exists at all.
func (m *SystemManager) Enabled(name string) (enabled, exists bool) {
	entry, ok := m.byName[name]
	if !ok {
		return false, false
	}
	return entry.enabled, true
}
