package forgecs

// Plugin bundles related systems, resources, and component registrations
// into one unit an App can compose. Dependencies names other plugins that
// must Build before this one, so a PluginManager can order Build calls
// regardless of registration order.
type Plugin interface {
	Name() string
	Dependencies() []string
	Build(app *App) error
}

// OnEnabler is an optional Plugin extension: a plugin implementing it gets
// notified when PluginManager.SetEnabled flips its enabled state, for
// plugins whose systems need to be paused rather than torn down.
type OnEnabler interface {
	OnEnable(app *App) error
	OnDisable(app *App) error
}

type pluginEntry struct {
	plugin  Plugin
	enabled bool
	built   bool
}

// PluginManager holds the set of registered Plugins and orders their Build
// calls by dependency, via a topological sort (Kahn's algorithm) over the
// Dependencies each plugin declares.
type PluginManager struct {
	entries []*pluginEntry
	byName  map[string]*pluginEntry
}

// NewPluginManager returns an empty PluginManager.
func NewPluginManager() *PluginManager {
	return &PluginManager{byName: make(map[string]*pluginEntry)}
}

// Add registers plugin, unbuilt and enabled. Fails with
// ErrDuplicatePluginName if a plugin with the same name is already
// registered. Does not build it; call BuildAll once every plugin the app
// needs has been added.
func (m *PluginManager) Add(plugin Plugin) error {
	name := plugin.Name()
	if _, dup := m.byName[name]; dup {
		return ErrDuplicatePluginName
	}
	entry := &pluginEntry{plugin: plugin, enabled: true}
	m.entries = append(m.entries, entry)
	m.byName[name] = entry
	return nil
}

// BuildAll builds every registered plugin exactly once, in an order that
// respects every plugin's declared Dependencies, then makes a second pass in
// the same order invoking OnEnable on every plugin that implements
// OnEnabler. Fails with ErrUnknownDependency if a plugin names a dependency
// that was never added, or ErrDependencyCycle if the dependency graph isn't
// a DAG. Stops and returns the first Build or OnEnable error encountered,
// leaving later plugins unbuilt or unenabled.
func (m *PluginManager) BuildAll(app *App) error {
	order, err := m.buildOrder()
	if err != nil {
		return err
	}
	for _, entry := range order {
		if entry.built {
			continue
		}
		if err := entry.plugin.Build(app); err != nil {
			return err
		}
		entry.built = true
	}
	for _, entry := range order {
		if !entry.enabled {
			continue
		}
		hook, ok := entry.plugin.(OnEnabler)
		if !ok {
			continue
		}
		if err := hook.OnEnable(app); err != nil {
			return err
		}
	}
	return nil
}

// buildOrder computes a dependency-respecting build order via Kahn's
// algorithm: repeatedly take an entry with no unprocessed dependency and
// append it, until every entry is placed or none can be (a cycle).
func (m *PluginManager) buildOrder() ([]*pluginEntry, error) {
	indegree := make(map[string]int, len(m.entries))
	dependents := make(map[string][]string, len(m.entries))
	for _, entry := range m.entries {
		for _, dep := range entry.plugin.Dependencies() {
			if _, ok := m.byName[dep]; !ok {
				return nil, ErrUnknownDependency
			}
			indegree[entry.plugin.Name()]++
			dependents[dep] = append(dependents[dep], entry.plugin.Name())
		}
	}

	var ready []string
	for _, entry := range m.entries {
		if indegree[entry.plugin.Name()] == 0 {
			ready = append(ready, entry.plugin.Name())
		}
	}

	order := make([]*pluginEntry, 0, len(m.entries))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, m.byName[name])
		for _, dependent := range dependents[name] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}

	if len(order) != len(m.entries) {
		return nil, ErrDependencyCycle
	}
	return order, nil
}

// SetEnabled toggles a plugin's enabled state, invoking its OnEnable or
// OnDisable hook if it implements OnEnabler. Returns false if no plugin
// with that name is registered.
func (m *PluginManager) SetEnabled(app *App, name string, enabled bool) (bool, error) {
	entry, ok := m.byName[name]
	if !ok {
		return false, nil
	}
	if entry.enabled == enabled {
		return true, nil
	}
	entry.enabled = enabled
	if hook, ok := entry.plugin.(OnEnabler); ok {
		if enabled {
			return true, hook.OnEnable(app)
		}
		return true, hook.OnDisable(app)
	}
	return true, nil
}

// Enabled reports whether the named plugin is currently enabled, and
// whether it exists at all.
func (m *PluginManager) Enabled(name string) (enabled, exists bool) {
	entry, ok := m.byName[name]
	if !ok {
		return false, false
	}
	return entry.enabled, true
}
