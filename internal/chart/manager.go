package chart

// Handle is a live chart owned by the rendering capability. Disposing
// it frees whatever the capability allocated for the slot.
type Handle interface {
	Dispose()
}

// Factory creates a chart for a slot from its descriptor.
type Factory func(slot string, cfg *Config) Handle

// Manager owns one chart handle per named slot. Rendering into an
// occupied slot disposes the previous handle before creating the new
// one, so a slot never leaks stale charts.
type Manager struct {
	factory Factory
	ativos  map[string]Handle
	configs map[string]*Config
	ordem   []string
}

// NewManager creates a manager backed by the given factory.
func NewManager(factory Factory) *Manager {
	return &Manager{
		factory: factory,
		ativos:  make(map[string]Handle),
		configs: make(map[string]*Config),
	}
}

// RenderOrReplace renders a descriptor into a slot, disposing any
// chart previously occupying it.
func (m *Manager) RenderOrReplace(slot string, cfg *Config) {
	if h, ok := m.ativos[slot]; ok {
		if h != nil {
			h.Dispose()
		}
	} else {
		m.ordem = append(m.ordem, slot)
	}
	m.configs[slot] = cfg
	m.ativos[slot] = m.factory(slot, cfg)
}

// Config returns the descriptor currently rendered into a slot, or nil.
func (m *Manager) Config(slot string) *Config {
	return m.configs[slot]
}

// Slots returns the slot names in first-render order.
func (m *Manager) Slots() []string {
	return m.ordem
}

// Configs returns slot name to descriptor for every rendered slot.
func (m *Manager) Configs() map[string]*Config {
	out := make(map[string]*Config, len(m.configs))
	for slot, cfg := range m.configs {
		out[slot] = cfg
	}
	return out
}

// Dispose releases every active chart and clears all slots.
func (m *Manager) Dispose() {
	for _, h := range m.ativos {
		if h != nil {
			h.Dispose()
		}
	}
	m.ativos = make(map[string]Handle)
	m.configs = make(map[string]*Config)
	m.ordem = nil
}
