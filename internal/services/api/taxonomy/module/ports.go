package module

import (
	"astroref/internal/services/api/taxonomy/domain"
)

// Ports is what a taxonomy module exposes to other modules
type Ports struct {
	Reader  domain.Reader
	Service domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
