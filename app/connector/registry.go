package connector

import "sort"

// Registry holds the connectors known to this deployment, keyed by name.
type Registry struct {
	connectors map[string]Connector
}

func NewRegistry(connectors ...Connector) *Registry {
	items := make(map[string]Connector, len(connectors))
	for _, c := range connectors {
		items[c.Name()] = c
	}
	return &Registry{connectors: items}
}

func (r *Registry) Get(name string) (Connector, error) {
	c, ok := r.connectors[name]
	if !ok {
		return nil, ErrConnectorNotSupported
	}
	return c, nil
}

// Names lists the registered connectors in stable order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.connectors))
	for name := range r.connectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
