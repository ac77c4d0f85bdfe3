package store

import (
	"fmt"

	"github.com/MKhiriev/go-pi-config/models"
)

// Stack holds the layers of one config service in ascending precedence
// order.
type Stack struct {
	layers []Layer
}

// NewStack builds a stack from layers given lowest precedence first.
func NewStack(layers ...Layer) *Stack {
	return &Stack{layers: layers}
}

// NewStandardStack builds the home, project and environment layers of
// appName.
func NewStandardStack(appName, home, projectRoot string, environ func() []string) *Stack {
	return NewStack(
		NewFileLayer(models.LayerHome, HomeFilePath(home, appName)),
		NewFileLayer(models.LayerProject, ProjectFilePath(projectRoot, appName)),
		NewEnvLayer(appName, environ),
	)
}

// Lookup returns the layer with the given name.
func (s *Stack) Lookup(name models.LayerName) (Layer, error) {
	for _, l := range s.layers {
		if l.Name() == name {
			return l, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
}

// All returns the layers in ascending precedence order.
func (s *Stack) All() []Layer {
	return s.layers
}
