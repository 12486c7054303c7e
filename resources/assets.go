package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	defaultCardFile = "card.yaml"
	iconFile        = "icon.svg"
)

//go:embed card.yaml icon.svg
var assetFS embed.FS

var resourceCache sync.Map

// DefaultCard returns the YAML of the card shown on first start.
func DefaultCard() []byte {
	data, err := assetFS.ReadFile(defaultCardFile)
	if err != nil {
		panic(fmt.Errorf("load default card: %w", err))
	}
	return data
}

// Icon returns the application icon.
func Icon() (fyne.Resource, error) {
	return cachedResource(iconFile)
}

// MustIcon returns the application icon or panics on error.
func MustIcon() fyne.Resource {
	resource, err := Icon()
	if err != nil {
		panic(err)
	}
	return resource
}

// cachedResource wraps an embedded file once; later calls share it.
func cachedResource(name string) (fyne.Resource, error) {
	if cached, ok := resourceCache.Load(name); ok {
		return cached.(fyne.Resource), nil
	}
	data, err := assetFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("embedded asset %s: %w", name, err)
	}
	resource, _ := resourceCache.LoadOrStore(name, fyne.NewStaticResource(name, data))
	return resource.(fyne.Resource), nil
}
