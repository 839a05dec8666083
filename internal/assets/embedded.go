package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader loads the assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads styles/{name}.css from the embedded assets.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.read(name, "styles/"+name+".css", ErrStyleNotFound)
}

// LoadTemplate loads templates/{name}.html from the embedded assets.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.read(name, "templates/"+name+".html", ErrTemplateNotFound)
}

func (e *EmbeddedLoader) read(name, path string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := builtin.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %q", notFound, name)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
