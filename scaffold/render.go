package scaffold

import (
	"embed"
	"fmt"

	"github.com/Dunsteer/ngrx-essentials-generator/generator"
	"github.com/Dunsteer/ngrx-essentials-generator/naming"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var renderer = generator.NewRenderer()

// componentView adds the component class reference shared by the
// component script and the module.
type componentView struct {
	naming.Bundle
	ComponentClass string
}

// Render produces the content of one file for the bundle.
func Render(kind TemplateKind, b naming.Bundle) ([]byte, error) {
	switch kind {
	case Action:
		return renderAction(b)
	case Reducer:
		return renderReducer(b)
	case Effect:
		return renderEffect(b)
	case Service:
		return renderService(b)
	case Module:
		return renderModule(b)
	case ComponentScript:
		return renderComponentScript(b)
	case ComponentStyle:
		return renderComponentStyle(b)
	case ComponentMarkup:
		return renderComponentMarkup(b)
	default:
		return nil, fmt.Errorf("no template for %s", kind)
	}
}

func renderAction(b naming.Bundle) ([]byte, error) {
	return renderer.RenderFS(templateFS, "templates/actions.ts.tmpl", b)
}

func renderReducer(b naming.Bundle) ([]byte, error) {
	return renderer.RenderFS(templateFS, "templates/reducer.ts.tmpl", b)
}

func renderEffect(b naming.Bundle) ([]byte, error) {
	return renderer.RenderFS(templateFS, "templates/effects.ts.tmpl", b)
}

func renderService(b naming.Bundle) ([]byte, error) {
	return renderer.RenderFS(templateFS, "templates/service.ts.tmpl", b)
}

func renderModule(b naming.Bundle) ([]byte, error) {
	return renderer.RenderFS(templateFS, "templates/module.ts.tmpl", newComponentView(b))
}

func renderComponentScript(b naming.Bundle) ([]byte, error) {
	return renderer.RenderFS(templateFS, "templates/component.ts.tmpl", newComponentView(b))
}

// Styles start out empty.
func renderComponentStyle(naming.Bundle) ([]byte, error) {
	return []byte{}, nil
}

func renderComponentMarkup(b naming.Bundle) ([]byte, error) {
	return renderer.RenderFS(templateFS, "templates/component.html.tmpl", b)
}

func newComponentView(b naming.Bundle) componentView {
	return componentView{Bundle: b, ComponentClass: b.ClassName + "Component"}
}
