package interfaces

import "io"

// FragmentRenderer renders a named template to a string, optionally copying
// the output to writers. The settings panel needs nothing more.
type FragmentRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

// TemplateRenderer is the engine surface hosts can swap in for the settings
// panel: inline templates, extra filters and globals on top of Render.
type TemplateRenderer interface {
	FragmentRenderer
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
