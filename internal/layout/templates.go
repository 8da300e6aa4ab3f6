package layout

import "github.com/goliatone/go-widgetlayout/widgets"

// BuildTemplates groups areas by template. Groups appear in the order their
// template is first seen and keep the original area order; an empty template
// is grouped like any other value.
func BuildTemplates(areas []widgets.Area) []widgets.TemplateGroup {
	templates := make([]widgets.TemplateGroup, 0)
	index := make(map[string]int)

	for _, area := range areas {
		pos, ok := index[area.Template]
		if !ok {
			pos = len(templates)
			index[area.Template] = pos
			templates = append(templates, widgets.TemplateGroup{
				Template: area.Template,
				Areas:    []widgets.AreaRef{},
			})
		}
		templates[pos].Areas = append(templates[pos].Areas, area.Ref())
	}
	return templates
}
