package widgets

const (
	// FilterAreas lets plugins extend or replace the default area list.
	FilterAreas = "filter:widgets.getAreas"
	// FilterWidgets collects the widget definitions contributed by plugins.
	FilterWidgets = "filter:widgets.getWidgets"

	// SettingsTemplate renders the shared widget settings panel.
	SettingsTemplate = "admin/partials/widget-settings"
)

// Group listing sort keys.
const (
	SortCreateTime  = "groups:createtime"
	SortMemberCount = "groups:visible:memberCount"
	SortName        = "groups:visible:name"
)

const (
	TemplateGlobal       = "global"
	TemplateGroupDetails = "groups/details.tpl"
)

// DefaultAreas returns a fresh copy of the built-in layout areas.
func DefaultAreas() []Area {
	return []Area{
		{Name: "Global Sidebar", Template: TemplateGlobal, Location: "sidebar"},
		{Name: "Global Header", Template: TemplateGlobal, Location: "header"},
		{Name: "Global Footer", Template: TemplateGlobal, Location: "footer"},

		{Name: "Group Page (Left)", Template: TemplateGroupDetails, Location: "left"},
		{Name: "Group Page (Right)", Template: TemplateGroupDetails, Location: "right"},
	}
}

// DraftZone is appended after the area filter runs, so plugins never see it.
func DraftZone() Area {
	return Area{Name: "Draft Zone", Template: TemplateGlobal, Location: "drafts"}
}
