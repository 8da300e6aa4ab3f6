package widgets

import "errors"

var (
	ErrFeatureDisabled = errors.New("widgets: feature disabled")

	ErrAreaLookupRequired   = errors.New("widgets: area content lookup required")
	ErrGroupListerRequired  = errors.New("widgets: group lister required")
	ErrRendererRequired     = errors.New("widgets: template renderer required")
	ErrFilterRunnerRequired = errors.New("widgets: filter runner required")
	ErrUnknownSortKey       = errors.New("widgets: unknown group sort key")
)
