package layoutcmd

// FeatureGates exposes the runtime toggles required by layout command handlers.
type FeatureGates struct {
	LayoutEnabled func() bool
}

func (g FeatureGates) layoutEnabled() bool {
	if g.LayoutEnabled == nil {
		return true
	}
	return g.LayoutEnabled()
}
