package config

import "fyne.io/fyne/v2"

const (
	prefAllowMorph = "visionary.allow_morph"
	prefShowGrid   = "visionary.show_grid"
	prefSnapToGrid = "visionary.snap_to_grid"
	prefGridSize   = "visionary.grid_size"
)

// ApplyPreferences overlays the user toggles stored in p onto s.
func (s Settings) ApplyPreferences(p fyne.Preferences) Settings {
	s.AllowMorph = p.BoolWithFallback(prefAllowMorph, s.AllowMorph)
	s.ShowGrid = p.BoolWithFallback(prefShowGrid, s.ShowGrid)
	s.SnapToGrid = p.BoolWithFallback(prefSnapToGrid, s.SnapToGrid)
	if g := p.FloatWithFallback(prefGridSize, s.GridSize); g > 0 {
		s.GridSize = g
	}
	return s
}

// StorePreferences persists the user toggles of s into p.
func (s Settings) StorePreferences(p fyne.Preferences) {
	p.SetBool(prefAllowMorph, s.AllowMorph)
	p.SetBool(prefShowGrid, s.ShowGrid)
	p.SetBool(prefSnapToGrid, s.SnapToGrid)
	p.SetFloat(prefGridSize, s.GridSize)
}
