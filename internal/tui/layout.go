package tui

import "github.com/mmcdole/marquee/internal/tui/components"

// sideWidth returns the right column width, 0 when hidden
func (m Model) sideWidth() int {
	if !m.ShowInspector && !m.ShowUpcoming {
		return 0
	}
	width := max(m.Width*SideColumnPercent/100, MinSideWidth)
	return min(width, m.Width/2)
}

// mainHeight returns the height left for the grid row
func (m Model) mainHeight() int {
	return max(m.Height-SearchBarHeight-components.SliderHeight-FooterHeight, 3)
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	side := m.sideWidth()
	height := m.mainHeight()

	m.SearchBar.SetWidth(m.Width)
	m.Slider.SetWidth(m.Width)
	m.Grid.SetSize(m.Width-side, height)
	m.Upcoming.SetSize(side, height)
	m.Inspector.SetSize(side, height)
	m.Help.Width = m.Width
}
