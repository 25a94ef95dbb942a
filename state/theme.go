package state

// Theme is the page color scheme.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// NewTheme returns a theme store starting dark.
func NewTheme() *Writable[Theme] {
	return NewWritable(Dark)
}

// ToggleTheme flips the theme held by w.
func ToggleTheme(w *Writable[Theme]) {
	w.Update(Theme.Opposite)
}
