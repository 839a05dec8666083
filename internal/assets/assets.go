package assets

// Built-in asset names.
const (
	DefaultTemplateName = "page"
	DefaultStyleName    = "legal"
)
