package model

// Merge returns a new template holding base's fields overridden by every
// field present in override. Collections are replaced wholesale rather than
// merged, and both inputs are copied so the result shares nothing mutable
// with either of them. A zero base is treated as an empty template.
func Merge(base, override Template) Template {
	out := base.Clone()
	src := override.Clone()

	if src.Tag != "" {
		out.Tag = src.Tag
	}
	if src.ID != "" {
		out.ID = src.ID
	}
	if len(src.ClassList) > 0 {
		out.ClassList = src.ClassList
	}
	if len(src.Styles) > 0 {
		out.Styles = src.Styles
	}
	if len(src.Attributes) > 0 {
		out.Attributes = src.Attributes
	}
	if len(src.EventBindings) > 0 {
		out.EventBindings = src.EventBindings
	}
	if src.Text != "" {
		out.Text = src.Text
	}
	if src.HTML != "" {
		out.HTML = src.HTML
	}
	if len(src.Children) > 0 {
		out.Children = src.Children
	}
	if len(src.ExistingChildren) > 0 {
		out.ExistingChildren = src.ExistingChildren
	}
	if src.Parent != nil {
		out.Parent = src.Parent
	}
	if src.Void {
		out.Void = true
	}
	return out
}
