package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks of a view file.
type fileRoot struct {
	Styles  []*Style  `hcl:"style,block"`
	Legends []*Legend `hcl:"legend,block"`
	Remain  hcl.Body  `hcl:",remain"`
}

// Style is the `style "<kind>" { ... }` block. Token attributes stay raw
// expressions so that omitted ones can be told apart from set ones.
type Style struct {
	Kind       string         `hcl:"kind,label"`
	Shape      hcl.Expression `hcl:"shape,optional"`
	Color      hcl.Expression `hcl:"color,optional"`
	FontColor  hcl.Expression `hcl:"font_color,optional"`
	Properties []*Property    `hcl:"property,block"`
}

// Property is the `property "<field>" { display = "..." }` block.
type Property struct {
	Field   string  `hcl:"field,label"`
	Display *string `hcl:"display,optional"`
}

// Legend is the `legend "<report>" { entry "<text>" { ... } }` block.
type Legend struct {
	Report  string   `hcl:"report,label"`
	Entries []*Entry `hcl:"entry,block"`
}

// Entry is one legend line.
type Entry struct {
	Text      string         `hcl:"text,label"`
	Shape     hcl.Expression `hcl:"shape,optional"`
	Color     hcl.Expression `hcl:"color,optional"`
	FontColor hcl.Expression `hcl:"font_color,optional"`
}
