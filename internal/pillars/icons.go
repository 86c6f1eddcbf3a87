package pillars

// IconTag is the closed set of quick-peek icon identifiers. Unknown tags
// resolve to a default descriptor rather than an ambient fallback.
type IconTag string

const (
	IconMap         IconTag = "map"
	IconShield      IconTag = "shield"
	IconCPU         IconTag = "cpu"
	IconWrench      IconTag = "wrench"
	IconSun         IconTag = "sun"
	IconUsers       IconTag = "users"
	IconBook        IconTag = "book"
	IconCheck       IconTag = "check"
	IconActivity    IconTag = "activity"
	IconStethoscope IconTag = "stethoscope"
	IconHeart       IconTag = "heart"
	IconLeaf        IconTag = "leaf"
	IconAward       IconTag = "award"
)

// IconDescriptor tells the presentation layer what glyph to render.
type IconDescriptor struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Default bool   `json:"default,omitempty"`
}

var iconDescriptors = map[IconTag]IconDescriptor{
	IconMap:         {Name: "map", Label: "Map"},
	IconShield:      {Name: "shield", Label: "Shield"},
	IconCPU:         {Name: "cpu", Label: "Processor"},
	IconWrench:      {Name: "wrench", Label: "Wrench"},
	IconSun:         {Name: "sun", Label: "Sun"},
	IconUsers:       {Name: "users", Label: "People"},
	IconBook:        {Name: "book-open", Label: "Book"},
	IconCheck:       {Name: "check-circle", Label: "Check"},
	IconActivity:    {Name: "activity", Label: "Activity"},
	IconStethoscope: {Name: "stethoscope", Label: "Stethoscope"},
	IconHeart:       {Name: "heart", Label: "Heart"},
	IconLeaf:        {Name: "leaf", Label: "Leaf"},
	IconAward:       {Name: "award", Label: "Award"},
}

// Descriptor returns the display descriptor for a tag. Total over all
// strings: unknown tags get the explicit default glyph.
func (t IconTag) Descriptor() IconDescriptor {
	if d, ok := iconDescriptors[t]; ok {
		return d
	}
	return IconDescriptor{Name: "check-circle", Label: "Item", Default: true}
}

// Known reports whether the tag is part of the closed set.
func (t IconTag) Known() bool {
	_, ok := iconDescriptors[t]
	return ok
}
