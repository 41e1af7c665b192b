// Package formation places a team sheet on a normalized pitch diagram.
//
// Coordinates are percentages of the pitch surface: X runs from the left touchline (0)
// to the right touchline (100), Y from the goalkeeper's end (top) toward the attacking
// end (bottom). Renderers center each player marker on its coordinate.
package formation

// Coordinate is a position on the pitch surface, both axes in [0, 100].
type Coordinate struct {
	X float64
	Y float64
}

// Template is the ordered slot list of a formation: goalkeeper first, then defense,
// midfield and attack, each line left to right.
type Template []Coordinate

const (
	Name433     = "4-3-3"
	Name4231    = "4-2-3-1"
	Name442     = "4-4-2"
	Name352     = "3-5-2"
	Name532     = "5-3-2"
	Name343     = "3-4-3"
	NameDefault = "default"
)

var goalkeeperSlot = Coordinate{X: 50, Y: 10}

var templates = map[string]Template{
	Name433: {
		goalkeeperSlot,
		{15, 25}, {35, 25}, {65, 25}, {85, 25},
		{25, 50}, {50, 50}, {75, 50},
		{20, 80}, {50, 80}, {80, 80},
	},
	Name4231: {
		goalkeeperSlot,
		{15, 25}, {35, 25}, {65, 25}, {85, 25},
		{35, 45}, {65, 45},
		{20, 65}, {50, 65}, {80, 65},
		{50, 85},
	},
	Name442: {
		goalkeeperSlot,
		{15, 25}, {35, 25}, {65, 25}, {85, 25},
		{15, 50}, {35, 50}, {65, 50}, {85, 50},
		{35, 80}, {65, 80},
	},
	Name352: {
		goalkeeperSlot,
		{25, 25}, {50, 25}, {75, 25},
		{10, 50}, {30, 50}, {50, 50}, {70, 50}, {90, 50},
		{35, 80}, {65, 80},
	},
	Name532: {
		goalkeeperSlot,
		{10, 25}, {30, 25}, {50, 25}, {70, 25}, {90, 25},
		{25, 50}, {50, 50}, {75, 50},
		{35, 80}, {65, 80},
	},
	Name343: {
		goalkeeperSlot,
		{25, 25}, {50, 25}, {75, 25},
		{15, 50}, {35, 50}, {65, 50}, {85, 50},
		{20, 80}, {50, 80}, {80, 80},
	},
}

var defaultTemplate = Template{
	goalkeeperSlot,
	{20, 25}, {40, 25}, {60, 25}, {80, 25},
	{25, 50}, {50, 50}, {75, 50},
	{30, 75}, {50, 75}, {70, 75},
}

var names = []string{Name433, Name4231, Name442, Name352, Name532, Name343}

// Lookup returns the template registered under name. Matching is case-sensitive and
// the returned template is a copy.
func Lookup(name string) (Template, bool) {
	tpl, ok := templates[name]
	if !ok {
		return nil, false
	}
	return tpl.clone(), true
}

// DefaultTemplate is the layout used for any formation the registry does not know.
func DefaultTemplate() Template {
	return defaultTemplate.clone()
}

// Resolve returns the template for name, or the default template together with
// NameDefault when name is not registered.
func Resolve(name string) (Template, string) {
	if tpl, ok := Lookup(name); ok {
		return tpl, name
	}
	return DefaultTemplate(), NameDefault
}

// Names lists the registered formations in a stable order.
func Names() []string {
	return append([]string(nil), names...)
}

func (t Template) clone() Template {
	return append(Template(nil), t...)
}
