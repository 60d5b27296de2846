package model

type Color string

// Palette is the fixed set of project colors.
const (
	ColorBlue   Color = "bg-blue-500"
	ColorGreen  Color = "bg-green-500"
	ColorPurple Color = "bg-purple-500"
	ColorRed    Color = "bg-red-500"
	ColorYellow Color = "bg-yellow-500"
	ColorPink   Color = "bg-pink-500"
	ColorIndigo Color = "bg-indigo-500"
)

var Palette = []Color{
	ColorBlue,
	ColorGreen,
	ColorPurple,
	ColorRed,
	ColorYellow,
	ColorPink,
	ColorIndigo,
}

func (c Color) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}

// Project is a named container owning an ordered task sequence. Task order is
// semantically meaningful (drag position), so Tasks is a slice, not a map.
type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color Color  `json:"color"`
	Tasks []Task `json:"tasks"`
}

// Clone returns a deep copy.
func (p Project) Clone() Project {
	out := p
	out.Tasks = make([]Task, len(p.Tasks))
	for i, t := range p.Tasks {
		out.Tasks[i] = t.Clone()
	}
	return out
}

// CloneProjects deep-copies a whole project collection. Used for undo
// snapshots and read-side projections.
func CloneProjects(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}
