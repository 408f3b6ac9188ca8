package charts

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is a chart type the tool can render, or All.
type Kind int

const (
	Line Kind = iota + 1
	Bar
	Pie
	Scatter
	Heatmap
	All
)

var kindNames = map[Kind]string{
	Line:    "line",
	Bar:     "bar",
	Pie:     "pie",
	Scatter: "scatter",
	Heatmap: "heatmap",
	All:     "all",
}

var defaultLabels = map[Kind]string{
	Line:    "Line Chart",
	Bar:     "Bar Chart",
	Pie:     "Pie Chart",
	Scatter: "Scatter Plot",
	Heatmap: "Heatmap",
}

var confirmLabels = map[Kind]string{
	Line:    "Line chart",
	Bar:     "Bar chart",
	Pie:     "Pie chart",
	Scatter: "Scatter plot",
	Heatmap: "Heatmap",
}

// Concrete lists the renderable kinds in the order All draws them.
func Concrete() []Kind {
	return []Kind{Line, Bar, Pie, Scatter, Heatmap}
}

// Names lists every accepted chart_type token, All last.
func Names() []string {
	names := make([]string, 0, len(kindNames))
	for _, k := range append(Concrete(), All) {
		names = append(names, k.String())
	}
	return names
}

// ParseKind maps a chart_type token onto its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("invalid chart type %q (choose from %s)", s, strings.Join(Names(), ", "))
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DefaultLabel names the chart inside an All run ("Scatter Plot").
func (k Kind) DefaultLabel() string {
	return defaultLabels[k]
}

// ConfirmLabel prefixes the confirmation line ("Scatter plot").
func (k Kind) ConfirmLabel() string {
	return confirmLabels[k]
}

// SingleTitle is the title used when one chart is requested without --title.
func (k Kind) SingleTitle() string {
	return cases.Title(language.English).String(k.String()) + " Chart"
}
