package generate

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*.cs.tmpl
var templateFS embed.FS

// Ext is the file extension of generated artifacts.
const Ext = "cs"

// Placeholders recognised in the base templates.
const (
	PlaceholderComponent  = "@Component"
	PlaceholderStart      = "@Start"
	PlaceholderQueueUsing = "@QueueUsing"
	PlaceholderQueueField = "@QueueField"
	PlaceholderQueueUsage = "@QueueUsage"
)

// Kind identifies which half of the pair an artifact is.
type Kind string

const (
	KindComponent Kind = "component"
	KindSystem    Kind = "system"
)

// Flags toggles the optional fragments and suppresses artifacts.
// Each flag is independent of the others.
type Flags struct {
	Start       bool // start/dependency hook in the System
	Queue       bool // queue field in the Component, dequeue block in the System
	NoComponent bool
	NoSystem    bool
}

// Artifact is one rendered file. It is never mutated after Render returns.
type Artifact struct {
	Kind     Kind
	Filename string
	Text     string
}

// Filename returns the file name an artifact of kind k gets for name.
func Filename(name string, k Kind) string {
	if k == KindSystem {
		return fmt.Sprintf("%sSystem.%s", name, Ext)
	}
	return fmt.Sprintf("%s.%s", name, Ext)
}

// Render produces the artifacts for name in the default order
// (System, then Component).
func Render(name string, flags Flags) []Artifact {
	return RenderOrdered(name, flags, SystemFirst)
}

// RenderOrdered produces the artifacts for name in the given order.
// It never fails: the templates are fixed and substitution is plain text.
func RenderOrdered(name string, flags Flags, order Order) []Artifact {
	var system, component *Artifact

	if !flags.NoSystem {
		system = &Artifact{
			Kind:     KindSystem,
			Filename: Filename(name, KindSystem),
			Text:     renderSystem(name, flags),
		}
	}
	if !flags.NoComponent {
		component = &Artifact{
			Kind:     KindComponent,
			Filename: Filename(name, KindComponent),
			Text:     renderComponent(name, flags),
		}
	}

	first, second := system, component
	if order == ComponentFirst {
		first, second = component, system
	}

	out := make([]Artifact, 0, 2)
	for _, a := range []*Artifact{first, second} {
		if a != nil {
			out = append(out, *a)
		}
	}
	return out
}

func renderComponent(name string, flags Flags) string {
	text := mustRead("component")
	text = fill(text, PlaceholderQueueUsing, flags.Queue, "queue_using")
	text = fill(text, PlaceholderQueueField, flags.Queue, "queue_field")
	return finish(text, name)
}

func renderSystem(name string, flags Flags) string {
	text := mustRead("system")
	text = fill(text, PlaceholderStart, flags.Start, "start")
	text = fill(text, PlaceholderQueueUsage, flags.Queue, "queue_usage")
	return finish(text, name)
}

// fill replaces placeholder with the named fragment when on, else with nothing.
func fill(text, placeholder string, on bool, fragment string) string {
	value := ""
	if on {
		value = strings.TrimSuffix(mustRead(fragment), "\n")
	}
	return strings.ReplaceAll(text, placeholder, value)
}

// finish substitutes the identifier last, so fragments may reference it too.
// The replacement is not escaped: a name that itself contains a placeholder
// is substituted literally.
func finish(text, name string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, PlaceholderComponent, name))
}

// mustRead loads an embedded template. The set is compiled in, so a miss is
// a build defect rather than a runtime condition.
func mustRead(name string) string {
	data, err := templateFS.ReadFile("templates/" + name + ".cs.tmpl")
	if err != nil {
		panic(fmt.Sprintf("generate: embedded template %q missing: %v", name, err))
	}
	return string(data)
}
