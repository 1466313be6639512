package scaffold

import (
	"fmt"
	"strings"
)

// TemplateKind identifies one of the generated files.
type TemplateKind int

const (
	Action TemplateKind = iota
	Reducer
	Effect
	Service
	Module
	ComponentScript
	ComponentStyle
	ComponentMarkup
)

// AllKinds returns every kind in emission order.
func AllKinds() []TemplateKind {
	return []TemplateKind{
		Action,
		Reducer,
		Effect,
		Service,
		Module,
		ComponentScript,
		ComponentStyle,
		ComponentMarkup,
	}
}

var kindNames = map[TemplateKind]string{
	Action:          "action",
	Reducer:         "reducer",
	Effect:          "effect",
	Service:         "service",
	Module:          "module",
	ComponentScript: "component-script",
	ComponentStyle:  "component-style",
	ComponentMarkup: "component-markup",
}

// String returns the kind's name as accepted by ParseKind.
func (k TemplateKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TemplateKind(%d)", int(k))
}

// Suffix returns the part of the filename between the slug and the extension.
func (k TemplateKind) Suffix() string {
	switch k {
	case Action:
		return "actions"
	case Reducer:
		return "reducer"
	case Effect:
		return "effects"
	case Service:
		return "service"
	case Module:
		return "module"
	default:
		return "component"
	}
}

// Ext returns the file extension without the dot.
func (k TemplateKind) Ext() string {
	switch k {
	case ComponentStyle:
		return "scss"
	case ComponentMarkup:
		return "html"
	default:
		return "ts"
	}
}

// Filename returns {slug}.{suffix}.{ext}.
func (k TemplateKind) Filename(slug string) string {
	return slug + "." + k.Suffix() + "." + k.Ext()
}

// ParseKind looks up a kind by name, case-insensitively.
func ParseKind(name string) (TemplateKind, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, k := range AllKinds() {
		if kindNames[k] == want {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown template kind %q (valid: %s)", name, strings.Join(kindNameList(), ", "))
}

// ParseKinds parses a list of kind names, dropping duplicates.
// An empty list yields AllKinds.
func ParseKinds(names []string) ([]TemplateKind, error) {
	if len(names) == 0 {
		return AllKinds(), nil
	}

	seen := make(map[TemplateKind]bool, len(names))
	kinds := make([]TemplateKind, 0, len(names))
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func kindNameList() []string {
	names := make([]string, 0, len(kindNames))
	for _, k := range AllKinds() {
		names = append(names, kindNames[k])
	}
	return names
}
