package engine

import (
	"fmt"
	"sort"
)

// ScriptFactory creates a Component from scene-file props.
type ScriptFactory func(props map[string]any) Component

// ScriptSerializer converts a Component back to props for scene saving.
// Returns nil if the component is not an instance of this script.
type ScriptSerializer func(c Component) map[string]any

type scriptEntry struct {
	factory    ScriptFactory
	serializer ScriptSerializer
}

var scriptRegistry = map[string]scriptEntry{}

// RegisterScript registers a named script with a factory and optional
// serializer. The serializer is used when saving the scene back to disk.
//
// Script reloads re-run the factory for every live instance, so any
// package-level state a script keeps must be re-derivable from props;
// the engine does not reset script globals.
func RegisterScript(name string, factory ScriptFactory, serializer ScriptSerializer) {
	if _, exists := scriptRegistry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptRegistry[name] = scriptEntry{factory: factory, serializer: serializer}
}

// CreateScript looks up a registered script by name and creates it with the
// given props. Returns nil for unknown scripts.
func CreateScript(name string, props map[string]any) Component {
	entry, ok := scriptRegistry[name]
	if !ok {
		return nil
	}
	return entry.factory(props)
}

// SerializeScript tries to serialize a component by checking all registered
// scripts. Returns (name, props, true) if found.
func SerializeScript(c Component) (string, map[string]any, bool) {
	for name, entry := range scriptRegistry {
		if entry.serializer == nil {
			continue
		}
		if props := entry.serializer(c); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// RegisteredScripts returns a sorted list of all registered script names.
func RegisteredScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
