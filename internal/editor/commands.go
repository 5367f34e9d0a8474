package editor

import (
	"fmt"
	"sort"
	"strings"
)

// Chord is a keyboard shortcut: modifier keys plus one letter key.
type Chord struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Key   string // single uppercase letter, e.g. "P"
}

func (c Chord) IsZero() bool {
	return c.Key == ""
}

func (c Chord) String() string {
	var parts []string
	if c.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if c.Shift {
		parts = append(parts, "Shift")
	}
	if c.Alt {
		parts = append(parts, "Alt")
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}

// Command is a named editor action, optionally bound to a key chord and a
// menu entry. Validate, when set, reports the checkmark state of the menu
// entry.
type Command struct {
	Name     string
	Title    string
	Menu     string // menu path, e.g. "View", empty = no menu entry
	Chord    Chord
	Run      func()
	Validate func() bool
}

// CommandRegistry holds all registered editor commands.
type CommandRegistry struct {
	commands map[string]*Command
	order    []string
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]*Command),
	}
}

func (r *CommandRegistry) Register(cmd Command) error {
	if cmd.Name == "" {
		return fmt.Errorf("command has no name")
	}
	if cmd.Run == nil {
		return fmt.Errorf("command %q has no action", cmd.Name)
	}
	if _, exists := r.commands[cmd.Name]; exists {
		return fmt.Errorf("command %q already registered", cmd.Name)
	}
	c := cmd
	r.commands[cmd.Name] = &c
	r.order = append(r.order, cmd.Name)
	return nil
}

// Run executes a command by name. Returns false for unknown names.
func (r *CommandRegistry) Run(name string) bool {
	cmd, ok := r.commands[name]
	if !ok {
		return false
	}
	cmd.Run()
	return true
}

// HandleChord runs the first command bound to the chord. Returns true if a
// command fired.
func (r *CommandRegistry) HandleChord(ch Chord) bool {
	if ch.IsZero() {
		return false
	}
	for _, name := range r.order {
		if r.commands[name].Chord == ch {
			r.commands[name].Run()
			return true
		}
	}
	return false
}

// Chords returns every bound chord, for the input loop to poll.
func (r *CommandRegistry) Chords() []Chord {
	var chords []Chord
	for _, name := range r.order {
		if ch := r.commands[name].Chord; !ch.IsZero() {
			chords = append(chords, ch)
		}
	}
	return chords
}

// MenuEntries returns all commands with a menu path, sorted by path then
// title.
func (r *CommandRegistry) MenuEntries() []*Command {
	var entries []*Command
	for _, name := range r.order {
		if r.commands[name].Menu != "" {
			entries = append(entries, r.commands[name])
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Menu != entries[j].Menu {
			return entries[i].Menu < entries[j].Menu
		}
		return entries[i].Title < entries[j].Title
	})
	return entries
}
