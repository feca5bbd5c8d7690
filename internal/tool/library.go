package tool

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Library is a slot-number-indexed table of tools.
type Library struct {
	tools map[int]Tool
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{tools: make(map[int]Tool)}
}

// Add inserts or replaces the tool at its own slot number.
func (l *Library) Add(t Tool) {
	l.tools[t.Number] = t
}

// Remove deletes the tool at number, if present.
func (l *Library) Remove(number int) {
	delete(l.tools, number)
}

// Get looks up a tool by slot number.
func (l *Library) Get(number int) (Tool, bool) {
	t, ok := l.tools[number]
	return t, ok
}

// List returns every tool sorted by slot number.
func (l *Library) List() []Tool {
	out := make([]Tool, 0, len(l.tools))
	for _, t := range l.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Format serialises the library to its text record format: one key:value
// block per tool, blank-line separated, tools in slot order.
func (l *Library) Format() string {
	var sb strings.Builder
	for i, t := range l.List() {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "number: %d\n", t.Number)
		fmt.Fprintf(&sb, "name: %s\n", t.Name)
		fmt.Fprintf(&sb, "kind: %s\n", t.Kind)
		fmt.Fprintf(&sb, "diameter: %s\n", strconv.FormatFloat(t.Diameter, 'f', -1, 64))
		fmt.Fprintf(&sb, "flute_count: %d\n", t.FluteCount)
		fmt.Fprintf(&sb, "flute_length: %s\n", strconv.FormatFloat(t.FluteLength, 'f', -1, 64))
		fmt.Fprintf(&sb, "overall_length: %s\n", strconv.FormatFloat(t.OverallLength, 'f', -1, 64))
		fmt.Fprintf(&sb, "default_rpm: %d\n", t.DefaultRPM)
		fmt.Fprintf(&sb, "default_feed_xy: %s\n", strconv.FormatFloat(t.DefaultFeedXY, 'f', -1, 64))
		fmt.Fprintf(&sb, "default_feed_z: %s\n", strconv.FormatFloat(t.DefaultFeedZ, 'f', -1, 64))
	}
	return sb.String()
}

// ParseLibrary reads the text record format written by Format.
func ParseLibrary(text string) (*Library, error) {
	lib := NewLibrary()
	var cur map[string]string

	flush := func() error {
		if cur == nil {
			return nil
		}
		t, err := toolFromFields(cur)
		if err != nil {
			return fmt.Errorf("parsing tool block: %w", err)
		}
		lib.Add(t)
		cur = nil
		return nil
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("malformed tool library line: %q", rawLine)
		}
		if cur == nil {
			cur = make(map[string]string)
		}
		cur[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return lib, nil
}

func toolFromFields(f map[string]string) (Tool, error) {
	number, err := strconv.Atoi(f["number"])
	if err != nil {
		return Tool{}, fmt.Errorf("invalid number: %w", err)
	}
	kind, err := ParseType(f["kind"])
	if err != nil {
		return Tool{}, err
	}
	diameter, err := strconv.ParseFloat(f["diameter"], 64)
	if err != nil {
		return Tool{}, fmt.Errorf("invalid diameter: %w", err)
	}
	fluteCount, _ := strconv.Atoi(f["flute_count"])
	fluteLength, _ := strconv.ParseFloat(f["flute_length"], 64)
	overallLength, _ := strconv.ParseFloat(f["overall_length"], 64)
	defaultRPM, _ := strconv.Atoi(f["default_rpm"])
	defaultFeedXY, _ := strconv.ParseFloat(f["default_feed_xy"], 64)
	defaultFeedZ, _ := strconv.ParseFloat(f["default_feed_z"], 64)

	return Tool{
		Number:        number,
		Name:          f["name"],
		Kind:          kind,
		Diameter:      diameter,
		FluteCount:    fluteCount,
		FluteLength:   fluteLength,
		OverallLength: overallLength,
		DefaultRPM:    defaultRPM,
		DefaultFeedXY: defaultFeedXY,
		DefaultFeedZ:  defaultFeedZ,
	}, nil
}

// Save writes the library's text record format to path.
func (l *Library) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create tool library file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(l.Format()); err != nil {
		return fmt.Errorf("failed to write tool library: %w", err)
	}
	return w.Flush()
}

// LoadLibrary reads a library from its text record format at path.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tool library file: %w", err)
	}
	return ParseLibrary(string(data))
}
