package registry

import "strings"

// noServersSentinel is the phrase claude prints when nothing is registered.
const noServersSentinel = "No MCP servers configured"

// isRecordStart reports whether a line opens a new server entry in claude's
// list output. A record line is "name: command..."; the name must be
// non-empty and free of path separators, which rejects wrapped continuation
// lines that happen to contain a colon (e.g. "C:\tools\server.exe").
func isRecordStart(line string) (name, rest string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:idx])
	if name == "" || strings.ContainsAny(name, "/\\") {
		return "", "", false
	}
	return name, strings.TrimSpace(line[idx+1:]), true
}

// ParseListOutput converts the free text of `claude mcp list` into server
// record stubs. The list output does not say which transport or scope a
// server has, so stubs default to stdio/local; `claude mcp get` is the
// authoritative path for those fields. claude wraps long command lines across
// multiple text lines with no delimiter, so lines that do not qualify as a
// record start are folded into the preceding record's command, joined with a
// single space. Lines before the first record that are not record starts are
// treated as banner noise and dropped. Unparseable input degrades to an empty
// slice rather than an error.
func ParseListOutput(raw string) []ServerRecord {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.Contains(trimmed, noServersSentinel) {
		return []ServerRecord{}
	}

	servers := []ServerRecord{}
	lines := strings.Split(trimmed, "\n")

	i := 0
	for i < len(lines) {
		name, first, ok := isRecordStart(lines[i])
		if !ok {
			i++
			continue
		}

		commandParts := []string{first}
		i++
		for i < len(lines) {
			if _, _, next := isRecordStart(lines[i]); next {
				break
			}
			commandParts = append(commandParts, strings.TrimSpace(lines[i]))
			i++
		}

		servers = append(servers, ServerRecord{
			Name:      name,
			Transport: TransportStdio,
			Command:   strings.Join(commandParts, " "),
			Args:      []string{},
			Env:       map[string]string{},
			Scope:     ScopeLocal,
		})
	}

	return servers
}
