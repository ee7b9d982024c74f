package registry

import "strings"

// ParseDetailOutput converts the text of `claude mcp get <name>` into one
// fully-populated server record. Recognized fields are fixed-prefix lines
// (Scope:, Type:, Command:, Args:, URL:); anything else, including the
// environment block, is ignored. Missing fields keep their defaults
// (stdio transport, local scope).
func ParseDetailOutput(name, raw string) *ServerRecord {
	record := &ServerRecord{
		Name:      name,
		Transport: TransportStdio,
		Args:      []string{},
		Env:       map[string]string{},
		Scope:     ScopeLocal,
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "Scope:"):
			record.Scope = ParseScope(strings.TrimSpace(strings.TrimPrefix(line, "Scope:")))
		case strings.HasPrefix(line, "Type:"):
			record.Transport = Transport(strings.TrimSpace(strings.TrimPrefix(line, "Type:")))
		case strings.HasPrefix(line, "Command:"):
			record.Command = strings.TrimSpace(strings.TrimPrefix(line, "Command:"))
		case strings.HasPrefix(line, "Args:"):
			argsStr := strings.TrimSpace(strings.TrimPrefix(line, "Args:"))
			if argsStr != "" {
				record.Args = strings.Fields(argsStr)
			}
		case strings.HasPrefix(line, "URL:"):
			record.URL = strings.TrimSpace(strings.TrimPrefix(line, "URL:"))
		}
	}

	return record
}
