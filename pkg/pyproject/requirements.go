package pyproject

import (
	"bufio"
	"bytes"
	"strings"
)

// Requirement is one package line of a pip requirements file
type Requirement struct {
	Name string `json:"name" yaml:"name"`
	Spec string `json:"spec,omitempty" yaml:"spec,omitempty"`
}

// String renders the requirement as written
func (r Requirement) String() string {
	return r.Name + r.Spec
}

// ParseRequirements extracts package requirements from a pip requirements
// file. Comments, blank lines and option lines (-r, -e, --index-url, ...)
// are skipped; line continuations are joined.
func ParseRequirements(data []byte) []Requirement {
	var reqs []Requirement
	var pending strings.Builder

	scanner := bufio.NewScanner(bytes.NewReader(data))
	// a single line may span the whole file
	scanner.Buffer(make([]byte, 0, 4096), len(data)+1)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasSuffix(line, `\`) {
			pending.WriteString(strings.TrimSuffix(line, `\`))
			continue
		}
		pending.WriteString(line)
		full := pending.String()
		pending.Reset()

		if req, ok := parseRequirementLine(full); ok {
			reqs = append(reqs, req)
		}
	}
	if pending.Len() > 0 {
		if req, ok := parseRequirementLine(pending.String()); ok {
			reqs = append(reqs, req)
		}
	}
	return reqs
}

func parseRequirementLine(line string) (Requirement, bool) {
	// " #" starts a comment; a bare # inside a URL fragment does not
	if i := strings.Index(line, " #"); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
		return Requirement{}, false
	}

	end := strings.IndexAny(line, "<>=!~;[@ ")
	if end < 0 {
		return Requirement{Name: line}, true
	}
	return Requirement{
		Name: line[:end],
		Spec: strings.TrimSpace(line[end:]),
	}, true
}
