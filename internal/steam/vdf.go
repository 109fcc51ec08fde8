package steam

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Steam stores library and app metadata in Valve's KeyValues text format
// ("VDF"): nested blocks of quoted key/value pairs. vmm only ever reads
// two of these files, libraryfolders.vdf and appmanifest_<appid>.acf, so
// the parser below handles exactly that subset: strings and nested maps,
// no includes or conditionals.

// VDFMap is a parsed VDF block. Values are either string or VDFMap.
type VDFMap map[string]interface{}

// ParseVDF reads a VDF document from r and returns its root map.
func ParseVDF(r io.Reader) (VDFMap, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanVDFTokens)
	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vdf: %w", err)
	}
	if len(tokens) == 0 {
		return VDFMap{}, nil
	}

	// A document is a single root key followed by a block.
	pos := 0
	root := make(VDFMap)
	key := tokens[pos]
	pos++
	if pos >= len(tokens) {
		return nil, fmt.Errorf("vdf: unexpected end after key %q", key)
	}
	if tokens[pos] == "{" {
		pos++
		inner, err := parseVDFObject(tokens, &pos)
		if err != nil {
			return nil, err
		}
		root[key] = inner
	}
	return root, nil
}

// parseVDFObject consumes key/value pairs until the closing brace and
// leaves pos just past it.
func parseVDFObject(tokens []string, pos *int) (VDFMap, error) {
	result := make(VDFMap)
	for *pos < len(tokens) && tokens[*pos] != "}" {
		key := tokens[*pos]
		*pos++
		if *pos >= len(tokens) {
			return nil, fmt.Errorf("vdf: unexpected end after key %q", key)
		}
		if tokens[*pos] == "{" {
			*pos++
			inner, err := parseVDFObject(tokens, pos)
			if err != nil {
				return nil, err
			}
			result[key] = inner
		} else {
			result[key] = tokens[*pos]
			*pos++
		}
	}
	if *pos < len(tokens) && tokens[*pos] == "}" {
		*pos++
	}
	return result, nil
}

// scanVDFTokens is a bufio.SplitFunc yielding quoted strings (unquoted),
// braces, and bare words.
func scanVDFTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isVDFSpace(data[start]) {
		start++
	}
	if start >= len(data) {
		if atEOF {
			return start, nil, nil
		}
		return 0, nil, nil
	}
	data = data[start:]

	switch data[0] {
	case '"':
		for i := 1; i < len(data); i++ {
			if data[i] == '\\' && i+1 < len(data) {
				i++
				continue
			}
			if data[i] == '"' {
				return start + i + 1, data[1:i], nil
			}
		}
		if atEOF {
			return len(data) + start, nil, fmt.Errorf("vdf: unclosed quote")
		}
		return 0, nil, nil
	case '{', '}':
		return start + 1, data[0:1], nil
	}

	i := 0
	for i < len(data) && !unicode.IsSpace(rune(data[i])) && data[i] != '"' {
		i++
	}
	if i > 0 {
		return start + i, data[:i], nil
	}
	if atEOF {
		return start + 1, data[0:1], nil
	}
	return 0, nil, nil
}

func isVDFSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// libraryPaths pulls the library directories out of a parsed
// libraryfolders.vdf: entries are numbered "0", "1", ... and each carries
// a "path".
func libraryPaths(root VDFMap) []string {
	lf, ok := root["libraryfolders"].(VDFMap)
	if !ok {
		return nil
	}
	var paths []string
	for i := 0; ; i++ {
		entry, ok := lf[fmt.Sprintf("%d", i)].(VDFMap)
		if !ok {
			break
		}
		if p, ok := entry["path"].(string); ok && p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// AppManifest is the slice of an appmanifest_*.acf file vmm cares about.
type AppManifest struct {
	AppID      string
	Name       string
	InstallDir string
}

// ParseAppManifest extracts the app id, display name and install folder
// from appmanifest_*.acf content.
func ParseAppManifest(data string) (AppManifest, error) {
	root, err := ParseVDF(strings.NewReader(data))
	if err != nil {
		return AppManifest{}, err
	}
	state, ok := root["AppState"].(VDFMap)
	if !ok {
		return AppManifest{}, fmt.Errorf("vdf: missing AppState")
	}
	var m AppManifest
	if v, ok := state["appid"].(string); ok {
		m.AppID = v
	}
	if v, ok := state["name"].(string); ok {
		m.Name = v
	}
	if v, ok := state["installdir"].(string); ok {
		m.InstallDir = v
	}
	return m, nil
}
