package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"ncaa-rosters/internal/roster"
	"ncaa-rosters/internal/scrape"
)

// WriteJSON writes every roster as one object keyed by team name. Keys keep
// the order of results, a team that appears twice keeps its first position
// and its last roster. Teams without players are written as [].
func WriteJSON(w io.Writer, results []scrape.TeamResult) error {
	var order []string
	rosters := map[string][]roster.Entry{}
	for _, r := range results {
		if _, seen := rosters[r.Team.Name]; !seen {
			order = append(order, r.Team.Name)
		}
		entries := r.Result.Entries
		if entries == nil {
			entries = []roster.Entry{}
		}
		rosters[r.Team.Name] = entries
	}

	out := bufio.NewWriter(w)
	if len(order) == 0 {
		out.WriteString("{}\n")
		return out.Flush()
	}

	out.WriteString("{\n")
	for i, name := range order {
		key, err := marshal(name, "")
		if err != nil {
			return err
		}
		value, err := marshal(rosters[name], "  ")
		if err != nil {
			return err
		}
		out.WriteString("  ")
		out.Write(key)
		out.WriteString(": ")
		out.Write(value)
		if i < len(order)-1 {
			out.WriteString(",")
		}
		out.WriteString("\n")
	}
	out.WriteString("}\n")
	return out.Flush()
}

// marshal is json.MarshalIndent without html escaping.
func marshal(v any, prefix string) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent(prefix, "  ")
	err := encoder.Encode(v)
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(buffer.Bytes(), "\n"), nil
}

// SaveJSON writes the rosters to path, replacing it atomically.
func SaveJSON(path string, results []scrape.TeamResult) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	err = WriteJSON(tmp, results)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
