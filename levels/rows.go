package levels

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ParseRows reads platform rows one per line, as logged by the paint brush.
// Blank lines and trailing commas are ignored.
func ParseRows(r io.Reader) ([]PlatformRow, error) {
	var rows []PlatformRow
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(strings.TrimSpace(sc.Text()), ",")
		if line == "" {
			continue
		}
		var row PlatformRow
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, fmt.Errorf("levels: row line %d: %w", n, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("levels: read rows: %w", err)
	}
	return rows, nil
}

// Encode writes the layout as indented JSON.
func (l *Layout) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}
