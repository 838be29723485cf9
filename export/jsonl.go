package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
)

// WriteJSONL writes one JSON object per line, one line per record.
func WriteJSONL(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		line, err := sonic.Marshal(rec)
		if err != nil {
			return fmt.Errorf("export: marshal record: %w", err)
		}
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("export: write jsonl: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("export: write jsonl: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write jsonl: %w", err)
	}
	return nil
}

// ReadJSONL decodes a JSONL stream back into records.
func ReadJSONL(r io.Reader) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := sonic.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("export: parse jsonl: %w", err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("export: read jsonl: %w", err)
	}
	return out, nil
}

// SaveReport writes v as indented JSON to path. Used for the session
// report of a dataset build.
func SaveReport(path string, v any) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("export: save report: %w", err)
	}
	return nil
}
