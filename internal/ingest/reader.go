package ingest

import (
	"bufio"
	"encoding/csv"
	"io"
	"net/url"
	"os"
	"strings"
)

// LoadURLs reads the listing URLs from the first column of a CSV file.
// Rows whose first column is not an absolute http(s) URL are skipped
// (fail-soft), which also drops any header row. A missing or unreadable
// file is fatal.
func LoadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(stripBOM(f))
	r.FieldsPerRecord = -1

	var urls []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(record) == 0 {
			continue
		}

		raw := strings.TrimSpace(record[0])
		if !isListingURL(raw) {
			continue
		}
		urls = append(urls, raw)
	}
	return urls, nil
}

func isListingURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	first, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if first != '\uFEFF' {
		br.UnreadRune()
	}
	return br
}
