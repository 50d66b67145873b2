// Command gen is a skeleton of a generator for the tables in
// github.com/tawesoft/utf8x/internal/unicode/tables. It parses
// UnicodeData.txt into sorted rows and logs how many it read; it does not
// write a table file. It is not built or run as part of this module; it
// exists to document the input a regeneration against a full UCD release
// would start from, for tables in the same shape as the committed ones
// (sorted range / record tables with a small init-time sort, rather than a
// two-level paged array).
//
//go:build ignore

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

var (
	ucdPath = flag.String("ucd", "UnicodeData.txt", "path to UnicodeData.txt")
	out     = flag.String("out", "tables_generated.go", "output file")
)

type unicodeDataRow struct {
	codepoint      rune
	generalCategory string
	combiningClass int
	decomposition  string
}

func parseUnicodeData(path string) ([]unicodeDataRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gen: opening UCD file: %w", err)
	}
	defer f.Close()

	var rows []unicodeDataRow
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ";")
		if len(fields) < 6 {
			continue
		}
		cp, err := strconv.ParseInt(fields[0], 16, 32)
		if err != nil {
			continue
		}
		ccc, _ := strconv.Atoi(fields[3])
		rows = append(rows, unicodeDataRow{
			codepoint:       rune(cp),
			generalCategory: fields[2],
			combiningClass:  ccc,
			decomposition:   fields[5],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gen: scanning UCD file: %w", err)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].codepoint < rows[j].codepoint })
	return rows, nil
}

func main() {
	flag.Parse()
	rows, err := parseUnicodeData(*ucdPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("gen: parsed %d UnicodeData.txt rows from %s (writing to %s is not implemented in this skeleton)",
		len(rows), *ucdPath, *out)
}
