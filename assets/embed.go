package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed help.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimRight(sc.Text(), " \t")
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// HelpLines returns the interactive command reference, one command per line.
func HelpLines() ([]string, error) {
	return readLines("help.txt")
}
