// Command restitute reads a pattern and a replacement string from its first
// two positional arguments, reads standard input in full, and for each
// line, emits the line with every non-overlapping match of the pattern
// replaced by the replacement string.
//
// Usage:
//
//	restitute <pattern> <replacement>
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/yuzuki-re/tinyregex"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <pattern> <replacement>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "substitutes every match of <pattern> in each line of standard input with <replacement>")
		os.Exit(2)
	}
	pattern := os.Args[1]
	replacement := os.Args[2]

	re, err := tinyregex.Compile(pattern)
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		gologger.Fatal().Msgf("reading standard input: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(strings.NewReader(string(input)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fmt.Fprintln(out, replaceLine(re, scanner.Text(), replacement))
	}
	if err := scanner.Err(); err != nil {
		gologger.Fatal().Msgf("reading line: %v", err)
	}
}

// replaceLine emits line with every non-overlapping match of re replaced by
// replacement, copying unmatched text through unchanged. A zero-width match
// contributes no replacement text: there is no byte range "start <= i < end"
// it could ever cover.
func replaceLine(re *tinyregex.Regex, line, replacement string) string {
	var b strings.Builder
	cursor := 0
	for m := range re.FindAll(line) {
		b.WriteString(line[cursor:m.Start()])
		if !m.IsEmpty() {
			b.WriteString(replacement)
		}
		cursor = m.End()
	}
	b.WriteString(line[cursor:])
	return b.String()
}
