// Command regrep reads a pattern from its first positional argument, reads
// the full input from standard input, and prints every match on its own
// line, one invocation of the compiled pattern against the whole input.
//
// Usage:
//
//	regrep [-lazy] [-v] <pattern>
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/yuzuki-re/tinyregex"
	"github.com/yuzuki-re/tinyregex/simd"
)

func main() {
	lazy := false
	verbose := false
	var pattern string

	args := os.Args[1:]
	for len(args) > 0 {
		switch args[0] {
		case "-lazy":
			lazy = true
			args = args[1:]
		case "-v", "-verbose":
			verbose = true
			args = args[1:]
		default:
			pattern = args[0]
			args = args[1:]
		}
	}

	if pattern == "" {
		fmt.Fprintf(os.Stderr, "usage: %s [-lazy] [-v] <pattern>\n", os.Args[0])
		os.Exit(2)
	}

	if verbose {
		caps := simd.DetectCapability()
		gologger.Verbose().Msgf("cpu capability: avx2=%v sse42=%v neon=%v", caps.AVX2, caps.SSE42, caps.NEON)
	}

	config := tinyregex.DefaultConfig()
	if lazy {
		config.DFA = tinyregex.Lazy
	}

	re, err := tinyregex.CompileWithConfig(pattern, config)
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		gologger.Fatal().Msgf("reading standard input: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for m := range re.FindAll(string(input)) {
		fmt.Fprintln(out, m.AsStr())
	}
}
