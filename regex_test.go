package tinyregex

import (
	"strings"
	"testing"
)

func TestCompileRejectsMalformedPatterns(t *testing.T) {
	for _, pattern := range []string{"(", "[a-", "a\\", "*", ")"} {
		if _, err := Compile(pattern); err == nil {
			t.Errorf("Compile(%q) succeeded, want a parse error", pattern)
		}
	}
}

func TestMustCompilePanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustCompile to panic on an invalid pattern")
		}
	}()
	MustCompile("(")
}

func TestIsMatchAlternationWithStar(t *testing.T) {
	re := MustCompile(`a*(b|cd*)`)
	if !re.IsMatch("aab") {
		t.Error(`expected "aab" to match a*(b|cd*)`)
	}
	// "cd*" accepts "c" alone (zero trailing d's), so any substring
	// consisting of a lone 'c' already matches - including the first
	// character of "ccdddd".
	if !re.IsMatch("ccdddd") {
		t.Error(`expected "ccdddd" to match a*(b|cd*): "c" alone is in the language of cd*`)
	}
	if re.IsMatch("xyz") {
		t.Error(`expected "xyz" not to match a*(b|cd*)`)
	}
}

func TestFindLeftmostLongest(t *testing.T) {
	re := MustCompile(`a(b|c)*d`)
	m, ok := re.Find("wxyzabbbcdeffe")
	if !ok {
		t.Fatal("expected a match")
	}
	if start, end := m.Range(); start != 4 || end != 10 {
		t.Errorf("Range() = (%d, %d), want (4, 10)", start, end)
	}
	if got, want := m.AsStr(), "abbbcd"; got != want {
		t.Errorf("AsStr() = %q, want %q", got, want)
	}
}

func TestFindOverUnicodeInput(t *testing.T) {
	re := MustCompile(`[a-zA-Z][a-zA-Z0-9]*`)
	m, ok := re.Find("うにょ hello114514")
	if !ok {
		t.Fatal("expected a match")
	}
	if start, end := m.Range(); start != 10 || end != 21 {
		t.Errorf("Range() = (%d, %d), want (10, 21)", start, end)
	}
	if got, want := m.AsStr(), "hello114514"; got != want {
		t.Errorf("AsStr() = %q, want %q", got, want)
	}
}

func TestFindAllWords(t *testing.T) {
	re := MustCompile(`[a-zA-Z][a-zA-Z]*`)
	var got []string
	for m := range re.FindAll("my name is Unyo") {
		got = append(got, m.AsStr())
	}
	want := []string{"my", "name", "is", "Unyo"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFindAllNegatedClassOverUnicode(t *testing.T) {
	re := MustCompile(`[^・ー]`)
	input := "エドワード・ノートン\n"
	excluded := map[rune]bool{'・': true, 'ー': true}

	var gotMatches []string
	for m := range re.FindAll(input) {
		gotMatches = append(gotMatches, m.AsStr())
	}

	var wantMatches []string
	for _, r := range input {
		if !excluded[r] {
			wantMatches = append(wantMatches, string(r))
		}
	}

	if len(gotMatches) != len(wantMatches) {
		t.Fatalf("got %d matches %v, want %d matches %v", len(gotMatches), gotMatches, len(wantMatches), wantMatches)
	}
	for i := range wantMatches {
		if gotMatches[i] != wantMatches[i] {
			t.Fatalf("match %d: got %q, want %q", i, gotMatches[i], wantMatches[i])
		}
	}
}

func TestFindAllAdvancesPastZeroWidthMatches(t *testing.T) {
	re := MustCompile(`a*`)
	var ranges [][2]int
	for m := range re.FindAll("bb") {
		s, e := m.Range()
		ranges = append(ranges, [2]int{s, e})
	}
	want := [][2]int{{0, 0}, {1, 1}, {2, 2}}
	if len(ranges) != len(want) {
		t.Fatalf("got %v, want %v", ranges, want)
	}
	for i := range want {
		if ranges[i] != want[i] {
			t.Fatalf("got %v, want %v", ranges, want)
		}
	}
}

func TestFindAllNonOverlapping(t *testing.T) {
	re := MustCompile(`ab`)
	var matches []string
	for m := range re.FindAll("ababab") {
		matches = append(matches, m.AsStr())
	}
	if len(matches) != 3 {
		t.Fatalf("got %v, want 3 matches", matches)
	}
}

func TestFindAtRestrictsStartingPosition(t *testing.T) {
	re := MustCompile(`a`)
	if _, ok := re.FindAt("banana", 0); !ok {
		t.Fatal("expected a match from offset 0")
	}
	m, ok := re.FindAt("banana", 2)
	if !ok {
		t.Fatal("expected a match from offset 2")
	}
	if start := m.Start(); start != 3 {
		t.Errorf("Start() = %d, want 3", start)
	}
}

func TestFindAtBeyondInputLengthFindsNothing(t *testing.T) {
	re := MustCompile(`a`)
	if _, ok := re.FindAt("banana", 100); ok {
		t.Fatal("expected no match past the end of the input")
	}
}

func TestEmptyInputMatchesOnlyNullablePatterns(t *testing.T) {
	if MustCompile(`a*`).IsMatch("") == false {
		t.Error(`expected "a*" to match empty input`)
	}
	if MustCompile(`a`).IsMatch("") {
		t.Error(`expected "a" not to match empty input`)
	}
	m, ok := MustCompile(`a|`).Find("anything")
	if !ok || !m.IsEmpty() {
		t.Error(`expected "a|" to find an empty match immediately`)
	}
}

func TestMatchLenIsEndMinusStart(t *testing.T) {
	m, ok := MustCompile(`[a-z]*a`).Find("zzza")
	if !ok {
		t.Fatal("expected a match")
	}
	if got, want := m.Len(), m.End()-m.Start(); got != want {
		t.Errorf("Len() = %d, want End()-Start() = %d", got, want)
	}
}

func TestNegationDuality(t *testing.T) {
	dot := MustCompile(`.`)
	negA := MustCompile(`[^a]`)
	for _, c := range []string{"a", "b", "9", " "} {
		dotMatches := dot.IsMatch(c)
		negMatches := negA.IsMatch(c)
		wantNeg := dotMatches && c != "a"
		if negMatches != wantNeg {
			t.Errorf("[^a] on %q = %v, want %v", c, negMatches, wantNeg)
		}
	}
}

func TestEmptyAlternationBranch(t *testing.T) {
	re := MustCompile(`a|`)
	if !re.IsMatch("a") {
		t.Error(`expected "a|" to match "a"`)
	}
	if !re.IsMatch("") {
		t.Error(`expected "a|" to match ""`)
	}
}

func TestLazyAndEagerVariantsAgree(t *testing.T) {
	patterns := []string{`a*(b|cd*)`, `a(b|c)*d`, `[a-zA-Z][a-zA-Z0-9]*`, `[^xy]`, `.`}
	inputs := []string{"", "a", "abbbcd", "hello123", "xy42z", strings.Repeat("ab", 5)}

	for _, pattern := range patterns {
		eager, err := CompileWithConfig(pattern, Config{DFA: Eager, EnablePrefilter: true})
		if err != nil {
			t.Fatalf("Compile(%q): %v", pattern, err)
		}
		lazyRe, err := CompileWithConfig(pattern, Config{DFA: Lazy, EnablePrefilter: true})
		if err != nil {
			t.Fatalf("Compile(%q): %v", pattern, err)
		}
		for _, in := range inputs {
			if got, want := lazyRe.IsMatch(in), eager.IsMatch(in); got != want {
				t.Errorf("pattern %q input %q: lazy IsMatch=%v, eager IsMatch=%v", pattern, in, got, want)
			}
		}
	}
}

func TestPrefilterDoesNotChangeResults(t *testing.T) {
	patterns := []string{`hello`, `a*(b|cd*)`, `[a-zA-Z][a-zA-Z0-9]*`}
	inputs := []string{"", "hello world", "xhellox", "zzz", "hello114514"}

	for _, pattern := range patterns {
		withPF, err := CompileWithConfig(pattern, Config{DFA: Eager, EnablePrefilter: true})
		if err != nil {
			t.Fatalf("Compile(%q): %v", pattern, err)
		}
		withoutPF, err := CompileWithConfig(pattern, Config{DFA: Eager, EnablePrefilter: false})
		if err != nil {
			t.Fatalf("Compile(%q): %v", pattern, err)
		}
		for _, in := range inputs {
			if got, want := withPF.IsMatch(in), withoutPF.IsMatch(in); got != want {
				t.Errorf("pattern %q input %q: withPF=%v, withoutPF=%v", pattern, in, got, want)
			}
		}
	}
}

func TestCompileWithConfigRejectsTooManyDFAStates(t *testing.T) {
	pattern := strings.Repeat("[a-zA-Z0-9]", 30)
	_, err := CompileWithConfig(pattern, Config{DFA: Eager, MaxDFAStates: 10})
	if err == nil {
		t.Fatal("CompileWithConfig with MaxDFAStates: 10 on a ~1862-state pattern should error")
	}
}

func TestCompileWithConfigMaxDFAStatesZeroIsUnlimited(t *testing.T) {
	pattern := strings.Repeat("[a-zA-Z0-9]", 30)
	if _, err := CompileWithConfig(pattern, Config{DFA: Eager, MaxDFAStates: 0}); err != nil {
		t.Fatalf("CompileWithConfig with MaxDFAStates: 0 error = %v, want nil", err)
	}
}

func TestCompileWithConfigMaxDFAStatesIgnoredForLazy(t *testing.T) {
	pattern := strings.Repeat("[a-zA-Z0-9]", 30)
	if _, err := CompileWithConfig(pattern, Config{DFA: Lazy, MaxDFAStates: 10}); err != nil {
		t.Fatalf("CompileWithConfig(Lazy, MaxDFAStates: 10) error = %v, want nil (cap only applies to Eager)", err)
	}
}
