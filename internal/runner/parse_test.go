package runner

import "testing"

const cargoOutput = `running 7 tests
test sanity_math ... ok

test result: ok. 5 passed; 0 failed; 2 ignored; 0 measured; 0 filtered out; finished in 0.43s
`

func TestParseCounts(t *testing.T) {
	passed, failed, ignored := parseCounts(cargoOutput)
	if passed != 5 || failed != 0 || ignored != 2 {
		t.Fatalf("parseCounts = (%d, %d, %d), want (5, 0, 2)", passed, failed, ignored)
	}
}

func TestParseCountsNoSummaryLine(t *testing.T) {
	passed, failed, ignored := parseCounts("error: could not compile `proj`")
	if passed != 0 || failed != 0 || ignored != 0 {
		t.Fatalf("expected zero counts, got (%d, %d, %d)", passed, failed, ignored)
	}
}

func TestParseDuration(t *testing.T) {
	if got := parseDuration(cargoOutput); got != 0.43 {
		t.Fatalf("parseDuration = %v, want 0.43", got)
	}
	if got := parseDuration("no summary"); got != 0 {
		t.Fatalf("parseDuration = %v, want 0", got)
	}
}
