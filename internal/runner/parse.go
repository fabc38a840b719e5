package runner

import (
	"regexp"
	"strconv"
)

// Summary parsing is best-effort: runners that print "N passed"-style
// summary lines (cargo does verbatim) are counted; anything else yields
// zeros and the process exit code stands on its own.
var (
	passedRe   = regexp.MustCompile(`(\d+) passed`)
	failedRe   = regexp.MustCompile(`(\d+) failed`)
	ignoredRe  = regexp.MustCompile(`(\d+) ignored`)
	durationRe = regexp.MustCompile(`finished in ([\d.]+)s`)
)

func parseCounts(output string) (passed, failed, ignored int) {
	return matchCount(passedRe, output), matchCount(failedRe, output), matchCount(ignoredRe, output)
}

func matchCount(re *regexp.Regexp, output string) int {
	match := re.FindStringSubmatch(output)
	if match == nil {
		return 0
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return n
}

func parseDuration(output string) float64 {
	match := durationRe.FindStringSubmatch(output)
	if match == nil {
		return 0
	}
	seconds, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return seconds
}
