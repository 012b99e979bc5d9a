package powerinfo

// betterCandidate reports whether cand should replace best during a scan.
// The battery claiming the most seconds left wins; failing any report of
// seconds, the highest known percent wins; failing both, any battery beats
// the initial empty report, so that at minimum "a battery exists" is
// recorded.
func betterCandidate(cand, best PowerInfo) bool {
	if cand.Seconds < 0 && best.Seconds < 0 {
		if cand.Percent < 0 && best.Percent < 0 {
			return true
		}
		return cand.Percent > best.Percent
	}
	return cand.Seconds > best.Seconds
}
