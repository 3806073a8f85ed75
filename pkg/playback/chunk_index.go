package playback

import "math"

// ChunkIndexForTime, oynatma zamanını segment indexine çevirir.
// Hem player hem server aynı hesabı yapar, aralarında ayrıca bir protokol yok.
func ChunkIndexForTime(currentTimeSeconds, segmentDurationSeconds float64) int {
	if segmentDurationSeconds <= 0 {
		return 0
	}
	idx := math.Floor(currentTimeSeconds / segmentDurationSeconds)
	if idx < 0 {
		return 0
	}
	return int(idx)
}
