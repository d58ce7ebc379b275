package service

import "github.com/playwise/kidsync/models"

// MergeProgress combines locally held and remotely fetched progress so that
// neither side's advancement is lost. Levels present on only one side are
// kept as-is; levels present on both are merged field by field. A remote
// fetch therefore never erases a local optimistic update the backend does
// not know about yet, and a stale local copy never rolls back state another
// device already pushed.
func MergeProgress(local, remote models.Progress) models.Progress {
	merged := make(models.Progress, len(local)+len(remote))
	for levelID, lp := range local {
		merged[levelID] = lp
	}
	for levelID, rp := range remote {
		if lp, ok := merged[levelID]; ok {
			merged[levelID] = mergeLevelProgress(lp, rp)
			continue
		}
		merged[levelID] = rp
	}
	return merged
}

// mergeLevelProgress resolves one level present on both sides. Every field
// is monotonic, so "more advanced wins" reduces to a per-field maximum:
// counters and scores numerically, the play timestamp chronologically.
func mergeLevelProgress(a, b models.LevelProgress) models.LevelProgress {
	out := a
	if b.CompletedCount > out.CompletedCount {
		out.CompletedCount = b.CompletedCount
	}
	if b.BestScore > out.BestScore {
		out.BestScore = b.BestScore
	}
	if b.Stars > out.Stars {
		out.Stars = b.Stars
	}
	if b.LastPlayedAt != nil && (out.LastPlayedAt == nil || b.LastPlayedAt.After(*out.LastPlayedAt)) {
		t := *b.LastPlayedAt
		out.LastPlayedAt = &t
	}
	return out
}
