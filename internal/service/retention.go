package service

import (
	"time"

	"github.com/DanRulev/lingobot.git/internal/models"
)

const DefaultDecayDays = 10

// EffectiveCount applies read-time decay: one step per decayDays full days
// since lastTouched, never below zero. The stored count is not changed.
func EffectiveCount(count int, lastTouched, now time.Time, decayDays int) int {
	if decayDays <= 0 {
		decayDays = DefaultDecayDays
	}

	days := int(now.Sub(lastTouched) / (24 * time.Hour))
	if days < 0 {
		days = 0
	}

	effective := count - days/decayDays
	if effective < 0 {
		return 0
	}
	return effective
}

// TierFor buckets an effective count. Upper bounds are inclusive.
func TierFor(effective int) models.RetentionTier {
	switch {
	case effective <= 0:
		return models.TierForgotten
	case effective <= 4:
		return models.TierWeak
	case effective <= 8:
		return models.TierHalf
	case effective <= 12:
		return models.TierStrong
	default:
		return models.TierMastered
	}
}
