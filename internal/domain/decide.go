package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Pricing tiers for available handles.
const (
	BasePrice    = 9.99
	PremiumPrice = 299.00
)

// premiumMaxLen is the normalized length at or under which an available
// handle is priced at the premium tier.
const premiumMaxLen = 4

// minHandleLen is the shortest handle that is ever available. Anything
// shorter is treated as reserved.
const minHandleLen = 3

// Decide runs the deterministic availability simulation for one handle on one
// platform. It is total and pure: it never fails, and the same input always
// produces the identical Result.
//
// The rule order is load-bearing: format validity and length disqualifiers run
// before the per-platform popularity heuristics, which run before the pricing
// fallback. Later rules never re-check earlier conditions.
func Decide(handle string, platform PlatformDef) Result {
	lower := strings.ToLower(handle)

	result := Result{
		ID:      platform.ID,
		Name:    platform.Name,
		Icon:    platform.Icon,
		Status:  StatusChecking,
		Price:   BasePrice,
		URL:     ProfileURL(platform.Name, handle),
		Details: Details{Message: "Checking..."},
	}

	if utf8.RuneCountInString(lower) < minHandleLen {
		result.Status = StatusTaken
		result.Details = Details{Message: "Reserved", Meta: "Too short"}
		return result
	}

	h := fingerprintAbs(lower)

	switch platform.ID {
	case "twitter":
		if utf8.RuneCountInString(lower) < 5 || h%3 == 0 {
			followers := (h%5000)*12 + 42
			result.Status = StatusTaken
			result.Details = Details{
				Message:     "Account active",
				Meta:        fmt.Sprintf("%.1fk followers", float64(followers)/1000),
				ActionLabel: "View Profile",
				ActionURL:   "https://twitter.com/" + lower,
			}
			return result
		}
	case "instagram":
		if h%4 == 0 {
			result.Status = StatusTaken
			result.Details = Details{Message: "Private Account", Meta: "Not available"}
			return result
		}
	case "facebook":
		if h%5 == 0 {
			result.Status = StatusTaken
			result.Details = Details{Message: "Page exists", Meta: "Business Page"}
			return result
		}
	case "github":
		if !isHandleFormat(lower) {
			result.Status = StatusTaken
			result.Details = Details{Message: "Invalid Format", Meta: "Alphanumeric Only"}
			return result
		}
		if h%6 == 0 {
			result.Status = StatusTaken
			result.Details = Details{Message: "User exists", Meta: "Active Dev"}
			return result
		}
	case "youtube":
		if h%4 == 2 {
			result.Status = StatusTaken
			result.Details = Details{Message: "Channel exists", Meta: "Verified"}
			return result
		}
	case "reddit":
		if h%7 == 0 {
			result.Status = StatusTaken
			result.Details = Details{Message: "Subreddit exists", Meta: "r/" + lower}
			return result
		}
	}

	if utf8.RuneCountInString(lower) <= premiumMaxLen {
		result.Status = StatusAvailable
		result.Price = PremiumPrice
		result.Details = Details{Message: "High Value", Meta: "Premium Tier"}
		return result
	}

	result.Status = StatusAvailable
	result.Price = BasePrice
	result.Details = Details{Message: "Available", Meta: "Instant Delivery"}
	return result
}

// Checking builds the placeholder result shown while a search is settling.
func Checking(handle string, platform PlatformDef) Result {
	return Result{
		ID:      platform.ID,
		Name:    platform.Name,
		Icon:    platform.Icon,
		Status:  StatusChecking,
		Price:   BasePrice,
		URL:     ProfileURL(platform.Name, handle),
		Details: Details{Message: "Checking..."},
	}
}

// ProfileURL is the canonical profile URL for a handle on a platform,
// regardless of availability outcome.
func ProfileURL(platformName, handle string) string {
	return fmt.Sprintf("https://%s.com/%s", strings.ToLower(platformName), strings.ToLower(handle))
}

// isHandleFormat reports whether s contains only lowercase alphanumerics and
// hyphens (s is already lowercased by the caller).
func isHandleFormat(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
