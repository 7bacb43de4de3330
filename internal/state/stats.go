package state

import (
	"time"

	"gearshift/internal/models"
)

// DiscordMembers is the external community counter shown next to the derived stats.
const DiscordMembers = 12487

type Stats struct {
	RegisteredBuilds     int `json:"registeredBuilds"`
	UpcomingMeets        int `json:"upcomingMeets"`
	CountriesRepresented int `json:"countriesRepresented"`
	DiscordMembers       int `json:"discordMembers"`
}

// CommunityStats counts rides, meetups dated strictly after now and distinct
// ride locations. A meetup whose date does not parse is never upcoming.
func CommunityStats(rides []models.Ride, meetups []models.Meetup, now time.Time) Stats {
	upcoming := 0
	for _, m := range meetups {
		if when, ok := m.When(); ok && when.After(now) {
			upcoming++
		}
	}

	locations := make(map[string]struct{}, len(rides))
	for _, r := range rides {
		locations[r.Location] = struct{}{}
	}

	return Stats{
		RegisteredBuilds:     len(rides),
		UpcomingMeets:        upcoming,
		CountriesRepresented: len(locations),
		DiscordMembers:       DiscordMembers,
	}
}
