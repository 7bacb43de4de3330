package view

import (
	"time"

	"gearshift/internal/models"
)

const (
	modsPreviewCount     = 4
	snapshotCount        = 6
	snapshotModsCount    = 3
	shortDateLayout      = "Mon, Jan 2, 03:04 PM"
	longDateLayout       = "1/2/2006, 3:04:05 PM"
	defaultCategoryBadge = "badge-car"
)

type SpecField struct {
	Label string
	Value string
}

type SocialLink struct {
	Label string
	Href  string
}

type RideCard struct {
	ID           string
	Title        string
	Owner        string
	Tagline      string
	Category     models.Category
	BadgeClass   string
	Image        string
	Location     string
	Specs        []SpecField
	ModsPreview  []string
	FeaturedMods []string
	Socials      []SocialLink
}

func specFields(s models.Specs, wheelsLabel string) []SpecField {
	return []SpecField{
		{Label: "Engine", Value: s.Engine},
		{Label: "Power", Value: s.Power},
		{Label: "Drivetrain", Value: s.Drivetrain},
		{Label: wheelsLabel, Value: s.Wheels},
	}
}

func NewRideCard(r models.Ride) RideCard {
	badge := defaultCategoryBadge
	if r.Category.Valid() {
		badge = "badge-" + string(r.Category)
	}

	var socials []SocialLink
	if r.Socials.Instagram != "" {
		socials = append(socials, SocialLink{Label: "Instagram", Href: r.Socials.Instagram})
	}
	if r.Socials.YouTube != "" {
		socials = append(socials, SocialLink{Label: "YouTube", Href: r.Socials.YouTube})
	}
	if r.Socials.TikTok != "" {
		socials = append(socials, SocialLink{Label: "TikTok", Href: r.Socials.TikTok})
	}

	return RideCard{
		ID:           r.ID,
		Title:        r.Title,
		Owner:        r.Owner,
		Tagline:      r.Tagline,
		Category:     r.Category,
		BadgeClass:   badge,
		Image:        r.Image,
		Location:     r.Location,
		Specs:        specFields(r.Specs, "Wheels"),
		ModsPreview:  head(r.Mods, modsPreviewCount),
		FeaturedMods: r.FeaturedMods,
		Socials:      socials,
	}
}

type MeetupCard struct {
	ID          string
	Title       string
	Description string
	Location    string
	Organizer   string
	Tags        []string
	MapURL      string
	HasMap      bool
	ShortDate   string
	LongDate    string
	DateTime    string
}

// NewMeetupCard formats the date twice; a date that does not parse is shown raw.
func NewMeetupCard(m models.Meetup) MeetupCard {
	card := MeetupCard{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Location:    m.Location,
		Organizer:   m.Organizer,
		Tags:        m.Tags,
		MapURL:      m.MapURL,
		HasMap:      m.MapURL != "",
		ShortDate:   m.Date,
		LongDate:    m.Date,
		DateTime:    m.Date,
	}

	if when, ok := m.When(); ok {
		card.ShortDate = when.Format(shortDateLayout)
		card.LongDate = when.Format(longDateLayout)
		card.DateTime = when.Format(time.RFC3339)
	}
	return card
}

// SpecSnapshot is one tile of the "Mods & Specs" pit wall.
type SpecSnapshot struct {
	ID       string
	Title    string
	Owner    string
	Location string
	Specs    []SpecField
	Mods     []string
}

func SpecSnapshots(rides []models.Ride) []SpecSnapshot {
	rides = head(rides, snapshotCount)
	out := make([]SpecSnapshot, 0, len(rides))
	for _, r := range rides {
		out = append(out, SpecSnapshot{
			ID:       r.ID,
			Title:    r.Title,
			Owner:    r.Owner,
			Location: r.Location,
			Specs:    specFields(r.Specs, "Wheels/Tires"),
			Mods:     head(r.Mods, snapshotModsCount),
		})
	}
	return out
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
