// Package state holds the page state of one visitor session and the pure
// transitions that change it. Every transition works on a copy and returns
// the next state, so callers decide when a new state becomes visible.
package state

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"gearshift/internal/models"
)

const (
	FormRide   = "ride"
	FormMeetup = "meetup"
)

const (
	defaultTagline     = "Fresh build added to GearShift Society."
	defaultLocation    = "Worldwide"
	defaultSpec        = "TBD"
	defaultMod         = "Drop your mod list in the comments!"
	defaultFeatured    = "New Build"
	defaultDescription = "New community meetup was just posted."
	defaultOrganizer   = "Community Member"
	defaultTag         = "Community"
)

type State struct {
	Rides      []models.Ride
	Meetups    []models.Meetup
	RideForm   models.RideDraft
	MeetupForm models.MeetupDraft

	// last millisecond stamp handed out for an id
	lastStamp int64
}

// New returns a state over the given lists with both drafts at their baseline.
func New(rides []models.Ride, meetups []models.Meetup) State {
	return State{
		Rides:      rides,
		Meetups:    meetups,
		RideForm:   models.EmptyRideDraft(),
		MeetupForm: models.EmptyMeetupDraft(),
	}
}

// UpdateRideField stores the raw input for one ride form field.
func (s State) UpdateRideField(field, value string) (State, error) {
	if !s.RideForm.Set(field, value) {
		return s, fmt.Errorf("%w: ride.%s", ErrUnknownField, field)
	}
	return s, nil
}

func (s State) UpdateMeetupField(field, value string) (State, error) {
	if !s.MeetupForm.Set(field, value) {
		return s, fmt.Errorf("%w: meetup.%s", ErrUnknownField, field)
	}
	return s, nil
}

// UpdateField dispatches to the draft named by form.
func (s State) UpdateField(form, field, value string) (State, error) {
	switch form {
	case FormRide:
		return s.UpdateRideField(field, value)
	case FormMeetup:
		return s.UpdateMeetupField(field, value)
	}
	return s, fmt.Errorf("%w: %s.%s", ErrUnknownField, form, field)
}

// SubmitRide turns the ride draft into a ride at the head of the list and
// resets the draft. On a validation error the returned state is s.
func (s State) SubmitRide(now time.Time) (State, models.Ride, error) {
	d := s.RideForm
	if err := checkDraft(FormRide, d); err != nil {
		return s, models.Ride{}, err
	}

	category := models.Category(d.Category)
	if category == "" {
		category = models.CategoryCar
	}

	next := s
	ride := models.Ride{
		ID:       next.newID(d.Owner, now),
		Title:    d.Title,
		Owner:    d.Owner,
		Tagline:  orDefault(d.Tagline, defaultTagline),
		Category: category,
		Image:    d.Image,
		Location: orDefault(d.Location, defaultLocation),
		Specs: models.Specs{
			Engine:     orDefault(d.Engine, defaultSpec),
			Drivetrain: orDefault(d.Drivetrain, defaultSpec),
			Power:      orDefault(d.Power, defaultSpec),
			Wheels:     orDefault(d.Wheels, defaultSpec),
		},
		Mods:         listOrDefault(SplitList(d.Mods), defaultMod),
		FeaturedMods: listOrDefault(SplitList(d.Featured), defaultFeatured),
		Socials: models.Socials{
			Instagram: d.Instagram,
			YouTube:   d.YouTube,
			TikTok:    d.TikTok,
		},
	}

	next.Rides = append([]models.Ride{ride}, s.Rides...)
	next.RideForm = models.EmptyRideDraft()
	return next, ride, nil
}

// SubmitMeetup is the meetup counterpart of SubmitRide.
func (s State) SubmitMeetup(now time.Time) (State, models.Meetup, error) {
	d := s.MeetupForm
	if err := checkDraft(FormMeetup, d); err != nil {
		return s, models.Meetup{}, err
	}

	next := s
	meetup := models.Meetup{
		ID:          next.newID(d.Organizer, now),
		Title:       d.Title,
		Description: orDefault(d.Description, defaultDescription),
		Date:        d.Date,
		Location:    d.Location,
		Organizer:   orDefault(d.Organizer, defaultOrganizer),
		Tags:        listOrDefault(SplitList(d.Tags), defaultTag),
		MapURL:      d.MapURL,
	}

	next.Meetups = append([]models.Meetup{meetup}, s.Meetups...)
	next.MeetupForm = models.EmptyMeetupDraft()
	return next, meetup, nil
}

// Stats derives the community stats from the current lists.
func (s State) Stats(now time.Time) Stats {
	return CommunityStats(s.Rides, s.Meetups, now)
}

// newID is slug(handle)-millis; the stamp only moves forward within a state.
func (s *State) newID(handle string, now time.Time) string {
	stamp := now.UnixMilli()
	if stamp <= s.lastStamp {
		stamp = s.lastStamp + 1
	}
	s.lastStamp = stamp
	return fmt.Sprintf("%s-%d", Slug(handle), stamp)
}

// Slug lowercases the handle and replaces each whitespace run with a dash.
func Slug(handle string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range strings.ToLower(handle) {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// SplitList splits a comma list, trims every token and drops empty ones.
func SplitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func listOrDefault(items []string, fallback string) []string {
	if len(items) == 0 {
		return []string{fallback}
	}
	return items
}
