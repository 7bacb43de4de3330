package state

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gearshift/internal/models"
	"gearshift/internal/seed"
)

var fixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func fillRide(t *testing.T, s State, fields map[string]string) State {
	t.Helper()
	for field, value := range fields {
		var err error
		s, err = s.UpdateRideField(field, value)
		require.NoError(t, err)
	}
	return s
}

func TestSubmitRide_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		missing []string
	}{
		{
			name:    "без title",
			fields:  map[string]string{"owner": "Apex Anna", "image": "https://img/1.jpg"},
			missing: []string{"title"},
		},
		{
			name:    "без owner",
			fields:  map[string]string{"title": "R34", "image": "https://img/1.jpg"},
			missing: []string{"owner"},
		},
		{
			name:    "без image",
			fields:  map[string]string{"title": "R34", "owner": "Apex Anna", "mods": "Turbo"},
			missing: []string{"image"},
		},
		{
			name:    "пустая форма",
			fields:  map[string]string{},
			missing: []string{"title", "owner", "image"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fillRide(t, New(seed.Rides(), seed.Meetups()), tt.fields)
			before := s.RideForm

			next, ride, err := s.SubmitRide(fixedNow)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.missing, verr.Fields())
			assert.Equal(t, FormRide, verr.Form)
			assert.Empty(t, ride.ID)
			assert.Equal(t, s.Rides, next.Rides)
			assert.Equal(t, before, next.RideForm)
		})
	}
}

func TestSubmitRide_PrependsAndResets(t *testing.T) {
	s := New(seed.Rides(), seed.Meetups())
	prev := len(s.Rides)

	s = fillRide(t, s, map[string]string{
		"title":     "Widebody S15",
		"owner":     "Drift Kid",
		"image":     "https://img/s15.jpg",
		"category":  "car",
		"mods":      "Coilovers, Turbo Kit,, ",
		"featured":  "Widebody , Drift",
		"engine":    "SR20DET",
		"instagram": "https://instagram.com/driftkid",
	})

	next, ride, err := s.SubmitRide(fixedNow)
	require.NoError(t, err)

	assert.Len(t, next.Rides, prev+1)
	assert.Equal(t, ride, next.Rides[0])
	assert.Equal(t, "drift-kid-1791979200000", ride.ID)
	assert.Equal(t, []string{"Coilovers", "Turbo Kit"}, ride.Mods)
	assert.Equal(t, []string{"Widebody", "Drift"}, ride.FeaturedMods)
	assert.Equal(t, "SR20DET", ride.Specs.Engine)
	assert.Equal(t, "TBD", ride.Specs.Power)
	assert.Equal(t, "https://instagram.com/driftkid", ride.Socials.Instagram)
	assert.Empty(t, ride.Socials.YouTube)
	assert.Equal(t, models.EmptyRideDraft(), next.RideForm)

	// the previous state is not affected
	assert.Len(t, s.Rides, prev)
}

func TestSubmitRide_Defaults(t *testing.T) {
	s := fillRide(t, New(nil, nil), map[string]string{
		"title":    "Mystery Build",
		"owner":    "anon",
		"image":    "https://img/x.jpg",
		"category": "",
	})

	next, ride, err := s.SubmitRide(fixedNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"Drop your mod list in the comments!"}, ride.Mods)
	assert.Equal(t, []string{"New Build"}, ride.FeaturedMods)
	assert.Equal(t, "Fresh build added to GearShift Society.", ride.Tagline)
	assert.Equal(t, "Worldwide", ride.Location)
	assert.Equal(t, models.CategoryCar, ride.Category)
	assert.Equal(t, models.Specs{Engine: "TBD", Drivetrain: "TBD", Power: "TBD", Wheels: "TBD"}, ride.Specs)
	assert.Equal(t, models.Socials{}, ride.Socials)
	assert.Len(t, next.Rides, 1)
}

func TestSubmitRide_InvalidCategory(t *testing.T) {
	s := fillRide(t, New(nil, nil), map[string]string{
		"title":    "Hover Car",
		"owner":    "doc",
		"image":    "https://img/x.jpg",
		"category": "spaceship",
	})

	next, _, err := s.SubmitRide(fixedNow)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"category"}, verr.Fields())
	assert.Contains(t, verr.Problems[0].Message, "car, bike, truck")
	assert.Empty(t, next.Rides)
}

func TestSubmitRide_UniqueIDsForRapidSubmissions(t *testing.T) {
	s := New(nil, nil)
	ids := map[string]bool{}

	for i := 0; i < 3; i++ {
		s = fillRide(t, s, map[string]string{"title": "Build", "owner": "Same Owner", "image": "https://img/x.jpg"})
		var ride models.Ride
		var err error
		s, ride, err = s.SubmitRide(fixedNow)
		require.NoError(t, err)
		assert.False(t, ids[ride.ID], "duplicate id %s", ride.ID)
		ids[ride.ID] = true
	}

	assert.Equal(t, "same-owner-1791979200002", s.Rides[0].ID)
	assert.Equal(t, "same-owner-1791979200000", s.Rides[2].ID)
}

func TestSubmitMeetup(t *testing.T) {
	s := New(nil, seed.Meetups())
	prev := len(s.Meetups)

	t.Run("без обязательных полей", func(t *testing.T) {
		s2, err := s.UpdateMeetupField("title", "Dyno Day")
		require.NoError(t, err)

		next, _, err := s2.SubmitMeetup(fixedNow)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"date", "location"}, verr.Fields())
		assert.Len(t, next.Meetups, prev)
		assert.Equal(t, "Dyno Day", next.MeetupForm.Title)
	})

	t.Run("успешная публикация", func(t *testing.T) {
		s2 := s
		for field, value := range map[string]string{
			"title":    "Dyno Day",
			"date":     "2026-11-01T10:00",
			"location": "Speed Shop, Austin",
			"tags":     " Dyno,, Tuning ",
		} {
			var err error
			s2, err = s2.UpdateMeetupField(field, value)
			require.NoError(t, err)
		}

		next, meetup, err := s2.SubmitMeetup(fixedNow)
		require.NoError(t, err)

		assert.Len(t, next.Meetups, prev+1)
		assert.Equal(t, meetup, next.Meetups[0])
		assert.Equal(t, "-1791979200000", meetup.ID)
		assert.Equal(t, "Community Member", meetup.Organizer)
		assert.Equal(t, "New community meetup was just posted.", meetup.Description)
		assert.Equal(t, []string{"Dyno", "Tuning"}, meetup.Tags)
		assert.Empty(t, meetup.MapURL)
		assert.Equal(t, models.EmptyMeetupDraft(), next.MeetupForm)
	})

	t.Run("теги по умолчанию", func(t *testing.T) {
		s2 := s
		s2.MeetupForm = models.MeetupDraft{Title: "Cruise", Date: "2026-11-01T10:00", Location: "Pier 5", Organizer: "Night Crew"}

		_, meetup, err := s2.SubmitMeetup(fixedNow)
		require.NoError(t, err)
		assert.Equal(t, []string{"Community"}, meetup.Tags)
		assert.Equal(t, "night-crew-1791979200000", meetup.ID)
	})
}

func TestUpdateField(t *testing.T) {
	s := New(nil, nil)

	next, err := s.UpdateField(FormRide, "wheels", "18x9.5")
	require.NoError(t, err)
	assert.Equal(t, "18x9.5", next.RideForm.Wheels)

	next, err = next.UpdateField(FormMeetup, "mapUrl", "https://maps/x")
	require.NoError(t, err)
	assert.Equal(t, "https://maps/x", next.MeetupForm.MapURL)

	_, err = next.UpdateField(FormRide, "horsepower", "900")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = next.UpdateField("garage", "title", "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	// raw values are stored as typed
	next, err = next.UpdateField(FormRide, "mods", " a,, b ")
	require.NoError(t, err)
	assert.Equal(t, " a,, b ", next.RideForm.Mods)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Coilovers", "Turbo Kit"}, SplitList("Coilovers, Turbo Kit,, "))
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , ,"))
	assert.Equal(t, []string{"single"}, SplitList("single"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "apex-anna", Slug("Apex Anna"))
	assert.Equal(t, "big-block-bob", Slug("Big \t Block  Bob"))
	assert.Equal(t, "-lead", Slug(" Lead"))
	assert.Equal(t, "", Slug(""))
}
