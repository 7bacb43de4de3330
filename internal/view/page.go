package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"gearshift/internal/models"
	"gearshift/internal/state"
)

//go:embed templates/*.html
var templateFS embed.FS

type NavLink struct {
	Href  string
	Label string
}

// NavLinks are the header anchors into the page sections.
var NavLinks = []NavLink{
	{Href: "#rides", Label: "Build Gallery"},
	{Href: "#mods", Label: "Mods & Specs"},
	{Href: "#meetups", Label: "Meetups"},
	{Href: "#connect", Label: "Connect"},
}

type ConnectCard struct {
	Title       string
	Description string
	Href        string
}

var ConnectCards = []ConnectCard{
	{Title: "Discord Paddock", Description: "Live wrench cams, ECU tune sessions, vendor drops, exclusive vinyl packs.", Href: "https://discord.com"},
	{Title: "Meetup Locator", Description: "Geo-tag meetups, mark safe spots, embed preferred cruise loops.", Href: "#meetups"},
	{Title: "Builder Spotlight", Description: "Submit your build for a deep-dive feature on the front-page and socials.", Href: "#share"},
}

// Page is everything the page template reads.
type Page struct {
	NavLinks       []NavLink
	Stats          []models.Stat
	RideCount      int
	Rides          []RideCard
	Snapshots      []SpecSnapshot
	Meetups        []MeetupCard
	ConnectCards   []ConnectCard
	Categories     []models.Category
	RideForm       models.RideDraft
	MeetupForm     models.MeetupDraft
	RideErrors     []state.FieldProblem
	MeetupErrors   []state.FieldProblem
	UploadsEnabled bool
	Year           int
}

// StatList labels the community stats with thousands separators.
func StatList(s state.Stats) []models.Stat {
	return []models.Stat{
		{Label: "Registered Builds", Value: humanize.Comma(int64(s.RegisteredBuilds))},
		{Label: "Upcoming Meets", Value: humanize.Comma(int64(s.UpcomingMeets))},
		{Label: "Countries Represented", Value: humanize.Comma(int64(s.CountriesRepresented))},
		{Label: "Discord Members", Value: humanize.Comma(int64(s.DiscordMembers))},
	}
}

func BuildPage(st state.State, now time.Time) Page {
	rides := make([]RideCard, 0, len(st.Rides))
	for _, r := range st.Rides {
		rides = append(rides, NewRideCard(r))
	}
	meetups := make([]MeetupCard, 0, len(st.Meetups))
	for _, m := range st.Meetups {
		meetups = append(meetups, NewMeetupCard(m))
	}

	return Page{
		NavLinks:     NavLinks,
		Stats:        StatList(st.Stats(now)),
		RideCount:    len(st.Rides),
		Rides:        rides,
		Snapshots:    SpecSnapshots(st.Rides),
		Meetups:      meetups,
		ConnectCards: ConnectCards,
		Categories:   models.Categories,
		RideForm:     st.RideForm,
		MeetupForm:   st.MeetupForm,
		Year:         now.Year(),
	}
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"title": func(c models.Category) string {
			s := string(c)
			if s == "" {
				return ""
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
		"dateInput": models.DateInputValue,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderPage executes into a buffer first so a template error never leaves a half-written response.
func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.html", page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
