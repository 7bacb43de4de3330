package seed

import "gearshift/internal/models"

var rides = []models.Ride{
	{
		ID:       "apex-anna-1700000000000",
		Title:    "Midnight Purple R34",
		Owner:    "Apex Anna",
		Tagline:  "Single-turbo RB26 tuned for canyon mornings and track Sundays.",
		Category: models.CategoryCar,
		Image:    "https://images.unsplash.com/photo-1544636331-e26879cd4d9b?auto=format&fit=crop&w=1200&q=80",
		Location: "Tokyo, Japan",
		Specs: models.Specs{
			Engine:     "RB26DETT 2.8L stroker",
			Drivetrain: "ATTESA E-TS AWD",
			Power:      "612 whp",
			Wheels:     "Volk TE37 18x10.5 / Michelin PS4S",
		},
		Mods: []string{
			"Garrett G35-900 single turbo",
			"Ohlins DFV coilovers",
			"Nismo carbon front lip",
			"Haltech Elite 2500",
			"Titanium exhaust",
		},
		FeaturedMods: []string{"Track build", "Single turbo"},
		Socials: models.Socials{
			Instagram: "https://instagram.com/apexanna",
			YouTube:   "https://youtube.com/@apexanna",
		},
	},
	{
		ID:       "mototomas-1700000100000",
		Title:    "Cafe Racer CB750",
		Owner:    "MotoTomas",
		Tagline:  "A 1978 Honda brought back with modern brakes and old-school soul.",
		Category: models.CategoryBike,
		Image:    "https://images.unsplash.com/photo-1558981806-ec527fa84c39?auto=format&fit=crop&w=1200&q=80",
		Location: "Lisbon, Portugal",
		Specs: models.Specs{
			Engine:     "736cc inline-four",
			Drivetrain: "5-speed chain drive",
			Power:      "72 hp",
			Wheels:     "18in spoked / Avon Roadrider",
		},
		Mods: []string{
			"Clip-on bars",
			"Brembo radial master cylinder",
			"Custom brat seat",
			"LED headlight swap",
		},
		FeaturedMods: []string{"Cafe racer", "Restomod"},
		Socials: models.Socials{
			TikTok: "https://tiktok.com/@mototomas",
		},
	},
	{
		ID:       "dirt-dan-1700000200000",
		Title:    "Overland Tacoma",
		Owner:    "Dirt Dan",
		Tagline:  "Built to sleep anywhere between Moab and the Pacific coast.",
		Category: models.CategoryTruck,
		Image:    "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?auto=format&fit=crop&w=1200&q=80",
		Location: "Denver, USA",
		Specs: models.Specs{
			Engine:     "3.5L V6",
			Drivetrain: "4WD, locked rear",
			Power:      "278 hp",
			Wheels:     "Method 701 17in / BFG KO2 285s",
		},
		Mods: []string{
			"3in lift with Fox 2.5 shocks",
			"Roof top tent",
			"Dual battery setup",
			"Steel front bumper with winch",
		},
		FeaturedMods: []string{"Overland", "Air Ride"},
		Socials: models.Socials{
			Instagram: "https://instagram.com/dirtdan",
			YouTube:   "https://youtube.com/@dirtdan",
			TikTok:    "https://tiktok.com/@dirtdan",
		},
	},
}

var meetups = []models.Meetup{
	{
		ID:          "apex-anna-1700000300000",
		Title:       "Daikoku Night Cruise",
		Description: "Late-night roll out to the parking area. Photographers welcome, no burnouts.",
		Date:        "2026-11-21T21:00",
		Location:    "Daikoku PA, Yokohama",
		Organizer:   "Apex Anna",
		Tags:        []string{"JDM", "Night cruise"},
		MapURL:      "https://maps.google.com/?q=Daikoku+Parking+Area",
	},
	{
		ID:          "mototomas-1700000400000",
		Title:       "Sintra Canyon Run",
		Description: "Morning ride through the Sintra hills, coffee stop at Cabo da Roca.",
		Date:        "2026-12-06T08:30",
		Location:    "Sintra, Portugal",
		Organizer:   "MotoTomas",
		Tags:        []string{"Bikes", "Canyon"},
	},
	{
		ID:          "dirt-dan-1700000500000",
		Title:       "Trail Day at Rampart Range",
		Description: "Easy to moderate trails, bring recovery gear and a radio.",
		Date:        "2025-06-14T09:00",
		Location:    "Rampart Range, Colorado",
		Organizer:   "Dirt Dan",
		Tags:        []string{"Off-road", "Overland"},
		MapURL:      "https://maps.google.com/?q=Rampart+Range+Road",
	},
}

// Rides returns a fresh copy of the seed rides.
func Rides() []models.Ride {
	out := make([]models.Ride, len(rides))
	for i, r := range rides {
		r.Mods = append([]string(nil), r.Mods...)
		r.FeaturedMods = append([]string(nil), r.FeaturedMods...)
		out[i] = r
	}
	return out
}

// Meetups returns a fresh copy of the seed meetups.
func Meetups() []models.Meetup {
	out := make([]models.Meetup, len(meetups))
	for i, m := range meetups {
		m.Tags = append([]string(nil), m.Tags...)
		out[i] = m
	}
	return out
}
