package models

type Category string

const (
	CategoryCar   Category = "car"
	CategoryBike  Category = "bike"
	CategoryTruck Category = "truck"
)

// Categories lists every ride category in the order the form offers them.
var Categories = []Category{CategoryCar, CategoryBike, CategoryTruck}

func (c Category) Valid() bool {
	switch c {
	case CategoryCar, CategoryBike, CategoryTruck:
		return true
	}
	return false
}

type Specs struct {
	Engine     string `json:"engine"`
	Drivetrain string `json:"drivetrain"`
	Power      string `json:"power"`
	Wheels     string `json:"wheels"`
}

type Socials struct {
	Instagram string `json:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
}

type Ride struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Owner        string   `json:"owner"`
	Tagline      string   `json:"tagline"`
	Category     Category `json:"category"`
	Image        string   `json:"image"`
	Location     string   `json:"location"`
	Specs        Specs    `json:"specs"`
	Mods         []string `json:"mods"`
	FeaturedMods []string `json:"featuredMods"`
	Socials      Socials  `json:"socials"`
}

// Meetup keeps Date as submitted; it is parsed only for display and the upcoming check.
type Meetup struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
	MapURL      string   `json:"mapUrl,omitempty"`
}

// Stat is one labeled figure of the community stats strip.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
