package models

// RideDraft mirrors the ride form. Lists are comma-joined strings.
type RideDraft struct {
	Title      string `json:"title" form:"title" validate:"required"`
	Owner      string `json:"owner" form:"owner" validate:"required"`
	Tagline    string `json:"tagline" form:"tagline"`
	Category   string `json:"category" form:"category" validate:"omitempty,oneof=car bike truck"`
	Image      string `json:"image" form:"image" validate:"required"`
	Location   string `json:"location" form:"location"`
	Engine     string `json:"engine" form:"engine"`
	Drivetrain string `json:"drivetrain" form:"drivetrain"`
	Power      string `json:"power" form:"power"`
	Wheels     string `json:"wheels" form:"wheels"`
	Mods       string `json:"mods" form:"mods"`
	Featured   string `json:"featured" form:"featured"`
	Instagram  string `json:"instagram" form:"instagram"`
	YouTube    string `json:"youtube" form:"youtube"`
	TikTok     string `json:"tiktok" form:"tiktok"`
}

// EmptyRideDraft is the baseline the ride form starts from and resets to.
func EmptyRideDraft() RideDraft {
	return RideDraft{Category: string(CategoryCar)}
}

type MeetupDraft struct {
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description"`
	Date        string `json:"date" form:"date" validate:"required"`
	Location    string `json:"location" form:"location" validate:"required"`
	Organizer   string `json:"organizer" form:"organizer"`
	MapURL      string `json:"mapUrl" form:"mapUrl"`
	Tags        string `json:"tags" form:"tags"`
}

func EmptyMeetupDraft() MeetupDraft {
	return MeetupDraft{}
}

// RideDraftFields are the form keys accepted by the ride draft, in form order.
var RideDraftFields = []string{
	"title", "owner", "tagline", "category", "image", "location",
	"engine", "drivetrain", "power", "wheels",
	"mods", "featured", "instagram", "youtube", "tiktok",
}

var MeetupDraftFields = []string{
	"title", "description", "date", "location", "organizer", "mapUrl", "tags",
}

// Set assigns one field by its form key and reports whether the key exists.
func (d *RideDraft) Set(field, value string) bool {
	switch field {
	case "title":
		d.Title = value
	case "owner":
		d.Owner = value
	case "tagline":
		d.Tagline = value
	case "category":
		d.Category = value
	case "image":
		d.Image = value
	case "location":
		d.Location = value
	case "engine":
		d.Engine = value
	case "drivetrain":
		d.Drivetrain = value
	case "power":
		d.Power = value
	case "wheels":
		d.Wheels = value
	case "mods":
		d.Mods = value
	case "featured":
		d.Featured = value
	case "instagram":
		d.Instagram = value
	case "youtube":
		d.YouTube = value
	case "tiktok":
		d.TikTok = value
	default:
		return false
	}
	return true
}

func (d *MeetupDraft) Set(field, value string) bool {
	switch field {
	case "title":
		d.Title = value
	case "description":
		d.Description = value
	case "date":
		d.Date = value
	case "location":
		d.Location = value
	case "organizer":
		d.Organizer = value
	case "mapUrl":
		d.MapURL = value
	case "tags":
		d.Tags = value
	default:
		return false
	}
	return true
}
