package receipt

import (
	"fmt"

	"github.com/spf13/viper"
)

// AppRange is one synthetic roster entry: a named app with the minute
// range its daily usage is drawn from.
type AppRange struct {
	Name     string `mapstructure:"name"`
	Category string `mapstructure:"category"`
	Icon     string `mapstructure:"icon"`
	Min      int    `mapstructure:"min"`
	Max      int    `mapstructure:"max"`
}

type RosterCategory struct {
	Name string     `mapstructure:"name"`
	Apps []AppRange `mapstructure:"apps"`
}

type Roster struct {
	Categories []RosterCategory `mapstructure:"categories"`
}

// DefaultRoster is the fixed three-category roster used when no parsed
// data and no roster file are supplied.
func DefaultRoster() Roster {
	return Roster{
		Categories: []RosterCategory{
			{
				Name: "SOCIAL & COMMUNICATION",
				Apps: []AppRange{
					{Name: "INSTAGRAM", Category: "SOCIAL MEDIA", Icon: "/assets/receipt/icons/instagram.png", Min: 30, Max: 180},
					{Name: "TWITTER/X", Category: "SOCIAL MEDIA", Icon: "/assets/receipt/icons/twitter.png", Min: 20, Max: 120},
					{Name: "LINKEDIN", Category: "SOCIAL MEDIA", Icon: "/assets/receipt/icons/linkedin.png", Min: 40, Max: 200},
					{Name: "MESSAGES", Category: "COMMUNICATION", Icon: "/assets/receipt/icons/messages.png", Min: 10, Max: 60},
				},
			},
			{
				Name: "WORK & PRODUCTIVITY",
				Apps: []AppRange{
					{Name: "CALENDAR", Category: "PRODUCTIVITY", Icon: "/assets/receipt/icons/calendar.png", Min: 10, Max: 40},
					{Name: "SLACK", Category: "WORK", Icon: "/assets/receipt/icons/slack.png", Min: 60, Max: 180},
					{Name: "NOTES", Category: "PRODUCTIVITY", Icon: "/assets/receipt/icons/notes.png", Min: 5, Max: 30},
					{Name: "MAIL", Category: "WORK", Icon: "/assets/receipt/icons/mail.png", Min: 30, Max: 90},
					{Name: "NOTION", Category: "PRODUCTIVITY", Icon: "/assets/receipt/icons/notion.png", Min: 20, Max: 80},
				},
			},
			{
				Name: "ENTERTAINMENT",
				Apps: []AppRange{
					{Name: "YOUTUBE", Category: "ENTERTAINMENT", Icon: "/assets/receipt/icons/youtube.png", Min: 60, Max: 240},
					{Name: "NETFLIX", Category: "STREAMING", Icon: "/assets/receipt/icons/netflix.png", Min: 30, Max: 150},
					{Name: "SPOTIFY", Category: "MUSIC", Icon: "/assets/receipt/icons/spotify.png", Min: 60, Max: 300},
				},
			},
		},
	}
}

// LoadRoster reads a roster definition from a YAML file. The file fully
// replaces the default roster, it is not merged with it.
func LoadRoster(path string) (Roster, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Roster{}, fmt.Errorf("failed to read roster file: %w", err)
	}

	var roster Roster
	if err := v.Unmarshal(&roster); err != nil {
		return Roster{}, fmt.Errorf("failed to parse roster file: %w", err)
	}
	if len(roster.Categories) == 0 {
		return Roster{}, fmt.Errorf("roster file %s defines no categories", path)
	}
	return roster, nil
}
