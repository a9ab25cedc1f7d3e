package screentime

// appEntry resolves a matched substring to the canonical icon key and the
// display name printed on the receipt.
type appEntry struct {
	match   string // case-insensitive substring searched in the label line
	key     string // canonical icon key
	display string
}

// knownApps is scanned in order and the first match wins, so more specific
// names must come before the single-letter "x" entry can shadow them.
// Matching is plain substring containment, same as the screenshots this
// table was tuned against; "x" in particular matches any line containing
// the letter.
var knownApps = []appEntry{
	{"instagram", "instagram", "INSTAGRAM"},
	{"twitter", "twitter", "TWITTER/X"},
	{"x", "twitter", "X"},
	{"linkedin", "linkedin", "LINKEDIN"},
	{"messages", "messages", "MESSAGES"},
	{"imessage", "messages", "MESSAGES"},
	{"calendar", "calendar", "CALENDAR"},
	{"slack", "slack", "SLACK"},
	{"notes", "notes", "NOTES"},
	{"mail", "mail", "MAIL"},
	{"notion", "notion", "NOTION"},
	{"youtube", "youtube", "YOUTUBE"},
	{"netflix", "netflix", "NETFLIX"},
	{"spotify", "spotify", "SPOTIFY"},
	{"safari", "instagram", "SAFARI"},
	{"chrome", "instagram", "CHROME"},
	{"facebook", "instagram", "FACEBOOK"},
	{"messenger", "messages", "MESSENGER"},
	{"whatsapp", "messages", "WHATSAPP"},
	{"tiktok", "instagram", "TIKTOK"},
	{"reddit", "twitter", "REDDIT"},
	{"discord", "slack", "DISCORD"},
	{"gmail", "mail", "GMAIL"},
	{"outlook", "mail", "OUTLOOK"},
	{"beli", "instagram", "BELI"},
	{"retro", "instagram", "RETRO"},
	{"hinge", "instagram", "HINGE"},
	{"bumble", "instagram", "BUMBLE"},
	{"tinder", "instagram", "TINDER"},
}

// defaultIcons maps canonical keys to the bundled receipt icon assets.
var defaultIcons = map[string]string{
	"instagram": "/assets/receipt/icons/instagram.png",
	"twitter":   "/assets/receipt/icons/twitter.png",
	"linkedin":  "/assets/receipt/icons/linkedin.png",
	"messages":  "/assets/receipt/icons/messages.png",
	"calendar":  "/assets/receipt/icons/calendar.png",
	"slack":     "/assets/receipt/icons/slack.png",
	"notes":     "/assets/receipt/icons/notes.png",
	"mail":      "/assets/receipt/icons/mail.png",
	"notion":    "/assets/receipt/icons/notion.png",
	"youtube":   "/assets/receipt/icons/youtube.png",
	"netflix":   "/assets/receipt/icons/netflix.png",
	"spotify":   "/assets/receipt/icons/spotify.png",
}

const fallbackIconKey = "instagram"

// Apps whose fallback icon really is their own icon; everything else
// mapped onto the fallback key gets an external lookup.
var confidentlyLocal = map[string]bool{
	"instagram": true,
	"facebook":  true,
	"tiktok":    true,
}

// Per-app display labels, matched against canonical match keys.
var (
	socialKeys    = stringSet("instagram", "twitter", "x", "tiktok", "facebook", "reddit", "linkedin", "hinge", "bumble", "tinder", "beli")
	commKeys      = stringSet("messages", "imessage", "messenger", "whatsapp", "discord")
	workKeys      = stringSet("slack", "notion", "calendar", "mail", "gmail", "outlook", "notes")
	entertainKeys = stringSet("youtube", "netflix", "spotify")
	browserKeys   = stringSet("safari", "chrome")
)

func categoryForApp(matchKey string) string {
	switch {
	case socialKeys[matchKey]:
		return "SOCIAL MEDIA"
	case commKeys[matchKey]:
		return "COMMUNICATION"
	case workKeys[matchKey]:
		return "PRODUCTIVITY"
	case entertainKeys[matchKey]:
		return "ENTERTAINMENT"
	case browserKeys[matchKey]:
		return "WEB BROWSING"
	}
	return "APP"
}

// Display-name sets used to partition parsed apps into receipt sections.
var (
	socialNames    = stringSet("INSTAGRAM", "X", "TWITTER/X", "LINKEDIN", "FACEBOOK", "TIKTOK", "REDDIT", "HINGE", "BELI")
	commNames      = stringSet("MESSAGES", "MESSENGER", "WHATSAPP", "DISCORD")
	workNames      = stringSet("SLACK", "NOTION", "CALENDAR", "MAIL", "GMAIL", "OUTLOOK", "NOTES")
	entertainNames = stringSet("YOUTUBE", "NETFLIX", "SPOTIFY")
	browserNames   = stringSet("SAFARI", "CHROME")
)

func stringSet(values ...string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
