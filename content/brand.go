package content

// Brand holds the identity and contact details shown across the site.
type Brand struct {
	Name         string
	Developer    string
	Tagline      string
	Blurb        string
	Logo         string
	PlayStoreURL string
	PlayBadgeURL string
	ContactEmail string
	Location     string
	Socials      []Social
}

type Social struct {
	Icon  string
	Label string
	URL   string
}

var Site = Brand{
	Name:         "LVO App",
	Developer:    "LVO Dev",
	Tagline:      "Sosial Media Indonesia",
	Blurb:        "Platform sosial media karya anak bangsa. Berbagi momen, temukan inspirasi, dan terhubung dengan dunia dalam satu aplikasi.",
	Logo:         "/assets/img/lvo_logo_square.png",
	PlayStoreURL: "https://play.google.com/store/apps/details?id=com.lvo.app",
	PlayBadgeURL: "https://upload.wikimedia.org/wikipedia/commons/7/78/Google_Play_Store_badge_EN.svg",
	ContactEmail: "support@lvoapp.com",
	Location:     "Lampung, Indonesia",
	Socials: []Social{
		{Icon: "twitter", Label: "Twitter", URL: "#"},
		{Icon: "instagram", Label: "Instagram", URL: "#"},
		{Icon: "github", Label: "GitHub", URL: "#"},
	},
}

// Mailto returns the mailto: link for the contact address.
func (b Brand) Mailto() string {
	return "mailto:" + b.ContactEmail
}
