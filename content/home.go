package content

// ---- Home page records ----

// Feature is a card in the features grid.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// TrustItem is a card in the privacy commitment section.
type TrustItem struct {
	Icon        string
	Title       string
	Description string
}

type Screenshot struct {
	Src string
	Alt string
}

type Hero struct {
	Badge       string
	Headline    string
	Highlight   string
	Description string
	CTALabel    string
	MoreLabel   string
	Mockup      string
}

type SectionCopy struct {
	Badge    string
	Title    string
	Subtitle string
}

// About holds the about section copy. Paragraphs are split into runs so
// emphasised phrases can be rendered without raw HTML.
type About struct {
	Title      string
	Subtitle   string
	Paragraphs [][]Run
}

// Run is a piece of text, optionally emphasised.
type Run struct {
	Text     string
	Strong   bool
	Accented bool
}

var HeroCopy = Hero{
	Badge:       "Sosial Media Indonesia",
	Headline:    "Ekspresikan Dirimu,",
	Highlight:   "Terhubung Tanpa Batas",
	Description: "Platform sosial media Indonesia yang mengutamakan kreativitas dan privasi. Temukan komunitasmu sekarang.",
	CTALabel:    "Download Gratis di Google Play",
	MoreLabel:   "Pelajari Lebih Lanjut",
	Mockup:      "/assets/img/splash-screen.png",
}

var FeaturesCopy = SectionCopy{
	Title:    "Fitur Unggulan",
	Subtitle: "Nikmati berbagai fitur canggih yang dirancang untuk memaksimalkan pengalaman sosial media Anda.",
}

var Features = []Feature{
	{
		Icon:        "camera",
		Title:       "Kualitas HD",
		Description: "Upload dan bagikan foto serta video dengan kualitas terbaik tanpa kompresi berlebih.",
	},
	{
		Icon:        "share-2",
		Title:       "Berbagi Instan",
		Description: "Bagikan momen berharga ke berbagai platform lain hanya dengan satu sentuhan.",
	},
	{
		Icon:        "shield",
		Title:       "Privasi Terjamin",
		Description: "Data Anda aman bersama kami. Kontrol penuh atas siapa yang bisa melihat konten Anda.",
	},
	{
		Icon:        "globe",
		Title:       "Komunitas Global",
		Description: "Temukan teman baru dari seluruh dunia dan pelajari budaya baru.",
	},
	{
		Icon:        "zap",
		Title:       "Ringan & Cepat",
		Description: "Aplikasi dioptimalkan untuk berjalan lancar di berbagai perangkat Android.",
	},
	{
		Icon:        "heart",
		Title:       "Bebas Iklan Mengganggu",
		Description: "Nikmati pengalaman scrolling yang nyaman tanpa gangguan iklan yang berlebihan.",
	},
}

var ScreenshotsCopy = SectionCopy{
	Title:    "Tampilan Aplikasi",
	Subtitle: "Antarmuka modern dan intuitif",
}

var Screenshots = []Screenshot{
	{Src: "/assets/img/lvo_app_hero_mockup_1770376128637.png", Alt: "Screenshot 1"},
	{Src: "/assets/img/lvo_app_hero_mockup_1770376175875.png", Alt: "Screenshot 2"},
	{Src: "/assets/img/lvo_app_hero_mockup_1770376128637.png", Alt: "Screenshot 3"},
	{Src: "/assets/img/lvo_app_hero_mockup_1770376175875.png", Alt: "Screenshot 4"},
}

var TrustCopy = SectionCopy{
	Badge:    "Keamanan & Privasi",
	Title:    "Komitmen Kami pada Privasi Anda",
	Subtitle: "LVO App dibangun dengan fondasi keamanan yang kuat untuk memastikan pengalaman bersosial media yang aman dan nyaman.",
}

var TrustItems = []TrustItem{
	{
		Icon:        "shield-check",
		Title:       "Data Terenkripsi",
		Description: "Keamanan Anda prioritas kami. Seluruh transmisi data dilindungi dengan enkripsi standar industri.",
	},
	{
		Icon:        "user-check",
		Title:       "Kendali Penuh",
		Description: "Anda memegang kendali atas siapa yang dapat melihat profil dan konten yang Anda bagikan.",
	},
	{
		Icon:        "lock",
		Title:       "Kebijakan Privasi Transparan",
		Description: "Kami tidak menjual data pribadi Anda. Informasi hanya digunakan untuk meningkatkan pengalaman pengguna.",
	},
}

var AboutCopy = About{
	Title:    "Tentang LVO App",
	Subtitle: "Karya Anak Bangsa untuk Dunia",
	Paragraphs: [][]Run{
		{
			{Text: "LVO App hadir sebagai jawaban atas kebutuhan platform sosial media yang tidak hanya sekadar tempat berbagi, tetapi juga "},
			{Text: "ruang aman untuk berekspresi", Strong: true, Accented: true},
			{Text: ". Dikembangkan oleh "},
			{Text: "LVO Dev", Strong: true},
			{Text: ", kami berkomitmen menghadirkan pengalaman pengguna yang mulus, ringan, dan tetap kaya fitur."},
		},
		{
			{Text: "Visi kami adalah menghubungkan masyarakat Indonesia dan dunia dalam satu ekosistem digital yang positif, mendukung kreativitas, dan "},
			{Text: "menjunjung tinggi privasi pengguna", Strong: true, Accented: true},
			{Text: "."},
		},
	},
}
