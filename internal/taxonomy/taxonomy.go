package taxonomy

// MoodProfile maps a mood to the TMDB parameters that express it.
type MoodProfile struct {
	Genres          []int
	Keywords        []int
	SortBy          string
	VoteAverageGte  float64
	VoteCountGte    int
	RuntimeGte      int
	RuntimeLte      int
	VibeDescription string
}

// WatchContextProfile maps a viewing companion to content constraints.
type WatchContextProfile struct {
	Genres               []int
	CertificationCountry string
	Certification        string
	VoteAverageGte       float64
	VoteCountGte         int
	RuntimeGte           int
	RuntimeLte           int
	SortBy               string
	Description          string
}

// CuratedPath is a predefined discovery experience fed through the same
// query-building path as a regular mood search.
type CuratedPath struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Mood         string   `json:"mood"`
	Genres       []int    `json:"genres"`
	Decades      []string `json:"decades,omitempty"`
	WatchingWith string   `json:"watching_with"`
	Keywords     []int    `json:"keywords,omitempty"`
}

// Genre is a TMDB genre id/name pair.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Catalog holds all static lookup tables. Built once at startup and
// passed by reference; never mutated afterwards.
type Catalog struct {
	Moods         map[string]MoodProfile
	WatchContexts map[string]WatchContextProfile
	GenreKeywords map[int][]int
	Genres        []Genre
	Decades       []string
	CuratedPaths  []CuratedPath
}

// Mood returns the profile for a mood id, reporting whether it exists.
func (c *Catalog) Mood(id string) (MoodProfile, bool) {
	p, ok := c.Moods[id]
	return p, ok
}

// WatchContext returns the profile for a viewing-context id.
func (c *Catalog) WatchContext(id string) (WatchContextProfile, bool) {
	p, ok := c.WatchContexts[id]
	return p, ok
}

// Path returns the curated path with the given id, if any.
func (c *Catalog) Path(id string) (CuratedPath, bool) {
	for _, p := range c.CuratedPaths {
		if p.ID == id {
			return p, true
		}
	}
	return CuratedPath{}, false
}

// NewCatalog builds the static taxonomy. Keyword ids are TMDB keyword ids
// chosen to sharpen genre relevance.
func NewCatalog() *Catalog {
	return &Catalog{
		Moods: map[string]MoodProfile{
			"wistful": {
				Genres:          []int{18, 10749}, // Drama, Romance
				Keywords:        []int{10056, 171819, 5799, 6054, 9715},
				SortBy:          "vote_average.desc",
				VoteAverageGte:  6.5,
				VoteCountGte:    100,
				VibeDescription: "Films that evoke gentle nostalgia and contemplation",
			},
			"chaotic": {
				Genres:          []int{28, 53, 27}, // Action, Thriller, Horror
				Keywords:        []int{925, 9882, 3654, 9673, 4565},
				SortBy:          "popularity.desc",
				VoteCountGte:    200,
				VibeDescription: "High-energy films with unpredictable twists and turns",
			},
			"heartbroken": {
				Genres:          []int{18, 10749}, // Drama, Romance
				Keywords:        []int{9712, 10683, 1416, 10714, 6910},
				SortBy:          "vote_average.desc",
				VoteAverageGte:  7.0,
				VoteCountGte:    100,
				VibeDescription: "Emotional stories about love, loss, and healing",
			},
			"hopeful": {
				Genres:          []int{18, 35, 10751}, // Drama, Comedy, Family
				Keywords:        []int{9715, 4565, 15060, 155675, 14944},
				SortBy:          "vote_average.desc",
				VoteAverageGte:  6.8,
				VoteCountGte:    150,
				VibeDescription: "Inspiring stories that leave you feeling optimistic",
			},
			"nostalgic": {
				Genres:          []int{16, 10751, 12}, // Animation, Family, Adventure
				Keywords:        []int{171819, 261346, 818, 9715, 10683},
				SortBy:          "vote_average.desc",
				VoteAverageGte:  6.5,
				VoteCountGte:    200,
				VibeDescription: "Films that transport you back to cherished times",
			},
			"chill": {
				Genres:          []int{35, 10751, 16}, // Comedy, Family, Animation
				Keywords:        []int{9882, 261346, 9748, 10683, 155675},
				SortBy:          "vote_average.desc",
				VoteCountGte:    100,
				RuntimeLte:      120,
				VibeDescription: "Easy-watching films that don't demand too much emotional energy",
			},
			"romantic": {
				Genres:          []int{10749, 35}, // Romance, Comedy
				Keywords:        []int{9715, 9799, 155675, 9673, 2010},
				SortBy:          "vote_average.desc",
				VoteAverageGte:  6.5,
				VoteCountGte:    150,
				VibeDescription: "Love stories that make your heart flutter",
			},
			"adventurous": {
				Genres:          []int{12, 28, 14}, // Adventure, Action, Fantasy
				Keywords:        []int{9663, 10683, 15060, 9748, 9725},
				SortBy:          "popularity.desc",
				VoteCountGte:    200,
				VibeDescription: "Thrilling journeys and quests to faraway places",
			},
			"inspired": {
				Genres:          []int{18, 36, 99}, // Drama, History, Documentary
				Keywords:        []int{15060, 9715, 10683, 9664, 818},
				SortBy:          "vote_average.desc",
				VoteAverageGte:  7.2,
				VoteCountGte:    80,
				VibeDescription: "True stories of achievement and perseverance",
			},
			"reflective": {
				Genres:          []int{18, 9648, 878}, // Drama, Mystery, Science Fiction
				Keywords:        []int{10683, 9673, 818, 4565, 6054},
				SortBy:          "vote_average.desc",
				VoteAverageGte:  7.0,
				VoteCountGte:    100,
				VibeDescription: "Thought-provoking films that stay with you long after watching",
			},
		},
		WatchContexts: map[string]WatchContextProfile{
			"date": {
				Genres:         []int{10749, 35}, // Romance, Comedy
				VoteAverageGte: 6.8,
				RuntimeGte:     90,
				RuntimeLte:     130,
				Description:    "Perfect for a special movie night together",
			},
			"family": {
				Genres:               []int{10751, 16, 12, 35}, // Family, Animation, Adventure, Comedy
				CertificationCountry: "US",
				Certification:        "G|PG",
				RuntimeLte:           140,
				Description:          "Family-friendly entertainment everyone can enjoy",
			},
			"friends": {
				Genres:       []int{35, 28, 12, 27}, // Comedy, Action, Adventure, Horror
				SortBy:       "popularity.desc",
				RuntimeLte:   150,
				VoteCountGte: 200,
				Description:  "Fun films that are great to watch in a group",
			},
			"solo": {
				// Solo watching can include lesser-known, more challenging films.
				VoteCountGte: 50,
				Description:  "Perfect for your personal movie time",
			},
		},
		GenreKeywords: map[int][]int{
			10749: {9799, 2010, 818, 9673, 10635},   // Romance
			35:    {4565, 9748, 186383, 10937},      // Comedy
			28:    {9725, 9663, 15060, 9748},        // Action
			12:    {9663, 10683, 15060, 9748, 9725}, // Adventure
			16:    {9882, 10559, 9985, 177887},      // Animation
			80:    {10602, 9702, 10463, 167147},     // Crime
			99:    {818, 9672, 15060, 10683},        // Documentary
			18:    {9712, 10683, 1416, 6910},        // Drama
			10751: {9882, 10559, 9985, 177887},      // Family
			14:    {4344, 779, 12554, 209714},       // Fantasy
			36:    {818, 9672, 15060, 10683},        // History
			27:    {6125, 9951, 163037, 10714},      // Horror
			10402: {1701, 155205, 2626, 34056},      // Music
			9648:  {11003, 9742, 244838, 170064},    // Mystery
			878:   {11014, 9882, 9951, 10235},       // Science Fiction
			53:    {6125, 9951, 163037, 10944},      // Thriller
			10752: {233566, 9783, 233544, 10455},    // War
			37:    {223872, 258206, 156830, 14198},  // Western
		},
		Genres: []Genre{
			{28, "Action"}, {12, "Adventure"}, {16, "Animation"}, {35, "Comedy"},
			{80, "Crime"}, {99, "Documentary"}, {18, "Drama"}, {10751, "Family"},
			{14, "Fantasy"}, {36, "History"}, {27, "Horror"}, {10402, "Music"},
			{9648, "Mystery"}, {10749, "Romance"}, {878, "Science Fiction"},
			{10770, "TV Movie"}, {53, "Thriller"}, {10752, "War"}, {37, "Western"},
		},
		Decades: []string{
			"1930s", "1940s", "1950s", "1960s", "1970s",
			"1980s", "1990s", "2000s", "2010s", "2020s",
		},
		CuratedPaths: []CuratedPath{
			{
				ID:           "crush-texted",
				Title:        "For When Your Crush Texts Back",
				Description:  "Giddy, hopeful films that capture that flutter in your chest",
				Mood:         "romantic",
				Genres:       []int{10749, 35},
				Decades:      []string{"2000s", "2010s"},
				WatchingWith: "solo",
				Keywords:     []int{9799, 2010, 818, 9673, 10635},
			},
			{
				ID:           "black-white-catharsis",
				Title:        "Catharsis via 1950s Black & White",
				Description:  "Classic cinema from the Golden Age to process life's complexities",
				Mood:         "reflective",
				Genres:       []int{18},
				Decades:      []string{"1950s"},
				WatchingWith: "solo",
				Keywords:     []int{171819, 10683, 818},
			},
			{
				ID:           "rainy-afternoon",
				Title:        "Rainy Afternoon Comfort",
				Description:  "Cozy, gentle stories for when the sky is gray and time feels slow",
				Mood:         "chill",
				Genres:       []int{18, 10751},
				Decades:      []string{"1990s", "2000s"},
				WatchingWith: "solo",
				Keywords:     []int{9882, 10683, 9748},
			},
			{
				ID:           "existential-crisis",
				Title:        "When You're Having an Existential Crisis",
				Description:  "Philosophical films that ask the big questions so you don't have to",
				Mood:         "reflective",
				Genres:       []int{18, 878},
				WatchingWith: "solo",
				Keywords:     []int{10683, 4565, 6054},
			},
		},
	}
}
