package client

import "time"

// User is an account as returned by auth endpoints.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is a token pair issued at login, sign-in or refresh.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// Profile is the user's astrological profile.
type Profile struct {
	FullName           string     `json:"full_name"`
	BirthDate          string     `json:"birth_date"` // YYYY-MM-DD
	BirthTime          *string    `json:"birth_time,omitempty"`
	BirthPlace         string     `json:"birth_place"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	Timezone           string     `json:"timezone"`
	SunSign            string     `json:"sun_sign"`
	MoonSign           string     `json:"moon_sign"`
	RisingSign         string     `json:"rising_sign,omitempty"`
	SubscriptionExpiry *time.Time `json:"subscription_expiry,omitempty"`
}

// ProfileUpdate is the payload for PUT /profile.
type ProfileUpdate struct {
	FullName   string  `json:"full_name"`
	BirthDate  string  `json:"birth_date"` // YYYY-MM-DD
	BirthTime  *string `json:"birth_time,omitempty"`
	BirthPlace string  `json:"birth_place"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Timezone   string  `json:"timezone"`
}

// PlanetPosition is one ephemeris sample.
type PlanetPosition struct {
	Planet     string  `json:"planet"`
	Longitude  float64 `json:"longitude"`
	Sign       string  `json:"sign"`
	Degree     float64 `json:"degree"`
	Nakshatra  string  `json:"nakshatra,omitempty"`
	Pada       int     `json:"pada,omitempty"`
	Retrograde bool    `json:"retrograde"`
}

// PositionSummary is the compact per-planet form served by
// /astrology/positions.
type PositionSummary struct {
	Degree float64 `json:"degree"`
	Sign   string  `json:"sign"`
}

// Aspect is an angular relationship between two planets.
type Aspect struct {
	First  string  `json:"first"`
	Second string  `json:"second"`
	Kind   string  `json:"kind"`
	Angle  float64 `json:"angle"`
	Orb    float64 `json:"orb"`
}

// Chart is a cast birth chart.
type Chart struct {
	Positions     []PlanetPosition `json:"positions"`
	Ascendant     string           `json:"ascendant,omitempty"`
	MoonNakshatra string           `json:"moon_nakshatra"`
	CastAt        time.Time        `json:"cast_at"`
}

// DashaPeriod is one span of the Vimshottari timeline.
type DashaPeriod struct {
	Lord        string        `json:"lord"`
	Start       time.Time     `json:"start"`
	End         time.Time     `json:"end"`
	Antardashas []DashaPeriod `json:"antardashas,omitempty"`
}

// Dashas is the full timeline with the currently running periods.
type Dashas struct {
	Timeline     []DashaPeriod `json:"timeline"`
	CurrentMaha  *DashaPeriod  `json:"current_maha,omitempty"`
	CurrentAntar *DashaPeriod  `json:"current_antar,omitempty"`
}

// Horoscope is one generated reading.
type Horoscope struct {
	Sign        string    `json:"sign"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	LuckyColor  string    `json:"lucky_color,omitempty"`
	LuckyNumber int       `json:"lucky_number,omitempty"`
}

// Bookmark is a saved reading.
type Bookmark struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Sign      string    `json:"sign"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// BookmarkInput is the payload for POST /bookmarks.
type BookmarkInput struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Type    string `json:"type"`
	Sign    string `json:"sign"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// MatchInput is the partner payload for POST /match.
type MatchInput struct {
	PartnerName string  `json:"partner_name"`
	BirthDate   string  `json:"birth_date"` // YYYY-MM-DD
	BirthTime   *string `json:"birth_time,omitempty"`
	BirthPlace  string  `json:"birth_place,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone,omitempty"`
}

// Match is a stored Kundali compatibility check.
type Match struct {
	ID          string `json:"id"`
	PartnerName string `json:"partner_name"`
	Total       int    `json:"total"`
	Kootas      struct {
		Varna   int `json:"varna"`
		Vashya  int `json:"vashya"`
		Tara    int `json:"tara"`
		Yoni    int `json:"yoni"`
		Maitri  int `json:"maitri"`
		Gana    int `json:"gana"`
		Bhakoot int `json:"bhakoot"`
		Nadi    int `json:"nadi"`
	} `json:"kootas"`
	Scores struct {
		Emotional int `json:"emotional"`
		Mental    int `json:"mental"`
		Physical  int `json:"physical"`
		Spiritual int `json:"spiritual"`
	} `json:"scores"`
	Verdict   string    `json:"verdict"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessage is one utterance in an astrologer conversation.
type ChatMessage struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// Conversation groups chat messages.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatReply is the response to a sent message.
type ChatReply struct {
	ConversationID string      `json:"conversation_id"`
	Reply          ChatMessage `json:"reply"`
}

// Report is a long-form generated reading, polled until ready.
type Report struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary,omitempty"`
	Content     string     `json:"content,omitempty"`
	Status      string     `json:"status"`
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// City is a gazetteer entry.
type City struct {
	Name      string  `json:"name"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// TempleService is a bookable catalog entry.
type TempleService struct {
	ID          string        `json:"id"`
	Kind        string        `json:"kind"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Duration    time.Duration `json:"duration"`
	PriceCents  int           `json:"price_cents"`
}

// BookingInput is the payload for POST /temple/bookings.
type BookingInput struct {
	ServiceID string    `json:"service_id"`
	Slot      time.Time `json:"slot"`
	Sankalp   string    `json:"sankalp"`
	Notes     string    `json:"notes,omitempty"`
}

// Booking is a reserved temple service slot.
type Booking struct {
	ID               string    `json:"id"`
	ServiceID        string    `json:"service_id"`
	Slot             time.Time `json:"slot"`
	Sankalp          string    `json:"sankalp"`
	Notes            string    `json:"notes,omitempty"`
	Status           string    `json:"status"`
	ConfirmationCode string    `json:"confirmation_code"`
	CreatedAt        time.Time `json:"created_at"`
}

// Discover is the shared home screen snapshot.
type Discover struct {
	Positions   []PlanetPosition `json:"positions"`
	Aspects     []Aspect         `json:"aspects"`
	Featured    *Horoscope       `json:"featured_horoscope"`
	Services    []TempleService  `json:"services"`
	GeneratedAt time.Time        `json:"generated_at"`
}
