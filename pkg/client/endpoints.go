package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Register creates a new account. It does not sign the user in.
func (c *Client) Register(ctx context.Context, email, password, name string) (*User, error) {
	body := map[string]string{"email": email, "password": password, "name": name}

	var user User
	if err := c.post(ctx, "/auth/register", body, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login exchanges credentials for a session and stores the access token on
// the client.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var session Session
	if err := c.post(ctx, "/auth/login", body, &session); err != nil {
		return nil, err
	}
	c.SetToken(session.AccessToken)

	return &session, nil
}

// AppleSignIn exchanges an Apple identity token for a session. fullName is
// only used on first sign-in, when Apple discloses it.
func (c *Client) AppleSignIn(ctx context.Context, identityToken, fullName string) (*Session, error) {
	body := map[string]string{"identity_token": identityToken, "full_name": fullName}

	var session Session
	if err := c.post(ctx, "/auth/apple", body, &session); err != nil {
		return nil, err
	}
	c.SetToken(session.AccessToken)

	return &session, nil
}

// Refresh rotates the token pair and stores the new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	body := map[string]string{"refresh_token": refreshToken}

	var session Session
	if err := c.post(ctx, "/auth/refresh", body, &session); err != nil {
		return nil, err
	}
	c.SetToken(session.AccessToken)

	return &session, nil
}

// Logout revokes the current refresh token and clears the stored access
// token.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refresh_token": refreshToken}
	if err := c.post(ctx, "/auth/logout", body, nil); err != nil {
		return err
	}
	c.SetToken("")

	return nil
}

// Profile fetches the signed-in user's astrological profile.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.get(ctx, "/profile", nil, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpdateProfile replaces the profile's birth data.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Profile, error) {
	var profile Profile
	if err := c.put(ctx, "/profile", update, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// EphemerisCurrent returns tropical planetary positions for right now.
func (c *Client) EphemerisCurrent(ctx context.Context) ([]PlanetPosition, error) {
	var data struct {
		Planets []PlanetPosition `json:"planets"`
	}
	if err := c.get(ctx, "/ephemeris/current", nil, &data); err != nil {
		return nil, err
	}

	return data.Planets, nil
}

// EphemerisAt returns positions for a given date. system is "vedic" for
// sidereal longitudes, anything else for tropical.
func (c *Client) EphemerisAt(ctx context.Context, date time.Time, system string) ([]PlanetPosition, error) {
	query := url.Values{}
	query.Set("date", date.Format("2006-01-02"))
	if system != "" {
		query.Set("system", system)
	}

	var data struct {
		Planets []PlanetPosition `json:"planets"`
	}
	if err := c.get(ctx, "/ephemeris/at", query, &data); err != nil {
		return nil, err
	}

	return data.Planets, nil
}

// Positions returns current sidereal positions keyed by planet. When the
// endpoint is unavailable it falls back to mapping /ephemeris/current.
func (c *Client) Positions(ctx context.Context) (map[string]PositionSummary, error) {
	var byPlanet map[string]PositionSummary
	err := c.get(ctx, "/astrology/positions", nil, &byPlanet)
	if err == nil {
		return byPlanet, nil
	}

	if errors.Is(err, ErrTokenExpired) || errors.Is(err, ErrTimeout) || errors.Is(err, ErrOffline) {
		return nil, err
	}

	planets, err := c.EphemerisCurrent(ctx)
	if err != nil {
		return nil, err
	}

	byPlanet = make(map[string]PositionSummary, len(planets))
	for _, p := range planets {
		byPlanet[p.Planet] = PositionSummary{Degree: p.Degree, Sign: p.Sign}
	}

	return byPlanet, nil
}

// Aspects returns current planetary aspects.
func (c *Client) Aspects(ctx context.Context) ([]Aspect, error) {
	var data struct {
		Aspects []Aspect `json:"aspects"`
	}
	if err := c.get(ctx, "/chart/aspects", nil, &data); err != nil {
		return nil, err
	}

	return data.Aspects, nil
}

// BirthChart casts the signed-in user's Vedic birth chart.
func (c *Client) BirthChart(ctx context.Context) (*Chart, error) {
	var chart Chart
	if err := c.get(ctx, "/astrology/chart", nil, &chart); err != nil {
		return nil, err
	}

	return &chart, nil
}

// Dashas returns the signed-in user's Vimshottari timeline.
func (c *Client) Dashas(ctx context.Context) (*Dashas, error) {
	var dashas Dashas
	if err := c.get(ctx, "/astrology/dashas", nil, &dashas); err != nil {
		return nil, err
	}

	return &dashas, nil
}

// Horoscope returns the reading for a sign. horoscopeType is daily, weekly
// or monthly. A zero date means today.
func (c *Client) Horoscope(ctx context.Context, sign, horoscopeType string, date time.Time) (*Horoscope, error) {
	query := url.Values{}
	query.Set("sign", sign)
	query.Set("type", horoscopeType)
	if !date.IsZero() {
		query.Set("date", date.Format("2006-01-02"))
	}

	var reading Horoscope
	if err := c.get(ctx, "/horoscope", query, &reading); err != nil {
		return nil, err
	}

	return &reading, nil
}

// CreateBookmark saves a horoscope for later.
func (c *Client) CreateBookmark(ctx context.Context, input BookmarkInput) (*Bookmark, error) {
	var bookmark Bookmark
	if err := c.post(ctx, "/bookmarks", input, &bookmark); err != nil {
		return nil, err
	}

	return &bookmark, nil
}

// Bookmarks lists the user's saved horoscopes, newest first.
func (c *Client) Bookmarks(ctx context.Context) ([]Bookmark, error) {
	var bookmarks []Bookmark
	if err := c.get(ctx, "/bookmarks", nil, &bookmarks); err != nil {
		return nil, err
	}

	return bookmarks, nil
}

// DeleteBookmark removes a saved horoscope.
func (c *Client) DeleteBookmark(ctx context.Context, id string) error {
	return c.delete(ctx, "/bookmarks/"+url.PathEscape(id), nil)
}

// ComputeMatch runs an Ashtakoota compatibility check against a partner.
func (c *Client) ComputeMatch(ctx context.Context, input MatchInput) (*Match, error) {
	var match Match
	if err := c.post(ctx, "/match", input, &match); err != nil {
		return nil, err
	}

	return &match, nil
}

// Matches lists stored compatibility checks, newest first.
func (c *Client) Matches(ctx context.Context) ([]Match, error) {
	var matches []Match
	if err := c.get(ctx, "/match", nil, &matches); err != nil {
		return nil, err
	}

	return matches, nil
}

// Match fetches one stored compatibility check.
func (c *Client) Match(ctx context.Context, id string) (*Match, error) {
	var match Match
	if err := c.get(ctx, "/match/"+url.PathEscape(id), nil, &match); err != nil {
		return nil, err
	}

	return &match, nil
}

// DeleteMatch removes a stored compatibility check.
func (c *Client) DeleteMatch(ctx context.Context, id string) error {
	return c.delete(ctx, "/match/"+url.PathEscape(id), nil)
}

// SendMessage sends a chat message to the astrologer. A nil conversationID
// starts a new conversation.
func (c *Client) SendMessage(ctx context.Context, conversationID *string, message string) (*ChatReply, error) {
	body := map[string]any{"message": message}
	if conversationID != nil {
		body["conversation_id"] = *conversationID
	}

	var reply ChatReply
	if err := c.post(ctx, "/chat", body, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// Conversations lists chat conversations, most recently active first.
func (c *Client) Conversations(ctx context.Context) ([]Conversation, error) {
	var conversations []Conversation
	if err := c.get(ctx, "/chat", nil, &conversations); err != nil {
		return nil, err
	}

	return conversations, nil
}

// Messages lists a conversation's messages in chronological order.
func (c *Client) Messages(ctx context.Context, conversationID string) ([]ChatMessage, error) {
	var messages []ChatMessage
	if err := c.get(ctx, "/chat/"+url.PathEscape(conversationID), nil, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

// RequestReport queues a long-form report for generation. The returned
// report starts in the pending state; poll Report until it is ready.
func (c *Client) RequestReport(ctx context.Context, reportType string) (*Report, error) {
	body := map[string]string{"type": reportType}

	var report Report
	if err := c.post(ctx, "/reports", body, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

// Reports lists the user's reports, newest first.
func (c *Client) Reports(ctx context.Context) ([]Report, error) {
	var reports []Report
	if err := c.get(ctx, "/reports", nil, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

// Report fetches one report, including its content once generated.
func (c *Client) Report(ctx context.Context, id string) (*Report, error) {
	var report Report
	if err := c.get(ctx, "/reports/"+url.PathEscape(id), nil, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

// SearchLocations searches the gazetteer by city name prefix. limit is
// clamped server-side to 10.
func (c *Client) SearchLocations(ctx context.Context, q string, limit int) ([]City, error) {
	query := url.Values{}
	query.Set("q", q)
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var cities []City
	if err := c.get(ctx, "/location/search", query, &cities); err != nil {
		return nil, err
	}

	return cities, nil
}

// ReverseLocation finds the nearest known city to a coordinate.
func (c *Client) ReverseLocation(ctx context.Context, lat, lon float64) (*City, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var city City
	if err := c.get(ctx, "/location/reverse", query, &city); err != nil {
		return nil, err
	}

	return &city, nil
}

// TempleServices lists the bookable service catalog.
func (c *Client) TempleServices(ctx context.Context) ([]TempleService, error) {
	var services []TempleService
	if err := c.get(ctx, "/temple/services", nil, &services); err != nil {
		return nil, err
	}

	return services, nil
}

// CreateBooking reserves a temple service slot.
func (c *Client) CreateBooking(ctx context.Context, input BookingInput) (*Booking, error) {
	var booking Booking
	if err := c.post(ctx, "/temple/bookings", input, &booking); err != nil {
		return nil, err
	}

	return &booking, nil
}

// Bookings lists the user's bookings, newest first.
func (c *Client) Bookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := c.get(ctx, "/temple/bookings", nil, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// CancelBooking cancels a confirmed booking.
func (c *Client) CancelBooking(ctx context.Context, id string) (*Booking, error) {
	var booking Booking
	if err := c.delete(ctx, "/temple/bookings/"+url.PathEscape(id), &booking); err != nil {
		return nil, err
	}

	return &booking, nil
}

// BookingPass downloads the QR entry pass for a booking as PNG bytes.
func (c *Client) BookingPass(ctx context.Context, id string) ([]byte, error) {
	endpoint := c.baseURL + "/temple/bookings/" + url.PathEscape(id) + "/pass"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, mapTransportError(err)
	}
	defer resp.Body.Close()

	if err := mapStatusError(resp.StatusCode); err != nil {
		return nil, err
	}

	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrDecoding
	}
	if len(png) == 0 {
		return nil, ErrNoData
	}

	return png, nil
}

// Discover returns the shared home screen snapshot.
func (c *Client) Discover(ctx context.Context) (*Discover, error) {
	var snapshot Discover
	if err := c.get(ctx, "/discover", nil, &snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}
