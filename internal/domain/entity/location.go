package entity

// City is a gazetteer entry used for birth place lookup and autocomplete.
type City struct {
	Name      string  `json:"name"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"` // IANA timezone name, e.g. Asia/Kolkata.
}

// DisplayName renders the city for autocomplete lists.
func (c City) DisplayName() string {
	if c.State != "" {
		return c.Name + ", " + c.State + ", " + c.Country
	}

	return c.Name + ", " + c.Country
}
