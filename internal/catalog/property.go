package catalog

// PropertyType is the listing category shown in search filters.
type PropertyType string

const (
	TypeHouse     PropertyType = "house"
	TypeApartment PropertyType = "apartment"
	TypeCondo     PropertyType = "condo"
	TypeTownhouse PropertyType = "townhouse"
	TypeLand      PropertyType = "land"
)

// ValidType reports whether t is one of the known listing categories.
func ValidType(t PropertyType) bool {
	switch t {
	case TypeHouse, TypeApartment, TypeCondo, TypeTownhouse, TypeLand:
		return true
	}
	return false
}

// Facing is a compass direction the main entrance faces.
type Facing string

const (
	FacingNorth     Facing = "north"
	FacingSouth     Facing = "south"
	FacingEast      Facing = "east"
	FacingWest      Facing = "west"
	FacingNortheast Facing = "northeast"
	FacingNorthwest Facing = "northwest"
	FacingSoutheast Facing = "southeast"
	FacingSouthwest Facing = "southwest"
)

type Location struct {
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	ZipCode string  `json:"zipCode"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Amenities are named boolean flags; pointer fields are optional in the
// payload and rendered only when present.
type Amenities struct {
	Parking     bool  `json:"parking"`
	Water       bool  `json:"water"`
	Electricity bool  `json:"electricity"`
	Internet    bool  `json:"internet"`
	Garden      bool  `json:"garden"`
	Security    bool  `json:"security"`
	Pool        *bool `json:"pool,omitempty"`
	Gym         *bool `json:"gym,omitempty"`
	Balcony     *bool `json:"balcony,omitempty"`
}

type Media struct {
	Images      []string `json:"images"`
	Video       string   `json:"video,omitempty"`
	VirtualTour string   `json:"virtualTour,omitempty"`
}

// Analytics counters. Popularity is bounded [0,100].
type Analytics struct {
	Views      int `json:"views"`
	Saves      int `json:"saves"`
	Popularity int `json:"popularity"`
}

// Agent rating is bounded [0,5].
type Agent struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Phone  string  `json:"phone"`
	Avatar string  `json:"avatar"`
	Email  string  `json:"email"`
}

type PricePoint struct {
	Date  string `json:"date"`
	Price int    `json:"price"`
}

// Property is a single listing record. Records are immutable within a
// session except for the analytics counters, which only the store mutates.
type Property struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Price        int          `json:"price"`
	Location     Location     `json:"location"`
	Area         int          `json:"area"`
	Type         PropertyType `json:"type"`
	Bedrooms     int          `json:"bedrooms"`
	Bathrooms    int          `json:"bathrooms"`
	Floors       int          `json:"floors"`
	BuiltYear    int          `json:"builtYear"`
	Facing       Facing       `json:"facing"`
	RoadAccess   string       `json:"roadAccess,omitempty"`
	Amenities    Amenities    `json:"amenities"`
	Media        Media        `json:"media"`
	Analytics    Analytics    `json:"analytics"`
	Verified     bool         `json:"verified"`
	Agent        Agent        `json:"agent"`
	Description  string       `json:"description"`
	PriceHistory []PricePoint `json:"priceHistory,omitempty"`
}

func boolPtr(b bool) *bool { return &b }
