package catalog

// Sample listings used when no feed or database is configured. Exactly four
// of the six are verified.

var sampleAgents = []Agent{
	{
		ID:     "agent-1",
		Name:   "Sarah Mitchell",
		Rating: 4.8,
		Phone:  "+1 (555) 123-4567",
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
		Email:  "sarah@realestate.com",
	},
	{
		ID:     "agent-2",
		Name:   "James Chen",
		Rating: 4.9,
		Phone:  "+1 (555) 234-5678",
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=James",
		Email:  "james@realestate.com",
	},
	{
		ID:     "agent-3",
		Name:   "Emily Rodriguez",
		Rating: 4.7,
		Phone:  "+1 (555) 345-6789",
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Emily",
		Email:  "emily@realestate.com",
	},
	{
		ID:     "agent-4",
		Name:   "Michael Thompson",
		Rating: 4.6,
		Phone:  "+1 (555) 456-7890",
		Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Michael",
		Email:  "michael@realestate.com",
	},
}

func sampleProperties() []Property {
	return []Property{
		{
			ID:    "prop-1",
			Title: "Luxury Modern Estate with Pool",
			Price: 2500000,
			Location: Location{
				Address: "1247 Oakmont Drive",
				City:    "Los Angeles",
				State:   "CA",
				ZipCode: "90210",
				Lat:     34.0522,
				Lng:     -118.2437,
			},
			Area:       8500,
			Type:       TypeHouse,
			Bedrooms:   5,
			Bathrooms:  6,
			Floors:     2,
			BuiltYear:  2019,
			Facing:     FacingSouth,
			RoadAccess: "Private driveway with gate",
			Amenities: Amenities{
				Parking: true, Water: true, Electricity: true, Internet: true,
				Garden: true, Security: true,
				Pool: boolPtr(true), Gym: boolPtr(true), Balcony: boolPtr(true),
			},
			Media: Media{
				Images: []string{"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=1200&h=800&fit=crop"},
				Video:  "https://example.com/property-video.mp4",
			},
			Analytics:   Analytics{Views: 2847, Saves: 156, Popularity: 92},
			Verified:    true,
			Agent:       sampleAgents[0],
			Description: "Stunning modern luxury estate in prestigious Oakmont with panoramic city views. Features state-of-the-art smart home technology, resort-style pool, and private theater room.",
			PriceHistory: []PricePoint{
				{Date: "2024-01-01", Price: 2400000},
				{Date: "2024-02-01", Price: 2450000},
				{Date: "2024-03-01", Price: 2500000},
			},
		},
		{
			ID:    "prop-2",
			Title: "Contemporary Downtown Penthouse",
			Price: 1850000,
			Location: Location{
				Address: "555 Downtown Avenue",
				City:    "New York",
				State:   "NY",
				ZipCode: "10001",
				Lat:     40.7128,
				Lng:     -74.0060,
			},
			Area:       4200,
			Type:       TypeApartment,
			Bedrooms:   3,
			Bathrooms:  3,
			Floors:     1,
			BuiltYear:  2022,
			Facing:     FacingNorth,
			RoadAccess: "Direct building access",
			Amenities: Amenities{
				Parking: true, Water: true, Electricity: true, Internet: true,
				Garden: false, Security: true,
				Gym: boolPtr(true), Balcony: boolPtr(true),
			},
			Media: Media{
				Images: []string{"https://images.unsplash.com/photo-1512918728675-ed5a9ecdebfd?w=1200&h=800&fit=crop"},
			},
			Analytics:   Analytics{Views: 1923, Saves: 124, Popularity: 88},
			Verified:    true,
			Agent:       sampleAgents[1],
			Description: "Spectacular penthouse with floor-to-ceiling windows overlooking Manhattan skyline. Premium finishes, chef's kitchen, and spa-like bathrooms.",
			PriceHistory: []PricePoint{
				{Date: "2024-01-01", Price: 1750000},
				{Date: "2024-02-01", Price: 1800000},
				{Date: "2024-03-01", Price: 1850000},
			},
		},
		{
			ID:    "prop-3",
			Title: "Suburban Family Home",
			Price: 650000,
			Location: Location{
				Address: "789 Maple Street",
				City:    "Austin",
				State:   "TX",
				ZipCode: "78704",
				Lat:     30.2672,
				Lng:     -97.7431,
			},
			Area:       3200,
			Type:       TypeHouse,
			Bedrooms:   4,
			Bathrooms:  3,
			Floors:     2,
			BuiltYear:  2015,
			Facing:     FacingEast,
			RoadAccess: "Quiet residential street",
			Amenities: Amenities{
				Parking: true, Water: true, Electricity: true, Internet: true,
				Garden: true, Security: false,
				Pool: boolPtr(false), Balcony: boolPtr(true),
			},
			Media: Media{
				Images: []string{"https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=1200&h=800&fit=crop"},
			},
			Analytics:   Analytics{Views: 1456, Saves: 89, Popularity: 75},
			Verified:    false,
			Agent:       sampleAgents[2],
			Description: "Beautiful family home in established neighborhood with excellent schools. Recently updated kitchen and master suite.",
			PriceHistory: []PricePoint{
				{Date: "2024-01-01", Price: 620000},
				{Date: "2024-02-01", Price: 635000},
				{Date: "2024-03-01", Price: 650000},
			},
		},
		{
			ID:    "prop-4",
			Title: "Beachfront Luxury Condo",
			Price: 1200000,
			Location: Location{
				Address: "2100 Ocean Boulevard",
				City:    "Miami",
				State:   "FL",
				ZipCode: "33139",
				Lat:     25.7617,
				Lng:     -80.1918,
			},
			Area:       2800,
			Type:       TypeCondo,
			Bedrooms:   3,
			Bathrooms:  2,
			Floors:     1,
			BuiltYear:  2020,
			Facing:     FacingEast,
			RoadAccess: "Direct beach access",
			Amenities: Amenities{
				Parking: true, Water: true, Electricity: true, Internet: true,
				Garden: false, Security: true,
				Pool: boolPtr(true), Gym: boolPtr(true), Balcony: boolPtr(true),
			},
			Media: Media{
				Images: []string{"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=1200&h=800&fit=crop"},
			},
			Analytics:   Analytics{Views: 3124, Saves: 201, Popularity: 95},
			Verified:    true,
			Agent:       sampleAgents[3],
			Description: "Stunning beachfront property with direct ocean views, private balcony, and resort-style amenities. Perfect vacation or investment property.",
			PriceHistory: []PricePoint{
				{Date: "2024-01-01", Price: 1100000},
				{Date: "2024-02-01", Price: 1150000},
				{Date: "2024-03-01", Price: 1200000},
			},
		},
		{
			ID:    "prop-5",
			Title: "Modern Tech Hub Townhouse",
			Price: 875000,
			Location: Location{
				Address: "456 Innovation Drive",
				City:    "San Francisco",
				State:   "CA",
				ZipCode: "94105",
				Lat:     37.7749,
				Lng:     -122.4194,
			},
			Area:       2400,
			Type:       TypeTownhouse,
			Bedrooms:   3,
			Bathrooms:  2,
			Floors:     3,
			BuiltYear:  2021,
			Facing:     FacingWest,
			RoadAccess: "Close to tech corridor",
			Amenities: Amenities{
				Parking: true, Water: true, Electricity: true, Internet: true,
				Garden: true, Security: true,
				Balcony: boolPtr(true),
			},
			Media: Media{
				Images: []string{"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=1200&h=800&fit=crop"},
			},
			Analytics:   Analytics{Views: 1678, Saves: 112, Popularity: 82},
			Verified:    true,
			Agent:       sampleAgents[0],
			Description: "Modern townhouse in vibrant neighborhood with smart home features. Walking distance to restaurants and tech companies.",
			PriceHistory: []PricePoint{
				{Date: "2024-01-01", Price: 800000},
				{Date: "2024-02-01", Price: 837500},
				{Date: "2024-03-01", Price: 875000},
			},
		},
		{
			ID:    "prop-6",
			Title: "Charming Historic Brownstone",
			Price: 950000,
			Location: Location{
				Address: "234 Park Avenue",
				City:    "Boston",
				State:   "MA",
				ZipCode: "02108",
				Lat:     42.3601,
				Lng:     -71.0589,
			},
			Area:       2600,
			Type:       TypeHouse,
			Bedrooms:   4,
			Bathrooms:  2,
			Floors:     4,
			BuiltYear:  1890,
			Facing:     FacingSouth,
			RoadAccess: "Tree-lined historic street",
			Amenities: Amenities{
				Parking: false, Water: true, Electricity: true, Internet: true,
				Garden: true, Security: false,
				Balcony: boolPtr(false),
			},
			Media: Media{
				Images: []string{"https://images.unsplash.com/photo-1576941089067-2de3c675190d?w=1200&h=800&fit=crop"},
			},
			Analytics:   Analytics{Views: 987, Saves: 67, Popularity: 68},
			Verified:    false,
			Agent:       sampleAgents[1],
			Description: "Beautifully restored historic brownstone with original architectural details. Charming neighborhood with excellent walkability.",
		},
	}
}
