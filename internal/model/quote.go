package model

// ServiceCategory identifies the type of waterproofing work being quoted
type ServiceCategory string

// LocationTier and UrgencyTier are multiplicative pricing adjustment dimensions
type (
	LocationTier string
	UrgencyTier  string
)

const (
	ServiceFlatRoof        ServiceCategory = "flat-roof"
	ServiceTerrace         ServiceCategory = "terrace"
	ServiceFoundation      ServiceCategory = "foundation"
	ServicePool            ServiceCategory = "pool"
	ServiceIndustrialFloor ServiceCategory = "industrial-floor"
)

const (
	LocationCapital  LocationTier = "capital"
	LocationRegion   LocationTier = "region"
	LocationMountain LocationTier = "mountain"
)

const (
	UrgencyStandard UrgencyTier = "standard"
	UrgencyUrgent   UrgencyTier = "urgent"
)

// ServiceCategories lists all quotable categories in display order
var ServiceCategories = []ServiceCategory{
	ServiceFlatRoof,
	ServiceTerrace,
	ServiceFoundation,
	ServicePool,
	ServiceIndustrialFloor,
}

// LocationTiers lists all location tiers in display order
var LocationTiers = []LocationTier{
	LocationCapital,
	LocationRegion,
	LocationMountain,
}

// UrgencyTiers lists all urgency tiers in display order
var UrgencyTiers = []UrgencyTier{
	UrgencyStandard,
	UrgencyUrgent,
}

// QuoteRequest represents a price estimate request from the calculator UI
type QuoteRequest struct {
	Service  ServiceCategory `json:"service" binding:"required"`
	AreaSqm  float64         `json:"area_sqm" binding:"required"`
	Location LocationTier    `json:"location" binding:"required"`
	Urgency  UrgencyTier     `json:"urgency" binding:"required"`
}

// QuoteResult represents a computed price range in whole currency units
type QuoteResult struct {
	PerSqmLow  int64  `json:"per_sqm_low"`
	PerSqmHigh int64  `json:"per_sqm_high"`
	TotalLow   int64  `json:"total_low"`
	TotalHigh  int64  `json:"total_high"`
	Currency   string `json:"currency"`
}

// QuoteOptions describes the calculator's input space for the frontend
type QuoteOptions struct {
	Services   []ServiceCategory `json:"services"`
	Locations  []LocationTier    `json:"locations"`
	Urgencies  []UrgencyTier     `json:"urgencies"`
	AreaMinSqm float64           `json:"area_min_sqm"`
	AreaMaxSqm float64           `json:"area_max_sqm"`
	Currency   string            `json:"currency"`
}
