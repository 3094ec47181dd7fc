package models

// IATA Special Service Request codes used when a traveler declares an
// accommodation need to an airline.
const (
	SSRWheelchair        = "WCHR"
	SSRWheelchairStowage = "WCHS"
	SSRStretcher         = "STCR"
	SSRDeaf              = "DEAF"
	SSRBlind             = "BLND"
	SSRReducedMobility   = "PRMK"
)

// WheelchairAmenityID is the consumer-search amenity identifier that marks a
// property as wheelchair accessible.
const WheelchairAmenityID = 53

// AccessibilityRequest captures a traveler's declared accessibility needs.
type AccessibilityRequest struct {
	WheelchairUser      bool   `json:"wheelchair_user"`
	WheelchairStowage   bool   `json:"wheelchair_stowage"`
	StretcherCase       bool   `json:"stretcher_case"`
	Deaf                bool   `json:"deaf"`
	Blind               bool   `json:"blind"`
	ReducedMobility     bool   `json:"reduced_mobility"`
	CompanionRequired   bool   `json:"companion_required"`
	SpecialRequirements string `json:"special_requirements,omitempty"`
}

// FlightAccessibility is the unified flight accessibility record. Fields
// default to false when the source exposes no signal; false here means
// "unknown", never "verified inaccessible".
type FlightAccessibility struct {
	WheelchairAvailable   bool     `json:"wheelchair_available"`
	WheelchairStowage     bool     `json:"wheelchair_stowage"`
	AccessibleLavatory    bool     `json:"accessible_lavatory"`
	ExtraLegroomAvailable bool     `json:"extra_legroom_available"`
	SpecialMealsAvailable bool     `json:"special_meals_available"`
	CompanionRequired     bool     `json:"companion_required"`
	SpecialServiceCodes   []string `json:"special_service_codes"`
	Notes                 string   `json:"notes"`
}

// HotelAccessibility is the unified hotel accessibility record.
type HotelAccessibility struct {
	WheelchairAccessible    bool     `json:"wheelchair_accessible"`
	AccessibleRoomAvailable bool     `json:"accessible_room_available"`
	AccessibleBathroom      bool     `json:"accessible_bathroom"`
	AccessibleEntrance      bool     `json:"accessible_entrance"`
	Elevator                bool     `json:"elevator"`
	AccessibleParking       bool     `json:"accessible_parking"`
	BathroomType            string   `json:"bathroom_type,omitempty"`
	FacilityList            []string `json:"facility_list"`
	Notes                   string   `json:"notes,omitempty"`
}
