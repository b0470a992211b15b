package domain

import "time"

// Moderation states for a stall listing. Every submission starts out
// pending until an admin reviews it.
const (
	StallStatusPending  = "pending"
	StallStatusApproved = "approved"
	StallStatusRejected = "rejected"
)

// Facility vocabulary. Anything outside this set is rejected at the boundary.
const (
	FacilityWifi        = "wifi"
	FacilityTV          = "tv"
	FacilitySeating     = "seating"
	FacilitySmokingZone = "smoking_zone"
)

var Facilities = []string{FacilityWifi, FacilityTV, FacilitySeating, FacilitySmokingZone}

func IsValidFacility(f string) bool {
	for _, known := range Facilities {
		if f == known {
			return true
		}
	}

	return false
}

type Stall struct {
	ID            uint         `json:"id"`
	NameBn        string       `json:"name_bn"`
	NameEn        string       `json:"name_en"`
	OwnerName     string       `json:"owner_name,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	Division      string       `json:"division"`
	District      string       `json:"district"`
	Upazila       string       `json:"upazila,omitempty"`
	Lat           float64      `json:"lat"`
	Lng           float64      `json:"lng"`
	OpenTime      string       `json:"open_time,omitempty"`
	CloseTime     string       `json:"close_time,omitempty"`
	DescriptionBn string       `json:"description_bn,omitempty"`
	DescriptionEn string       `json:"description_en,omitempty"`
	TeaPriceMin   int          `json:"tea_price_min"`
	TeaPriceMax   int          `json:"tea_price_max"`
	Facilities    []string     `json:"facilities"`
	Status        string       `json:"status"`
	UserID        uint         `json:"user_id,omitempty"`
	ImageURL      string       `json:"image_url,omitempty"`
	Rating        float64      `json:"rating"`
	ReviewCount   int          `json:"review_count"`
	Images        []StallImage `json:"images,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// LocalizedName returns the display name for the given locale,
// falling back to the other language when one is blank.
func (s Stall) LocalizedName(lang string) string {
	if lang == "bn" {
		if s.NameBn != "" {
			return s.NameBn
		}

		return s.NameEn
	}

	if s.NameEn != "" {
		return s.NameEn
	}

	return s.NameBn
}

type StallImage struct {
	ID        uint      `json:"id"`
	StallID   uint      `json:"stall_id"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
