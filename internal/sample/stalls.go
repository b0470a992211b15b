// Package sample carries the built-in stall dataset shown while the
// store has no matching rows yet. It is a display fallback only and is
// never written to the database.
package sample

import (
	"time"

	"github.com/tongmap/tong-api/internal/domain"
)

var sampleCreatedAt = time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)

var Stalls = []domain.Stall{
	{
		ID:            1,
		NameBn:        "রহিম চাচার টঙ",
		NameEn:        "Rahim Chacha's Tong",
		OwnerName:     "Rahim Uddin",
		Phone:         "01712345678",
		Division:      "Dhaka",
		District:      "Dhaka",
		Upazila:       "Dhanmondi",
		Lat:           23.7461,
		Lng:           90.3742,
		OpenTime:      "06:00",
		CloseTime:     "23:00",
		DescriptionBn: "ঢাকার ধানমন্ডিতে ৩০ বছরের পুরনো চায়ের দোকান। বিশেষ মালাই চা এবং আদা চায়ের জন্য বিখ্যাত।",
		DescriptionEn: "A 30-year-old tea stall in Dhanmondi, Dhaka. Famous for special malai cha and ginger tea.",
		TeaPriceMin:   10,
		TeaPriceMax:   30,
		Facilities:    []string{domain.FacilitySeating, domain.FacilityTV},
		Status:        domain.StallStatusApproved,
		Rating:        4.5,
		ReviewCount:   128,
		CreatedAt:     sampleCreatedAt,
		UpdatedAt:     sampleCreatedAt,
	},
	{
		ID:            2,
		NameBn:        "সিলেটি সাত রঙ চা",
		NameEn:        "Sylheti Seven Layer Tea",
		OwnerName:     "Kamal Hossain",
		Phone:         "01898765432",
		Division:      "Sylhet",
		District:      "Sylhet",
		Upazila:       "Sylhet Sadar",
		Lat:           24.8949,
		Lng:           91.8687,
		OpenTime:      "05:30",
		CloseTime:     "22:00",
		DescriptionBn: "সিলেটের বিখ্যাত সাত রঙ চা। প্রতিটি স্তর আলাদা স্বাদের।",
		DescriptionEn: "Famous seven-layer tea of Sylhet. Each layer has a unique flavor.",
		TeaPriceMin:   40,
		TeaPriceMax:   80,
		Facilities:    []string{domain.FacilitySeating, domain.FacilityWifi},
		Status:        domain.StallStatusApproved,
		Rating:        4.8,
		ReviewCount:   342,
		CreatedAt:     sampleCreatedAt,
		UpdatedAt:     sampleCreatedAt,
	},
	{
		ID:            3,
		NameBn:        "নদীর ধারের টঙ",
		NameEn:        "Riverside Tong",
		OwnerName:     "Abdul Karim",
		Phone:         "01555123456",
		Division:      "Chittagong",
		District:      "Chittagong",
		Upazila:       "Patenga",
		Lat:           22.2352,
		Lng:           91.7914,
		OpenTime:      "07:00",
		CloseTime:     "21:00",
		DescriptionBn: "পতেঙ্গা সমুদ্র সৈকতের কাছে। সূর্যাস্ত দেখতে দেখতে চা খাওয়ার অভিজ্ঞতা।",
		DescriptionEn: "Near Patenga beach. Experience tea while watching the sunset.",
		TeaPriceMin:   15,
		TeaPriceMax:   35,
		Facilities:    []string{domain.FacilitySeating, domain.FacilitySmokingZone},
		Status:        domain.StallStatusApproved,
		Rating:        4.2,
		ReviewCount:   89,
		CreatedAt:     sampleCreatedAt,
		UpdatedAt:     sampleCreatedAt,
	},
	{
		ID:            4,
		NameBn:        "ক্যাম্পাসের মোড়ের টঙ",
		NameEn:        "Campus Corner Tong",
		OwnerName:     "Selina Begum",
		Phone:         "01611223344",
		Division:      "Rajshahi",
		District:      "Rajshahi",
		Upazila:       "Motihar",
		Lat:           24.3667,
		Lng:           88.6167,
		OpenTime:      "06:30",
		CloseTime:     "23:30",
		DescriptionBn: "বিশ্ববিদ্যালয়ের পাশে ছাত্রছাত্রীদের প্রিয় আড্ডার জায়গা।",
		DescriptionEn: "Students' favorite hangout spot beside the university.",
		TeaPriceMin:   5,
		TeaPriceMax:   20,
		Facilities:    []string{domain.FacilitySeating, domain.FacilityWifi, domain.FacilityTV},
		Status:        domain.StallStatusApproved,
		Rating:        4.6,
		ReviewCount:   210,
		CreatedAt:     sampleCreatedAt,
		UpdatedAt:     sampleCreatedAt,
	},
}

// ByDivision filters the sample dataset the same way the store query
// filters real rows. The sentinel "all" returns everything.
func ByDivision(division string) []domain.Stall {
	if division == "" || division == domain.DivisionAll {
		out := make([]domain.Stall, len(Stalls))
		copy(out, Stalls)

		return out
	}

	var out []domain.Stall
	for _, s := range Stalls {
		if s.Division == division {
			out = append(out, s)
		}
	}

	return out
}
