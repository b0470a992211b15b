package request

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/tongmap/tong-api/internal/domain"
)

var (
	errUnknownDivision = errors.New("division is not one of the eight divisions")
	errUnknownFacility = errors.New("facility is not in the known set")

	timeOfDayExp = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	phoneExp     = regexp.MustCompile(`^01\d{9}$`)
)

// CreateStallRequest is bound from the multipart submission form.
// Coordinate and price fields stay text on purpose: malformed numbers
// fall back to defaults during submission instead of failing it.
type CreateStallRequest struct {
	NameBn        string   `form:"name_bn"`
	NameEn        string   `form:"name_en"`
	OwnerName     string   `form:"owner_name"`
	Phone         string   `form:"phone"`
	Division      string   `form:"division"`
	District      string   `form:"district"`
	Upazila       string   `form:"upazila"`
	Lat           string   `form:"lat"`
	Lng           string   `form:"lng"`
	OpenTime      string   `form:"open_time"`
	CloseTime     string   `form:"close_time"`
	DescriptionBn string   `form:"description_bn"`
	DescriptionEn string   `form:"description_en"`
	TeaPriceMin   string   `form:"tea_price_min"`
	TeaPriceMax   string   `form:"tea_price_max"`
	Facilities    []string `form:"facilities"`
}

func (req *CreateStallRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.NameBn, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.NameEn, validation.Length(0, 100)),
		validation.Field(&req.Division, validation.Required),
		validation.Field(&req.District, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Phone, validation.Match(phoneExp)),
		validation.Field(&req.OpenTime, validation.Match(timeOfDayExp)),
		validation.Field(&req.CloseTime, validation.Match(timeOfDayExp)),
		validation.Field(&req.DescriptionBn, validation.Length(0, 500)),
		validation.Field(&req.DescriptionEn, validation.Length(0, 500)),
	)
	if err != nil {
		return err
	}

	if !domain.IsValidDivision(req.Division) {
		return errUnknownDivision
	}

	for _, f := range req.Facilities {
		if !domain.IsValidFacility(f) {
			return errUnknownFacility
		}
	}

	return nil
}

type ModerateStallRequest struct {
	Status string `json:"status"`
}

func (req *ModerateStallRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required,
			validation.In(domain.StallStatusPending, domain.StallStatusApproved, domain.StallStatusRejected)),
	)
}
