package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (req *CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.Comment, validation.Length(0, 500)),
	)
}

type CreateReportRequest struct {
	Reason string `json:"reason"`
}

func (req *CreateReportRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Reason, validation.Required, validation.Length(3, 500)),
	)
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

func (req *UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DisplayName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.AvatarURL, validation.Length(0, 300)),
	)
}
