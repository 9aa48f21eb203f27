package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessCreatePoint      = "donation point created successfully"
	MessageSuccessUpdatePoint      = "donation point updated successfully"
	MessageSuccessDeletePoint      = "donation point deleted successfully"
	MessageSuccessGetPoints        = "donation points retrieved successfully"
	MessageSuccessUploadPointImage = "donation point image uploaded successfully"

	MessageFailedCreatePoint      = "failed to create donation point"
	MessageFailedUpdatePoint      = "failed to update donation point"
	MessageFailedDeletePoint      = "failed to delete donation point"
	MessageFailedGetPoints        = "failed to retrieve donation points"
	MessageFailedUploadPointImage = "failed to upload donation point image"

	ErrDonationPointNotFound = errors.New("donation point not found")
	ErrNoUpdatableFields     = errors.New("no updatable fields provided")
)

type (
	CreatePointRequest struct {
		Name    string  `json:"name" validate:"required"`
		Address string  `json:"address" validate:"required"`
		Lat     float64 `json:"lat" validate:"required"`
		Lon     float64 `json:"lon" validate:"required"`
	}

	UpdatePointRequest struct {
		Name    *string  `json:"name"`
		Address *string  `json:"address"`
		Lat     *float64 `json:"lat"`
		Lon     *float64 `json:"lon"`
	}

	UploadPointImageRequest struct {
		PointID uint                  `json:"id_point" form:"id_point" validate:"required"`
		Image   *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	PointResponse struct {
		ID       uint    `json:"id"`
		Name     string  `json:"name"`
		Address  string  `json:"address"`
		Lat      float64 `json:"lat"`
		Lon      float64 `json:"lon"`
		ImageURL string  `json:"image_url,omitempty"`
	}

	ListPointsResponse struct {
		Points []*PointResponse `json:"points"`
		Total  int              `json:"total"`
	}
)
