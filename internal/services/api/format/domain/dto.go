// Package domain holds DTOs for format http and service contracts
package domain

import "time"

// Times are RFC 3339; the offset in the value is kept for rendering unless
// time_zone names a zone to read it in

// Settings override the service defaults for one request
type Settings struct {
	DateResolution    string `json:"date_resolution,omitempty" validate:"omitempty,oneof=year month day hour minute second" example:"second"`
	DisplayResolution string `json:"display_resolution,omitempty" validate:"omitempty,oneof=year month day hour minute second" example:"minute"`
	Boundary          string `json:"boundary,omitempty" validate:"omitempty,oneof=inclusive exclusive" example:"inclusive"`
	OnlyIntl          *bool  `json:"only_intl,omitempty" example:"false"`
}

// Render picks the locale and zone; an empty locale falls back to Accept-Language
type Render struct {
	Locale       string `json:"locale,omitempty" validate:"omitempty,max=35" example:"en-GB"`
	TimeZone     string `json:"time_zone,omitempty" validate:"omitempty,max=64" example:"Europe/Stockholm"`
	ShowTimeZone bool   `json:"show_time_zone,omitempty"`
}

// DateInput formats a single instant
type DateInput struct {
	Settings
	Render
	Date *time.Time `json:"date" validate:"required" example:"2022-02-03T01:02:03Z"`
}

// RangeInput formats or classifies from..to
type RangeInput struct {
	Settings
	Render
	From *time.Time `json:"from" validate:"required" example:"2023-08-01T00:00:00Z"`
	To   *time.Time `json:"to" validate:"required" example:"2023-08-12T23:59:59.999Z"`
	// Today anchors range-today; omitted means the server clock
	Today *time.Time `json:"today,omitempty"`
}

// Config echoes the resolved formatter settings
type Config struct {
	DateResolution    string `json:"date_resolution"`
	DisplayResolution string `json:"display_resolution"`
	Boundary          string `json:"boundary"`
	OnlyIntl          bool   `json:"only_intl"`
}

// Formatted is the result of a format call
type Formatted struct {
	Text   string `json:"text" example:"Aug 1 – 12"`
	Locale string `json:"locale" example:"en"`
	Config Config `json:"config"`
}

// Classified is the result of a range type call; "" means no category fits
type Classified struct {
	RangeType string `json:"range_type" example:"sameMonth"`
	Config    Config `json:"config"`
}
