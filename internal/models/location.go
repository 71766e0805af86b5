package models

import "time"

// Location - координаты точки
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GPSQuality - классификация точности GPS по accuracy (1 сигма, метры)
type GPSQuality string

const (
	GPSQualityHigh   GPSQuality = "high"   // < 20 м
	GPSQualityMedium GPSQuality = "medium" // < 50 м
	GPSQualityLow    GPSQuality = "low"    // >= 50 м
)

// LocationSample представляет один отсчет от сенсорного моста геолокации
type LocationSample struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	AccuracyM float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

// Quality классифицирует качество GPS-сигнала по точности отсчета
func (s LocationSample) Quality() GPSQuality {
	switch {
	case s.AccuracyM < 20:
		return GPSQualityHigh
	case s.AccuracyM < 50:
		return GPSQualityMedium
	default:
		return GPSQualityLow
	}
}
