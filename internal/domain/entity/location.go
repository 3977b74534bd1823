package entity

import "github.com/paulmach/orb"

// UserLocation is a live device position. It only lives for one request.
type UserLocation struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64 // meters, 0 when unknown
}

// Point returns the location in [lng, lat] order.
func (l UserLocation) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// NearbyWarning is a published pin with its distance from a UserLocation.
type NearbyWarning struct {
	Pin            *Pin
	DistanceMeters float64
}
