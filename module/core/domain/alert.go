package domain

import "time"

// AlertEvent is emitted once per store per cooldown window while the user is
// inside the store's geofence with relevant items still on the list.
type AlertEvent struct {
	StoreID        string         `json:"store_id"`
	StoreName      string         `json:"store_name"`
	Items          []ShoppingItem `json:"items"`
	DistanceMeters float64        `json:"distance_meters"`
	Timestamp      time.Time      `json:"timestamp"`
}
