package main

import "github.com/Witchkitt/grabbit-clean-main/module/core/domain"

// seedStores is a bundled store snapshot for running without a live business
// directory. In production the directory cache is refreshed from an external
// search API as the user moves.
var seedStores = []domain.Store{
	{
		ID:           "safeway-lafayette",
		Name:         "Safeway",
		Coordinates:  domain.Coordinate{Lat: 37.8351, Lon: -122.1302},
		CategoryTags: []string{"grocery", "supermarkets"},
		Address:      "3540 Mt Diablo Blvd, Lafayette, CA",
	},
	{
		ID:           "safeway-sf-king",
		Name:         "Safeway",
		Coordinates:  domain.Coordinate{Lat: 37.7767, Lon: -122.3942},
		CategoryTags: []string{"grocery", "supermarkets"},
		Address:      "298 King St, San Francisco, CA",
	},
	{
		ID:           "walgreens-sf-powell",
		Name:         "Walgreens",
		Coordinates:  domain.Coordinate{Lat: 37.7848, Lon: -122.4069},
		CategoryTags: []string{"drugstores", "convenience"},
		Address:      "135 Powell St, San Francisco, CA",
	},
	{
		ID:           "target-sf-metreon",
		Name:         "Target",
		Coordinates:  domain.Coordinate{Lat: 37.7842, Lon: -122.4076},
		CategoryTags: []string{"departmentstores"},
		Address:      "789 Mission St, San Francisco, CA",
	},
	{
		ID:           "cvs-sf-market",
		Name:         "CVS Pharmacy",
		Coordinates:  domain.Coordinate{Lat: 37.7876, Lon: -122.4071},
		CategoryTags: []string{"pharmacy", "drugstores"},
		Address:      "731 Market St, San Francisco, CA",
	},
	{
		ID:           "bestbuy-sf-harrison",
		Name:         "Best Buy",
		Coordinates:  domain.Coordinate{Lat: 37.7713, Lon: -122.4039},
		CategoryTags: []string{"electronics"},
		Address:      "1717 Harrison St, San Francisco, CA",
	},
	{
		ID:           "ace-lafayette",
		Name:         "Lafayette Ace Hardware",
		Coordinates:  domain.Coordinate{Lat: 37.8573, Lon: -122.1180},
		CategoryTags: []string{"hardware"},
		Address:      "3611 Mt Diablo Blvd, Lafayette, CA",
	},
	{
		ID:           "guitarcenter-emeryville",
		Name:         "Guitar Center",
		Coordinates:  domain.Coordinate{Lat: 37.8313, Lon: -122.2852},
		CategoryTags: []string{"musicalinstruments"},
		Address:      "1330 40th St, Emeryville, CA",
	},
	{
		ID:           "petco-sf-sloat",
		Name:         "Petco",
		Coordinates:  domain.Coordinate{Lat: 37.7342, Lon: -122.5052},
		CategoryTags: []string{"petstore"},
		Address:      "1591 Sloat Blvd, San Francisco, CA",
	},
	{
		ID:           "shell-lafayette",
		Name:         "Shell",
		Coordinates:  domain.Coordinate{Lat: 37.8921, Lon: -122.1258},
		CategoryTags: []string{"servicestations", "gas_stations"},
		Address:      "3701 Mt Diablo Blvd, Lafayette, CA",
	},
}
