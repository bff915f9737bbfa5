package db

import (
	"turfzone/internal/turf"

	"github.com/shopspring/decimal"
)

// DemoTurfs is the fixture set loaded by the seed command.
func DemoTurfs() []turf.Turf {
	return []turf.Turf{
		{Name: "Star Turf Club", Address: "12 MG Road, Bengaluru", PricePerHour: decimal.RequireFromString("1200.00"), OperatingHours: "06:00 - 23:00", Category: "Football"},
		{Name: "Champions Dome", Address: "4 Lake View Road, Pune", PricePerHour: decimal.RequireFromString("1500.00"), OperatingHours: "24 hours", Category: "Football"},
		{Name: "Ground Zero Arena", Address: "7 Outer Ring Road, Hyderabad", PricePerHour: decimal.RequireFromString("950.50"), OperatingHours: "05:00 - 22:00", Category: "Football"},
		{Name: "Boundary Nets", Address: "3 Stadium Lane, Chennai", PricePerHour: decimal.RequireFromString("600.00"), OperatingHours: "07:00 - 21:00", Category: "Cricket"},
		{Name: "Smash Court", Address: "22 Park Street, Kolkata", PricePerHour: decimal.RequireFromString("400.00"), OperatingHours: "06:00 - 22:00", Category: "Badminton"},
	}
}
