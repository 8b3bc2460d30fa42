package seed

import "shuttle/internal/domain"

// DefaultRoutes is the built-in last-resort route set.
func DefaultRoutes() []domain.Route {
	return []domain.Route{
		{
			ID:          1,
			Name:        "Rohri to Sukkur IBA University (Route 01)",
			Description: "Route from Rohri to Sukkur IBA University with multiple pickup points",
			Stops: []string{
				"Rohri", "Navy Park", "Old Sukkur", "Shalimar", "Local Board",
				"Dolphin", "Ayub Gate", "Gurdwara Chowk", "Police Line",
				"Officer Club", "Sukkur IBA University",
			},
			Duration:  "45 minutes",
			Frequency: "Multiple shifts daily",
			Fare:      "Free for students",
		},
		{
			ID:          2,
			Name:        "Qasim Park to Sukkur IBA University (Route 02)",
			Description: "Route from Qasim Park to Sukkur IBA University via multiple stops",
			Stops: []string{
				"Qasim Park", "Dua Chowk", "Emmys Pizza", "Allah Wali Masjid",
				"Bhutta Road", "Lanch Mor", "Hira Hospital", "Hockey Ground",
				"High Court", "Benazir Park", "Military Road", "Airport Road",
				"100 ft. Road", "Society Hostels", "Physical Hostel",
				"Sukkur IBA University",
			},
			Duration:  "40 minutes",
			Frequency: "Multiple shifts daily",
			Fare:      "Free for students",
			Note:      "100ft Road Pick only for Girls",
		},
		{
			ID:          3,
			Name:        "City Point to Sukkur IBA University (Route 03)",
			Description: "Direct route from City Point to Sukkur IBA University",
			Stops: []string{
				"City Point", "NICVD Hospital", "Township", "Sukkur IBA University",
			},
			Duration:  "20 minutes",
			Frequency: "Multiple shifts daily",
			Fare:      "Free for students",
		},
	}
}

// DefaultSchedule is the built-in last-resort departure set.
func DefaultSchedule() []domain.ScheduleSlot {
	return []domain.ScheduleSlot{
		{ID: 1, Route: "Rohri to Sukkur IBA University (Route 01)", Shift: "1st Shift (Morning)", Departure: "08:00", Arrival: "08:35", Status: "on-time", Capacity: 40, Available: 25},
		{ID: 2, Route: "Qasim Park to Sukkur IBA University (Route 02)", Shift: "1st Shift (Morning)", Departure: "08:10", Arrival: "08:30", Status: "on-time", Capacity: 40, Available: 30},
		{ID: 3, Route: "City Point to Sukkur IBA University (Route 03)", Shift: "1st Shift (Morning)", Departure: "08:20", Arrival: "08:30", Status: "on-time", Capacity: 40, Available: 28},
		{ID: 4, Route: "Rohri to Sukkur IBA University (Route 01)", Shift: "2nd Shift (Afternoon)", Departure: "11:00", Arrival: "11:30", Status: "on-time", Capacity: 40, Available: 20},
		{ID: 5, Route: "Qasim Park to Sukkur IBA University (Route 02)", Shift: "2nd Shift (Afternoon)", Departure: "11:10", Arrival: "11:30", Status: "on-time", Capacity: 40, Available: 22},
		{ID: 6, Route: "Rohri to Sukkur IBA University (Route 01)", Shift: "3rd Shift (Evening)", Departure: "15:30", Arrival: "16:05", Status: "on-time", Capacity: 40, Available: 18},
		{ID: 7, Route: "Qasim Park to Sukkur IBA University (Route 02)", Shift: "3rd Shift (Evening)", Departure: "15:40", Arrival: "16:00", Status: "on-time", Capacity: 40, Available: 15},
		{ID: 8, Route: "Sukkur IBA University to Rohri (Route 01)", Shift: "1st Shift Return", Departure: "14:30", Arrival: "15:15", Status: "on-time", Capacity: 40, Available: 32},
		{ID: 9, Route: "Sukkur IBA University to Qasim Park (Route 02)", Shift: "1st Shift Return", Departure: "14:30", Arrival: "15:10", Status: "on-time", Capacity: 40, Available: 35},
		{ID: 10, Route: "Sukkur IBA University to City Point (Route 03)", Shift: "1st Shift Return", Departure: "14:30", Arrival: "14:50", Status: "on-time", Capacity: 40, Available: 30},
		{ID: 11, Route: "Sukkur IBA University to Rohri (Route 01)", Shift: "2nd Shift Return", Departure: "17:15", Arrival: "18:00", Status: "on-time", Capacity: 40, Available: 25},
		{ID: 12, Route: "Sukkur IBA University to Qasim Park (Route 02)", Shift: "2nd Shift Return", Departure: "17:15", Arrival: "17:55", Status: "on-time", Capacity: 40, Available: 28},
		{ID: 13, Route: "Sukkur IBA University to Rohri (Route 01)", Shift: "3rd Shift Return", Departure: "20:10", Arrival: "20:55", Status: "on-time", Capacity: 40, Available: 20},
		{ID: 14, Route: "Sukkur IBA University to Qasim Park (Route 02)", Shift: "3rd Shift Return", Departure: "20:10", Arrival: "20:50", Status: "on-time", Capacity: 40, Available: 22},
	}
}
