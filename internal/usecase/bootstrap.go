package usecase

import "flight-tracker-service/internal/domain/entity"

// BootstrapFlights returns the records seeded into an empty store on first run
func BootstrapFlights(lastUpdated string) []*entity.Flight {
	return []*entity.Flight{
		{
			ID: "F001", FlightNumber: "UA234", Airline: "United Airlines", Origin: "LAX", Destination: "JFK",
			DepartureTime: "2025-08-10 08:00 AM", ArrivalTime: "2025-08-10 04:30 PM",
			EstimatedDeparture: "2025-08-10 08:00 AM", EstimatedArrival: "2025-08-10 04:30 PM",
			Status: entity.StatusOnTime, Gate: "B23", Terminal: "Terminal 7", BaggageClaim: "Carousel 5",
			LastUpdated: lastUpdated,
		},
		{
			ID: "F002", FlightNumber: "DL567", Airline: "Delta Airlines", Origin: "ATL", Destination: "ORD",
			DepartureTime: "2025-08-10 10:15 AM", ArrivalTime: "2025-08-10 12:00 PM",
			EstimatedDeparture: "2025-08-10 10:15 AM", EstimatedArrival: "2025-08-10 12:00 PM",
			Status: entity.StatusOnTime, Gate: "A12", Terminal: "Terminal S", BaggageClaim: "Carousel 3",
			LastUpdated: lastUpdated,
		},
		{
			ID: "F003", FlightNumber: "AA987", Airline: "American Airlines", Origin: "DFW", Destination: "MIA",
			DepartureTime: "2025-08-10 01:00 PM", ArrivalTime: "2025-08-10 04:15 PM",
			EstimatedDeparture: "2025-08-10 01:00 PM", EstimatedArrival: "2025-08-10 04:15 PM",
			Status: entity.StatusOnTime, Gate: "C30", Terminal: "Terminal D", BaggageClaim: "Carousel 8",
			LastUpdated: lastUpdated,
		},
	}
}
