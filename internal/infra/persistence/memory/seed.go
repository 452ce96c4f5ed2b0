package memory

import "doorstep/internal/domain/entity"

// SeedRecords returns the sample records the service starts with. Progress
// fields are left empty; the store derives them when seeding.
func SeedRecords() []*entity.AddressRecord {
	return []*entity.AddressRecord{
		{
			ID:                "1",
			GivenAddress:      "123 Main St, New York, NY 10001",
			ValidatedAddress:  ptr("123 Main Street, New York, NY 10001"),
			SelectedScenarios: scenarios(entity.DefaultScenarios...),
			DoorPosition:      &entity.LatLng{Lat: 40.7128, Lng: -74.0060},
			ParkingSpotSet:    true,
			ScenarioPaths: doorPaths(entity.LatLng{Lat: 40.7128, Lng: -74.0060}, map[entity.Scenario]entity.LatLng{
				"Door to taxi":      {Lat: 40.7130, Lng: -74.0058},
				"car/truck to Door": {Lat: 40.7126, Lng: -74.0062},
				"bicycle to Door":   {Lat: 40.7129, Lng: -74.0059},
				"ambulance to Door": {Lat: 40.7127, Lng: -74.0061},
			}),
		},
		{
			ID:                "2",
			GivenAddress:      "456 Oak Ave, Los Angeles, CA 90001",
			SelectedScenarios: scenarios(),
		},
		{
			ID:                "3",
			GivenAddress:      "789 Pine Rd, Chicago, IL 60601",
			ValidatedAddress:  ptr("789 Pine Road, Chicago, IL 60601"),
			SelectedScenarios: scenarios("Door to taxi", "car/truck to Door"),
			DoorPosition:      &entity.LatLng{Lat: 41.8781, Lng: -87.6298},
		},
		{
			ID:                "4",
			GivenAddress:      "321 Elm St, Houston, TX 77001",
			ValidatedAddress:  ptr("321 Elm Street, Houston, TX 77001"),
			SelectedScenarios: scenarios(entity.DefaultScenarios...),
			DoorPosition:      &entity.LatLng{Lat: 29.7604, Lng: -95.3698},
			ParkingSpotSet:    true,
			ScenarioPaths: doorPaths(entity.LatLng{Lat: 29.7604, Lng: -95.3698}, map[entity.Scenario]entity.LatLng{
				"Door to taxi":      {Lat: 29.7606, Lng: -95.3696},
				"car/truck to Door": {Lat: 29.7602, Lng: -95.3700},
				"bicycle to Door":   {Lat: 29.7605, Lng: -95.3697},
				"ambulance to Door": {Lat: 29.7603, Lng: -95.3699},
			}),
		},
	}
}

func doorPaths(door entity.LatLng, ends map[entity.Scenario]entity.LatLng) map[entity.Scenario][]entity.LatLng {
	paths := make(map[entity.Scenario][]entity.LatLng, len(ends))
	for s, end := range ends {
		paths[s] = []entity.LatLng{door, end}
	}

	return paths
}

func scenarios(tags ...entity.Scenario) []entity.Scenario {
	return append([]entity.Scenario{}, tags...)
}

func ptr[T any](v T) *T {
	return &v
}
