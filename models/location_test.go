package models_test

import (
	"math"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/semafind/geodist/models"
	"github.com/stretchr/testify/require"
)

func TestLocation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		loc     models.Location
		wantErr bool
	}{
		{"Origin", models.Location{}, false},
		{"Airport", models.Location{Longitude: -77.4565, Latitude: 38.9531}, false},
		{"Deep", models.Location{Longitude: 10, Latitude: -10, Depth: 700}, false},
		{"Poles", models.Location{Longitude: 180, Latitude: -90}, false},
		{"LatitudeTooLarge", models.Location{Latitude: 90.5}, true},
		{"LongitudeTooSmall", models.Location{Longitude: -180.1}, true},
		{"NegativeDepth", models.Location{Depth: -1}, true},
		{"NaNLatitude", models.Location{Latitude: math.NaN()}, true},
		{"InfLongitude", models.Location{Longitude: math.Inf(1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.loc.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var verrs validator.ValidationErrors
				require.ErrorAs(t, err, &verrs)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLocation_Epicentre(t *testing.T) {
	loc := models.Location{Longitude: 1, Latitude: 2, Depth: 3}
	require.Equal(t, models.Location{Longitude: 1, Latitude: 2}, loc.Epicentre())
}
