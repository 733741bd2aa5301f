package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullHeader = `Mission ID,Mission Name,Launch Date,Target Type,Target Name,Mission Type,Distance from Earth (light-years),Mission Duration (years),Mission Cost (billion USD),Scientific Yield (points),Crew Size,Mission Success (%),Fuel Consumption (tons),Payload Weight (tons),Launch Vehicle`

func TestParseMissionsCsvRoundTrip(t *testing.T) {
	csvData := fullHeader + "\n" +
		"M-001,Artemis II,2031-05-14,Moon,Luna,Crewed,0.0,1.5,4.1,75.2,4,97.5,2100,26.5,SLS Block 1\n" +
		"M-002,Europa Clipper,2024-10-14,Moon,Europa,Orbiter,0.0,6.0,5.2,88.0,0,99.0,1500,6.0,Falcon Heavy\n"

	missions, err := ParseMissionsCsv(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, missions, 2)

	assert.Equal(t, "M-001", missions[0].MissionID)
	assert.Equal(t, "Artemis II", missions[0].MissionName)
	assert.Equal(t, "2031-05-14", missions[0].LaunchDate)
	assert.Equal(t, "SLS Block 1", missions[0].LaunchVehicle)
	assert.Equal(t, "Falcon Heavy", missions[1].LaunchVehicle)
	assert.Equal(t, "99.0", missions[1].SuccessPct)
}

func TestParseMissionsCsvHeaderOnly(t *testing.T) {
	missions, err := ParseMissionsCsv(strings.NewReader(fullHeader + "\n"))
	require.NoError(t, err)
	assert.Empty(t, missions)
}

func TestParseMissionsCsvMissingColumns(t *testing.T) {
	// Drop "Launch Date" and "Crew Size" from the header.
	header := strings.ReplaceAll(fullHeader, "Launch Date,", "")
	header = strings.ReplaceAll(header, "Crew Size,", "")

	_, err := ParseMissionsCsv(strings.NewReader(header + "\n"))
	require.Error(t, err)

	var missingErr *MissingColumnsError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{"Launch Date", "Crew Size"}, missingErr.Columns)
	assert.Contains(t, missingErr.Error(), "Launch Date")
	assert.Contains(t, missingErr.Error(), "Crew Size")
}

func TestParseMissionsCsvExtraColumnsIgnored(t *testing.T) {
	csvData := fullHeader + ",Notes\n" +
		"M-001,Artemis II,2031-05-14,Moon,Luna,Crewed,0.0,1.5,4.1,75.2,4,97.5,2100,26.5,SLS Block 1,extra\n"

	missions, err := ParseMissionsCsv(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, missions, 1)
	assert.Equal(t, "Artemis II", missions[0].MissionName)
}
