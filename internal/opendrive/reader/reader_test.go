package reader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtron-go/rtron/internal/opendrive/reader"
)

const straightRoadXML = `<?xml version="1.0"?>
<OpenDRIVE>
  <header revMajor="1" revMinor="4" name="test" version="1.00"/>
  <road id="1" length="10.0" junction="-1">
    <link/>
    <planView>
      <geometry s="0" x="0" y="0" hdg="0" length="10">
        <line/>
      </geometry>
    </planView>
    <lanes>
      <laneSection s="0">
        <right>
          <lane id="-1" type="driving">
            <width sOffset="0" a="3.5" b="0" c="0" d="0"/>
          </lane>
        </right>
      </laneSection>
    </lanes>
  </road>
</OpenDRIVE>`

func TestParse_StraightRoad_NormalizesIntoModel(t *testing.T) {
	m, err := reader.Parse(strings.NewReader(straightRoadXML))
	require.NoError(t, err)

	require.Len(t, m.Roads, 1)
	road := m.Roads[0]
	assert.Equal(t, "1", road.ID)
	assert.Equal(t, 10.0, road.Length)
	require.Len(t, road.PlanView, 1)
	require.Len(t, road.Lanes.LaneSections, 1)
	require.Len(t, road.Lanes.LaneSections[0].Right, 1)
	assert.Equal(t, -1, road.Lanes.LaneSections[0].Right[0].ID)
	assert.Equal(t, 3.5, road.Lanes.LaneSections[0].Right[0].Widths[0].A)
}

func TestParse_UnsupportedVersion_ReturnsNoDedicatedSchemaAvailable(t *testing.T) {
	xmlDoc := `<OpenDRIVE><header revMajor="1" revMinor="0"/></OpenDRIVE>`

	_, err := reader.Parse(strings.NewReader(xmlDoc))
	require.Error(t, err)

	var schemaErr *reader.ErrNoDedicatedSchemaAvailable
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "1.0", schemaErr.Version)
}

func TestParse_MalformedXML_ReturnsError(t *testing.T) {
	_, err := reader.Parse(strings.NewReader("not xml at all"))
	assert.Error(t, err)
}
