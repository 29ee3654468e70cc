package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtron-go/rtron/internal/citygml"
	"github.com/rtron-go/rtron/internal/config"
	"github.com/rtron-go/rtron/internal/pipeline"
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

// recordingWriter captures the models it's asked to write, instead of
// touching disk — the actual CityGML 2.0/3.0 encoding is out of scope here
// (citygml.Writer is an external concern).
type recordingWriter struct {
	written []*citygml.CityModel
	path    string
}

func (w *recordingWriter) Write(model *citygml.CityModel, targetPath string) (string, error) {
	w.written = append(w.written, model)
	w.path = targetPath
	return targetPath, nil
}

func writeTempOpenDRIVE(t *testing.T, xmlDoc string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "road.xodr")
	require.NoError(t, os.WriteFile(path, []byte(xmlDoc), 0o644))
	return path
}

func TestRun_StraightRoad_WritesOneCityModel(t *testing.T) {
	path := writeTempOpenDRIVE(t, straightRoadXML)
	w := &recordingWriter{}
	cfg := config.Default()

	msgs, err := pipeline.Run(context.Background(), path, cfg, w, t.TempDir(), nil)
	require.NoError(t, err)
	assert.False(t, msgs.HasFatal())
	require.Len(t, w.written, 1)
	assert.Len(t, w.written[0].Roads, 1)
}

func TestRun_FatalViolation_AbortsWithoutWriting(t *testing.T) {
	path := writeTempOpenDRIVE(t, `<?xml version="1.0"?><OpenDRIVE><header revMajor="1" revMinor="4"/><road id="" length="10"><planView><geometry s="0" x="0" y="0" hdg="0" length="10"><line/></geometry></planView><lanes><laneSection s="0"/></lanes></road></OpenDRIVE>`)
	w := &recordingWriter{}

	msgs, err := pipeline.Run(context.Background(), path, config.Default(), w, t.TempDir(), nil)
	require.NoError(t, err)
	assert.True(t, msgs.HasFatal())
	assert.Empty(t, w.written)
}

func TestRun_UnsupportedSchema_ReturnsParseError(t *testing.T) {
	path := writeTempOpenDRIVE(t, `<OpenDRIVE><header revMajor="1" revMinor="0"/></OpenDRIVE>`)
	w := &recordingWriter{}

	_, err := pipeline.Run(context.Background(), path, config.Default(), w, t.TempDir(), nil)
	assert.Error(t, err)
}

func TestRun_CancelledContext_ProducesCancelledMessageNoWrite(t *testing.T) {
	path := writeTempOpenDRIVE(t, straightRoadXML)
	w := &recordingWriter{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msgs, err := pipeline.Run(ctx, path, config.Default(), w, t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, w.written)

	found := false
	for _, m := range msgs {
		if m.Code == pipeline.CodeCancelled {
			found = true
		}
	}
	assert.True(t, found, "expected a %s message, got %v", pipeline.CodeCancelled, msgs)
}

func TestPool_Run_ProcessesEveryFile(t *testing.T) {
	paths := []string{
		writeTempOpenDRIVE(t, straightRoadXML),
		writeTempOpenDRIVE(t, straightRoadXML),
	}
	w := &recordingWriter{}
	pool := &pipeline.Pool{
		Workers: 2,
		Writer:  w,
		OutDir:  t.TempDir(),
		Config:  config.Default(),
	}

	results := pool.Run(context.Background(), paths)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.False(t, r.Messages.HasFatal())
	}
	assert.Len(t, w.written, 2)
}
