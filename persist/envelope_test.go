package persist_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildedata/mphom/arrangement"
	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/persist"
	"github.com/tildedata/mphom/template"
	"github.com/tildedata/mphom/updater"
)

func TestSaveLoad_RoundTripsAllThreeSections(t *testing.T) {
	params := persist.InputParameters{HomDegree: 1, XBins: 10, YBins: 20, XReverse: true, Verbosity: 2}

	xg, err := bigrade.NewGrades([]bigrade.Exact{bigrade.NewExactInt(0), bigrade.NewExactInt(1)}, false)
	require.NoError(t, err)

	tp := persist.TemplatePointsMessage{
		XLabel: "x", YLabel: "y",
		TemplatePoints:    []template.Point{{Grade: bigrade.Bigrade{X: 0, Y: 1}, Xi0: 1, IsAnchor: true}},
		HilbertDimensions: [][]uint32{{1, 2}, {3, 4}},
		XSExact:           xg,
		YSExact:           xg,
	}

	am := persist.ArrangementMessage{
		Vertices:  []arrangement.Vertex{{ID: 0, U: bigrade.NewExactInt(3), V: bigrade.NewExactInt(-2)}},
		HalfEdges: []arrangement.HalfEdge{{ID: 0, Twin: 1, Next: -1, Prev: -1, Face: 0, Line: -1}},
		Faces:     []arrangement.Face{{ID: 0, Outer: 0, Below: -1, Above: -1, Gap: 0, UToInfinite: true}},
		Lines:     []arrangement.Line{{X: bigrade.NewExactInt(2), Y: bigrade.NewExactInt(0)}},
		FaceBars:  map[int][]updater.Bar{0: {{A: 0, BInfinite: true}}},
	}

	var buf bytes.Buffer
	require.NoError(t, persist.Save(&buf, params, tp, am))

	gotParams, gotTP, gotAM, err := persist.Load(&buf)
	require.NoError(t, err)

	assert.Equal(t, params, gotParams)
	assert.Equal(t, tp.XLabel, gotTP.XLabel)
	assert.Equal(t, tp.TemplatePoints, gotTP.TemplatePoints)
	assert.Equal(t, tp.HilbertDimensions, gotTP.HilbertDimensions)
	assert.Equal(t, 2, gotTP.XSExact.Len())

	assert.Equal(t, am.Vertices[0].ID, gotAM.Vertices[0].ID)
	assert.Equal(t, "3", gotAM.Vertices[0].U.String())
	assert.Equal(t, "-2", gotAM.Vertices[0].V.String())
	assert.Equal(t, am.Lines[0].X.String(), gotAM.Lines[0].X.String())
	assert.Equal(t, am.FaceBars, gotAM.FaceBars)
}

func TestLoad_RejectsLegacyTag(t *testing.T) {
	buf := bytes.NewBufferString(persist.LegacyTag + "\n")
	_, _, _, err := persist.Load(buf)
	assert.ErrorIs(t, err, persist.ErrFormat)
}

func TestLoad_RejectsUnknownTag(t *testing.T) {
	buf := bytes.NewBufferString("NOT_A_TAG\n")
	_, _, _, err := persist.Load(buf)
	assert.ErrorIs(t, err, persist.ErrFormat)
}

func TestLoad_TruncatedSection(t *testing.T) {
	buf := bytes.NewBufferString(persist.CurrentTag + "\n\x00\x00\x00\x10short")
	_, _, _, err := persist.Load(buf)
	assert.ErrorIs(t, err, persist.ErrTruncated)
}
