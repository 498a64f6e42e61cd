package persist

import (
	"github.com/tildedata/mphom/arrangement"
	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/template"
	"github.com/tildedata/mphom/updater"
)

// InputParameters mirrors spec §6's external input record. It is the
// canonical definition: engine re-exports it rather than persist
// depending on engine, since engine in turn depends on persist to save
// its own results.
type InputParameters struct {
	HomDegree uint32
	XBins     uint32
	YBins     uint32
	XReverse  bool
	YReverse  bool
	Verbosity uint8
}

// TemplatePointsMessage mirrors spec §6's TemplatePointsMessage.
type TemplatePointsMessage struct {
	XLabel, YLabel    string
	TemplatePoints    []template.Point
	HilbertDimensions [][]uint32
	XSExact, YSExact  bigrade.Grades
	XReverse, YReverse bool
}

// ArrangementMessage mirrors spec §6's ArrangementMessage: the DCEL
// arenas plus, per face, the barcode template produced once path
// planning visits it (arrangement.Face itself carries no
// persistence-stage data, so it travels alongside here rather than
// being bolted onto that struct).
type ArrangementMessage struct {
	Vertices      []arrangement.Vertex
	HalfEdges     []arrangement.HalfEdge
	Faces         []arrangement.Face
	Lines         []arrangement.Line
	VerticalOrder []int
	TopHalfEdge   map[int]int
	LeftOrder     []int
	FaceBars      map[int][]updater.Bar
}
