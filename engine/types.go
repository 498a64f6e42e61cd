package engine

import (
	"github.com/tildedata/mphom/arrangement"
	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/persist"
	"github.com/tildedata/mphom/template"
	"github.com/tildedata/mphom/updater"
)

// InputParameters is persist.InputParameters re-exported: persist is the
// canonical definition (it must not import engine, since engine calls
// persist.Save/Load on its own results), engine just gives callers a
// same-named type at this package's door.
type InputParameters = persist.InputParameters

// Option is a functional option for InputParameters, in the style of
// dijkstra.Option.
type Option func(*InputParameters)

// WithHomDegree sets the homology degree to compute.
func WithHomDegree(degree uint32) Option {
	return func(p *InputParameters) { p.HomDegree = degree }
}

// WithBins sets the x/y grid resolution used for display-side binning of
// the exact grade values (spec §6's XBins/YBins).
func WithBins(xBins, yBins uint32) Option {
	return func(p *InputParameters) {
		p.XBins = xBins
		p.YBins = yBins
	}
}

// WithReverse flips the x and/or y axis's growth direction.
func WithReverse(xReverse, yReverse bool) Option {
	return func(p *InputParameters) {
		p.XReverse = xReverse
		p.YReverse = yReverse
	}
}

// WithVerbosity sets the progress-reporting verbosity level.
func WithVerbosity(v uint8) Option {
	return func(p *InputParameters) { p.Verbosity = v }
}

// DefaultInputParameters returns the zero-value defaults: homology
// degree 0, no binning, no axis reversal, silent.
func DefaultInputParameters() InputParameters {
	return InputParameters{}
}

// NewInputParameters applies opts over DefaultInputParameters.
func NewInputParameters(opts ...Option) InputParameters {
	p := DefaultInputParameters()
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Progress reports computation progress without blocking the caller
// (spec §5/§6): SetMax announces the unit count for the current stage,
// AdvanceStage moves to the next named stage, Progress reports units
// completed so far within the current stage. Implementations must not
// return an error or a value the computation waits on.
type Progress interface {
	SetMax(max uint32)
	AdvanceStage()
	Progress(done uint32)
}

type noopProgress struct{}

func (noopProgress) SetMax(uint32)    {}
func (noopProgress) AdvanceStage()    {}
func (noopProgress) Progress(uint32) {}

// NoopProgress returns a Progress that discards every report, for
// callers that don't need progress feedback.
func NoopProgress() Progress { return noopProgress{} }

// ComputationResult bundles everything Compute produces: the template
// points and the arrangement built from them, each face's barcode
// template keyed by face ID, and the grade-axis metadata needed to
// rescale a barcode template into numeric bar endpoints downstream (via
// the barcode package).
type ComputationResult struct {
	TemplatePoints    []template.Point
	HilbertDimensions [][]uint32
	XSExact, YSExact  bigrade.Grades
	XLabel, YLabel    string
	XReverse, YReverse bool

	Arrangement *arrangement.DCEL
	FaceBars    map[int][]updater.Bar
}
