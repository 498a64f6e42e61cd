package engine

import "github.com/tildedata/mphom/barcode"

// QueryBarcodes rescales every face's barcode template in result against
// the query line given by thetaDeg/offset (spec §4.5), returning the
// numeric barcode for each face keyed by face ID.
func QueryBarcodes(result *ComputationResult, thetaDeg, offset float64) (map[int][]barcode.Bar, error) {
	out := make(map[int][]barcode.Bar, len(result.FaceBars))
	for face, bars := range result.FaceBars {
		qb, err := barcode.Query(bars, result.TemplatePoints, result.XSExact, result.YSExact, thetaDeg, offset)
		if err != nil {
			return nil, err
		}
		out[face] = qb
	}

	return out, nil
}
