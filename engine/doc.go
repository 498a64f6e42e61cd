// Package engine orchestrates the full two-parameter persistence
// computation end to end: minimal presentation, template points, line
// arrangement, path planning, and the vineyard sweep that fills in every
// face's barcode template, behind a single functional-options entry
// point in the style of dijkstra.Dijkstra/Options.
package engine
