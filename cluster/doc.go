// Package cluster groups items by chaining each one to its nearest neighbour.
//
// The package knows nothing about glyphs or words. A [Config] injects every
// piece of policy: how far apart two anchor points are, how far is too far for
// a given pair, which items may start a search, and which pairs may never be
// linked.
//
//	groups, err := cluster.NearestNeighbours(items, cluster.Config[T]{
//	    Distance:       model.ManhattanDistance,
//	    MaxDistance:    func(a, b T) float64 { return 2.5 },
//	    TrailingAnchor: func(t T) model.Point { return t.End },
//	    LeadingAnchor:  func(t T) model.Point { return t.Start },
//	})
//
// # Algorithm
//
// Every pivot searches the whole candidate set for the candidate whose leading
// anchor is closest to the pivot's trailing anchor, within the pair's maximum
// distance. Exact ties go to the candidate that comes first in the input. The
// resulting successor relation ([Links]) is turned into ordered groups by
// following it from every item that has no predecessor ([Chains]).
//
// # Concurrency
//
// Searches are independent and run on up to Config.Parallelism goroutines.
// Each goroutine writes only its own slots of the successor array; groups are
// built afterwards on the calling goroutine in input order, so the output
// does not depend on scheduling.
package cluster
