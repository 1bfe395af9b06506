// Package matching matches binary descriptors between two images by exhaustive Hamming
// distance search.
package matching

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/latch/descriptor"
	"go.viam.com/latch/keypoints"
	"go.viam.com/latch/logging"
	"go.viam.com/latch/utils"
)

// NoMatch is the index reported by MatchOneWay when there is nothing to match against.
const NoMatch = -1

// MatchingConfig contains the parameters for matching descriptors.
//
//nolint:revive
type MatchingConfig struct {
	DoCrossCheck bool `json:"do_cross_check"`
	MaxDist      int  `json:"max_dist"`
}

// DescriptorMatch contains the index of a match in the first and second set of descriptors.
type DescriptorMatch struct {
	Idx1 int
	Idx2 int
}

// DescriptorMatches contains the descriptors and their matches.
type DescriptorMatches struct {
	Indices      []DescriptorMatch
	Distances    []int
	Descriptors1 descriptor.Descriptors
	Descriptors2 descriptor.Descriptors
}

// nearest returns the index of the descriptor of candidates closest to d and its distance. Ties
// keep the lowest index.
func nearest(d descriptor.Descriptor, candidates descriptor.Descriptors) (int, int) {
	best, bestDist := NoMatch, descriptor.BitSize+1
	for j := range candidates {
		if dist := descriptor.Distance(d, candidates[j]); dist < bestDist {
			best, bestDist = j, dist
		}
	}
	return best, bestDist
}

// MatchOneWay returns, for every descriptor of a, the index of its nearest neighbor in b. When
// several descriptors of b are equally close the lowest index wins. If b is empty every entry
// is NoMatch.
func MatchOneWay(a, b descriptor.Descriptors) []int {
	matches := make([]int, len(a))
	for i := range a {
		matches[i], _ = nearest(a[i], b)
	}
	return matches
}

// MatchOneWayParallel is MatchOneWay with the descriptors of a split across
// utils.ParallelFactor goroutines.
func MatchOneWayParallel(ctx context.Context, a, b descriptor.Descriptors) ([]int, error) {
	matches := make([]int, len(a))
	chunk := (len(a) + utils.ParallelFactor - 1) / utils.ParallelFactor
	if chunk == 0 {
		return matches, ctx.Err()
	}
	g, ctx := errgroup.WithContext(ctx)
	for from := 0; from < len(a); from += chunk {
		from, to := from, from+chunk
		if to > len(a) {
			to = len(a)
		}
		g.Go(func() error {
			for i := from; i < to; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				matches[i], _ = nearest(a[i], b)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matches, nil
}

// crossCheck keeps the pairs (i, forward[i]) for which backward[forward[i]] == i.
func crossCheck(forward, backward []int) []DescriptorMatch {
	pairs := make([]DescriptorMatch, 0, len(forward))
	for i, j := range forward {
		if j != NoMatch && backward[j] == i {
			pairs = append(pairs, DescriptorMatch{Idx1: i, Idx2: j})
		}
	}
	return pairs
}

// MatchPairs returns the mutual nearest neighbors of a and b: pairs (i, j) such that b[j] is the
// nearest neighbor of a[i] and a[i] is the nearest neighbor of b[j]. Pairs are ordered by i.
func MatchPairs(a, b descriptor.Descriptors) []DescriptorMatch {
	return crossCheck(MatchOneWay(a, b), MatchOneWay(b, a))
}

// MatchPairsParallel is MatchPairs with the forward and backward passes run concurrently, each
// through MatchOneWayParallel.
func MatchPairsParallel(ctx context.Context, a, b descriptor.Descriptors) ([]DescriptorMatch, error) {
	var forward, backward []int
	_, err := utils.RunInParallel(ctx, []utils.SimpleFunc{
		func(ctx context.Context) error {
			var err error
			forward, err = MatchOneWayParallel(ctx, a, b)
			return err
		},
		func(ctx context.Context) error {
			var err error
			backward, err = MatchOneWayParallel(ctx, b, a)
			return err
		},
	})
	if err != nil {
		return nil, err
	}
	return crossCheck(forward, backward), nil
}

// MatchDescriptors takes 2 sets of descriptors and performs matching. Each descriptor of desc1
// is paired with its nearest neighbor in desc2; with DoCrossCheck only mutual nearest neighbors
// are kept, and a positive MaxDist drops pairs whose distance is not below it. Matches are sorted
// by increasing distance, pairs at the same distance keeping the order of desc1.
func MatchDescriptors(desc1, desc2 descriptor.Descriptors, cfg *MatchingConfig, logger logging.Logger,
) *DescriptorMatches {
	if cfg == nil {
		cfg = &MatchingConfig{DoCrossCheck: true}
	}
	start := time.Now()
	var candidates []DescriptorMatch
	if cfg.DoCrossCheck {
		candidates = MatchPairs(desc1, desc2)
	} else {
		candidates = oneWayPairs(MatchOneWay(desc1, desc2))
	}
	matches := filterAndSort(desc1, desc2, candidates, cfg.MaxDist)
	logMatches(logger, matches, len(candidates), start)
	return matches
}

// MatchDescriptorsParallel is MatchDescriptors with the nearest neighbor searches spread over
// utils.ParallelFactor workers. It returns the same matches as MatchDescriptors, or an error if
// ctx is done first.
func MatchDescriptorsParallel(ctx context.Context, desc1, desc2 descriptor.Descriptors, cfg *MatchingConfig,
	logger logging.Logger,
) (*DescriptorMatches, error) {
	if cfg == nil {
		cfg = &MatchingConfig{DoCrossCheck: true}
	}
	start := time.Now()
	var candidates []DescriptorMatch
	if cfg.DoCrossCheck {
		pairs, err := MatchPairsParallel(ctx, desc1, desc2)
		if err != nil {
			return nil, err
		}
		candidates = pairs
	} else {
		forward, err := MatchOneWayParallel(ctx, desc1, desc2)
		if err != nil {
			return nil, err
		}
		candidates = oneWayPairs(forward)
	}
	matches := filterAndSort(desc1, desc2, candidates, cfg.MaxDist)
	logMatches(logger, matches, len(candidates), start)
	return matches, nil
}

func oneWayPairs(forward []int) []DescriptorMatch {
	pairs := make([]DescriptorMatch, 0, len(forward))
	for i, j := range forward {
		if j != NoMatch {
			pairs = append(pairs, DescriptorMatch{Idx1: i, Idx2: j})
		}
	}
	return pairs
}

// filterAndSort drops candidates at or above a positive maxDist and sorts the rest by distance.
func filterAndSort(desc1, desc2 descriptor.Descriptors, candidates []DescriptorMatch, maxDist int,
) *DescriptorMatches {
	kept := make([]DescriptorMatch, 0, len(candidates))
	dists := make([]float64, 0, len(candidates))
	for _, m := range candidates {
		d := descriptor.Distance(desc1[m.Idx1], desc2[m.Idx2])
		if maxDist > 0 && d >= maxDist {
			continue
		}
		kept = append(kept, m)
		dists = append(dists, float64(d))
	}

	// dists is sorted in place
	sortedIndices := make([]int, len(kept))
	floats.ArgsortStable(dists, sortedIndices)
	matches := make([]DescriptorMatch, len(kept))
	distances := make([]int, len(kept))
	for i, idx := range sortedIndices {
		matches[i] = kept[idx]
		distances[i] = int(dists[i])
	}
	return &DescriptorMatches{
		Indices:      matches,
		Distances:    distances,
		Descriptors1: desc1,
		Descriptors2: desc2,
	}
}

func logMatches(logger logging.Logger, matches *DescriptorMatches, candidates int, start time.Time) {
	if logger == nil {
		return
	}
	logger.Debugw("matched descriptors",
		"n1", len(matches.Descriptors1), "n2", len(matches.Descriptors2), "candidates", candidates,
		"matches", len(matches.Indices), "elapsed", time.Since(start))
}

// GetMatchingKeyPoints takes the matches and the keypoints and returns the corresponding keypoints that are matched.
func GetMatchingKeyPoints(matches *DescriptorMatches, kps1, kps2 keypoints.KeyPoints,
) (keypoints.KeyPoints, keypoints.KeyPoints, error) {
	matchedKps1 := make(keypoints.KeyPoints, len(matches.Indices))
	matchedKps2 := make(keypoints.KeyPoints, len(matches.Indices))
	for i, match := range matches.Indices {
		if match.Idx1 < 0 || match.Idx1 >= len(kps1) {
			return nil, nil, utils.NewIndexOutOfRangeError("first keypoint set", match.Idx1, len(kps1))
		}
		if match.Idx2 < 0 || match.Idx2 >= len(kps2) {
			return nil, nil, utils.NewIndexOutOfRangeError("second keypoint set", match.Idx2, len(kps2))
		}
		matchedKps1[i] = kps1[match.Idx1]
		matchedKps2[i] = kps2[match.Idx2]
	}
	return matchedKps1, matchedKps2, nil
}
