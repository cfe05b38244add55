package port

import "context"

// TrendingCache stores a recently computed trending list so repeated reads
// do not re-aggregate full metric histories. A miss is not an error: Get
// reports it through the second return value. The ranker treats the cache
// as best effort and falls through on any failure.
type TrendingCache interface {
	Get(ctx context.Context) ([]TrendingAd, bool, error)
	Set(ctx context.Context, ads []TrendingAd) error
}
