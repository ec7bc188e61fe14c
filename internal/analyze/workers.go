package analyze

import (
	"context"
	"log/slog"
	"sync"

	"igpulse/models"
)

// job is one post awaiting annotation. The index ties the result back to
// the post's position in the batch.
type job struct {
	index int
	post  models.PostRecord
}

type result struct {
	index      int
	annotation models.Annotation
}

// AnnotateBatch annotates posts concurrently and returns them paired with
// their annotations in the original batch order. Order matters: the
// aggregation engine breaks ties by first-seen position, so results are
// reassembled by index rather than arrival.
func AnnotateBatch(ctx context.Context, logger *slog.Logger, annotator *Annotator, posts []models.PostRecord, workerCount int) []models.AnnotatedPost {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(posts) && len(posts) > 0 {
		workerCount = len(posts)
	}

	var wg sync.WaitGroup
	jobs := make(chan job, len(posts))
	results := make(chan result, len(posts))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, annotator, &wg, jobs, results)
	}

	for i, post := range posts {
		jobs <- job{index: i, post: post}
	}
	close(jobs)

	wg.Wait()
	close(results)

	annotated := make([]models.AnnotatedPost, len(posts))
	for i, post := range posts {
		annotated[i].Post = post
	}
	for r := range results {
		annotated[r.index].Annotation = r.annotation
	}
	return annotated
}

func worker(ctx context.Context, id int, logger *slog.Logger, annotator *Annotator, wg *sync.WaitGroup, jobs <-chan job, results chan<- result) {
	defer wg.Done()
	for j := range jobs {
		logger.Debug("annotating post", "worker", id, "post_id", j.post.ID)
		results <- result{
			index:      j.index,
			annotation: annotator.Annotate(ctx, j.post),
		}
	}
}
