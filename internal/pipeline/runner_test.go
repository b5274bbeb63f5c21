package pipeline

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/reviewpulse/config"
	"github.com/spacesedan/reviewpulse/internal/aspects"
	"github.com/spacesedan/reviewpulse/internal/models"
)

func TestRunnerProcessesConcurrentJobs(t *testing.T) {
	runner := NewRunner(New(config.Default()), 4)
	defer runner.Close()

	const jobs = 16
	results := make([]Result, jobs)

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out := runner.Submit(context.Background(), Job{
				Reviews: []models.Review{
					{ID: fmt.Sprintf("%d", i), Text: "Fast shipping, loved it!"},
				},
				Industry: aspects.IndustryGeneral,
			})
			results[i] = <-out
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		require.NoError(t, res.Err, "job %d", i)
		require.NotNil(t, res.Report, "job %d", i)
		assert.Equal(t, 1, res.Report.ReviewCount)
	}
}

func TestRunnerPropagatesConfigErrors(t *testing.T) {
	runner := NewRunner(New(config.Default()), 1)
	defer runner.Close()

	res := <-runner.Submit(context.Background(), Job{
		Reviews:  []models.Review{{ID: "1", Text: "fine"}},
		Industry: aspects.Industry("automotive"),
	})
	assert.Error(t, res.Err)
	assert.Nil(t, res.Report)
}

func TestRunnerHonorsCanceledContext(t *testing.T) {
	runner := NewRunner(New(config.Default()), 1)
	defer runner.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := <-runner.Submit(ctx, Job{
		Reviews:  []models.Review{{ID: "1", Text: "fine"}},
		Industry: aspects.IndustryGeneral,
	})
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Nil(t, res.Report)
}

func TestRunnerCloseIsIdempotent(t *testing.T) {
	runner := NewRunner(New(config.Default()), 2)
	runner.Close()
	runner.Close()
}
