package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	jobs := make([]int, 100)
	for i := range jobs {
		jobs[i] = i
	}

	results := Map(4, jobs, func(job int) int { return job * job })
	sort.Ints(results)

	assert.Len(t, results, len(jobs))
	for i, r := range results {
		assert.Equal(t, i*i, r)
	}
}

func TestMap_NoJobs(t *testing.T) {
	results := Map(4, []string{}, func(job string) int { return len(job) })
	assert.Empty(t, results)
}

func TestWorkerPool(t *testing.T) {
	wp := NewWorkerPool[string, int](0, 3)
	wp.Start(func(job string) int { return len(job) })
	wp.AddJob("a")
	wp.AddJob("bb")
	wp.AddJob("ccc")
	wp.Close()
	wp.Wait()

	sum := 0
	for r := range wp.CollectResults() {
		sum += r
	}
	assert.Equal(t, 6, sum)
}
