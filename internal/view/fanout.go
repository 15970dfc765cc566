package view

import (
	"context"
	"fmt"
	"sync"
)

// Task is one named fetch in a dashboard fan-out. Run should fetch and
// apply its own result; on error the task's slot simply keeps its zero
// value, which is the documented degraded default.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// FetchAll runs every task concurrently and waits for all of them.
// Tasks are independent: there is no ordering guarantee among them and
// no joint atomicity, each one's result lands as it arrives. The
// returned slice holds one wrapped error per failed task, in task
// order, and is empty when everything succeeded.
func FetchAll(ctx context.Context, tasks []Task) []error {
	results := make([]error, len(tasks))

	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t Task) {
			defer wg.Done()
			if err := t.Run(ctx); err != nil {
				results[i] = fmt.Errorf("%s: %w", t.Name, err)
			}
		}(i, t)
	}
	wg.Wait()

	errs := make([]error, 0, len(tasks))
	for _, err := range results {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
