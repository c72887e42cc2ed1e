package cli

import (
	"context"
	"sort"
	"strconv"

	"github.com/planitapp/planit/internal/client/api"
)

// Move relocates a task to another day and position. The server applies
// placements exactly as submitted, so the batch renumbers both affected
// buckets to keep them gap-free.
func (a *App) Move(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		printlnFn("Usage: move <n> <day> [pos]")
		return errBadSelection
	}

	idx, err := a.taskByNumber(args[0])
	if err != nil {
		return err
	}

	day, err := strconv.Atoi(args[1])
	if err != nil || day < 0 || day > 6 {
		printlnFn("Day must be a number between 0 and 6.")
		return errBadSelection
	}

	position := -1 // append to the end of the target day
	if len(args) == 3 {
		position, err = strconv.Atoi(args[2])
		if err != nil || position < 0 {
			printlnFn("Position must be a non-negative number.")
			return errBadSelection
		}
	}

	task := a.board[idx]
	batch := buildMoveBatch(a.board, task.ID, day, position)

	if err := a.client.ReorderTasks(ctx, batch); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Moved '" + task.Title + "' to " + dayName(day) + ".")
	return a.List(ctx)
}

// buildMoveBatch computes the reorder batch for moving one task to the given
// day and position. Both the source and target buckets come out renumbered
// 0..n-1. A negative position appends to the end of the target bucket.
func buildMoveBatch(board []api.Task, taskID string, day, position int) []api.ReorderItem {
	var moved *api.Task
	source := make([]api.Task, 0)
	target := make([]api.Task, 0)

	for _, task := range board {
		if task.ID == taskID {
			t := task
			moved = &t
			continue
		}
		if task.Day == day {
			target = append(target, task)
		}
	}
	if moved == nil {
		return nil
	}

	if moved.Day != day {
		for _, task := range board {
			if task.ID != taskID && task.Day == moved.Day {
				source = append(source, task)
			}
		}
	}

	sort.SliceStable(source, func(i, j int) bool { return source[i].Position < source[j].Position })
	sort.SliceStable(target, func(i, j int) bool { return target[i].Position < target[j].Position })

	if position < 0 || position > len(target) {
		position = len(target)
	}
	target = append(target[:position], append([]api.Task{*moved}, target[position:]...)...)

	batch := make([]api.ReorderItem, 0, len(source)+len(target))
	for i := range source {
		batch = append(batch, reorderItem(source[i].ID, source[i].Day, i))
	}
	for i := range target {
		batch = append(batch, reorderItem(target[i].ID, day, i))
	}
	return batch
}

func reorderItem(id string, day, position int) api.ReorderItem {
	d, p := day, position
	return api.ReorderItem{ID: id, Day: &d, Position: &p}
}
