package cli

import (
	"context"
	"errors"
	"strconv"
)

var errBadSelection = errors.New("bad selection")

// taskByNumber resolves a 1-based board number from the last List call.
func (a *App) taskByNumber(arg string) (int, error) {
	if len(a.board) == 0 {
		printlnFn("Run 'list' first.")
		return 0, errBadSelection
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.board) {
		printlnFn("Task number must be between 1 and " + strconv.Itoa(len(a.board)) + ".")
		return 0, errBadSelection
	}
	return n - 1, nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: del <n>")
		return errBadSelection
	}

	idx, err := a.taskByNumber(args[0])
	if err != nil {
		return err
	}

	task := a.board[idx]
	if err := a.client.DeleteTask(ctx, task.ID); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Deleted: " + task.Title)
	return a.List(ctx)
}
