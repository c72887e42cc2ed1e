package cli

import (
	"context"
	"fmt"
	"strings"
)

var dayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// List fetches the week board and prints it grouped by day. The fetched
// order is cached so later commands can refer to tasks by number.
func (a *App) List(ctx context.Context) error {
	tasks, err := a.client.ListTasks(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	a.board = tasks

	if len(tasks) == 0 {
		printlnFn("The board is empty.")
		return nil
	}

	var b strings.Builder
	currentDay := -1
	for i, task := range tasks {
		if task.Day != currentDay {
			currentDay = task.Day
			fmt.Fprintf(&b, "%s:\n", dayName(currentDay))
		}
		fmt.Fprintf(&b, "  %2d. %s", i+1, task.Title)
		if task.Description != "" {
			fmt.Fprintf(&b, " - %s", task.Description)
		}
		b.WriteString("\n")
	}
	printlnFn(strings.TrimRight(b.String(), "\n"))
	return nil
}

func dayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return fmt.Sprintf("Day %d", day)
	}
	return dayNames[day]
}
