package cli

import (
	"context"
	"os"
	"strconv"
)

func (a *App) Add(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	description, err := GetSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	dayText, err := GetSimpleText(a.reader, "Enter day (0=Monday .. 6=Sunday)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	day, err := strconv.Atoi(dayText)
	if err != nil {
		printlnFn("Day must be a number between 0 and 6.")
		return err
	}

	task, err := a.client.CreateTask(ctx, title, description, day)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Added to " + dayName(task.Day) + ".")
	return nil
}
