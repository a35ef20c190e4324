package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const targetLayout = "2006-01-02 15:04:05"

// ParseTarget reads a target typed by the user. Besides an absolute
// "2006-01-02 15:04:05" (seconds optional) it accepts a duration such as
// "+1h30m", counted from now.
func ParseTarget(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("target is empty")
	}
	if rest, ok := strings.CutPrefix(s, "+"); ok {
		d, err := time.ParseDuration(rest)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid duration %q: %w", rest, err)
		}
		return now.Add(d), nil
	}
	for _, layout := range []string{targetLayout, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid target %q, want %q or +duration", s, targetLayout)
}

// showTargetDialog asks for a new target and passes it to onSubmit.
func showTargetDialog(w fyne.Window, current time.Time, overtime bool, onSubmit func(time.Time, bool)) {
	targetEntry := widget.NewEntry()
	targetEntry.SetText(current.Format(targetLayout))
	targetEntry.SetPlaceHolder(targetLayout + " or +1h30m")
	targetEntry.Validator = func(s string) error {
		_, err := ParseTarget(s, time.Now())
		return err
	}

	overtimeCheck := widget.NewCheck("Count up past the target", nil)
	overtimeCheck.SetChecked(overtime)

	items := []*widget.FormItem{
		{Text: "Target", Widget: targetEntry},
		{Text: "Overtime", Widget: overtimeCheck},
	}
	dialog.ShowForm("Set target", "Start", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		target, err := ParseTarget(targetEntry.Text, time.Now())
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		onSubmit(target, overtimeCheck.Checked)
	}, w)
}
