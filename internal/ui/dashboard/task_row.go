package dashboard

import (
	"fmt"

	"pomotask/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type taskRow struct {
	widget.BaseWidget
	check  *widget.Check
	text   *widget.Label
	meta   *widget.Label
	remove *widget.Button
}

func newTaskRow() *taskRow {
	row := &taskRow{
		check:  widget.NewCheck("", nil),
		text:   widget.NewLabel(""),
		meta:   widget.NewLabel(""),
		remove: widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
	}
	row.text.Truncation = fyne.TextTruncateEllipsis
	row.meta.TextStyle = fyne.TextStyle{Italic: true}
	row.ExtendBaseWidget(row)
	return row
}

func (row *taskRow) CreateRenderer() fyne.WidgetRenderer {
	right := container.NewHBox(row.meta, row.remove)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, row.check, right, row.text))
}

// bind points the row at task. OnChanged is detached while the check is
// synced so rendering never dispatches a toggle.
func (row *taskRow) bind(task model.Task, intents Intents) {
	id := task.ID

	row.check.OnChanged = nil
	row.check.SetChecked(task.Completed)
	row.check.OnChanged = func(bool) { intents.ToggleTask(id) }

	row.text.TextStyle = fyne.TextStyle{}
	if task.Completed {
		row.text.TextStyle = fyne.TextStyle{Italic: true}
	}
	row.text.SetText(task.Text)
	row.meta.SetText(fmt.Sprintf("%s · %s", task.Category, priorityMark(task.Priority)))
	row.remove.OnTapped = func() { intents.RemoveTask(id) }
}

func priorityMark(priority model.Priority) string {
	switch priority {
	case model.PriorityHigh:
		return "!!!"
	case model.PriorityMedium:
		return "!!"
	default:
		return "!"
	}
}
