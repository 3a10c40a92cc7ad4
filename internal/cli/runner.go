package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"taskline/internal/model"
	"taskline/internal/task"
	"taskline/internal/tui"
	"taskline/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by pending/done
}

// Run dispatches subcommands against store and returns an exit code
// (0 ok, 1 error, 2 usage).
func Run(store *task.Store, args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(store, opt)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: taskline add <text...>")
			return 2
		}
		return doAdd(store, strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			ui.Fail("usage: taskline done <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("done: not a number: " + a[0])
			return 2
		}
		return doToggle(store, n)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: taskline rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(store, n)

	case "clear":
		return doClear(store)

	case "ui":
		if err := tui.Run(store); err != nil {
			ui.Fail("ui: " + err.Error())
			return 1
		}
		return 0
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`taskline - a tiny task list

Usage:
  taskline <subcommand> [args]

Subcommands:
  add <text...>      Add a new task (text can be multiple words)
  ls                 List tasks
  done <index>       Toggle completion for task at 1-based index
  rm <index>         Remove task at 1-based index
  clear              Remove every completed task
  ui                 Interactive list
  help               Show this message

Examples:
  taskline add "Buy milk"
  taskline ls
  taskline done 2
  taskline rm 3
`)
}

// -------------- subcommand impls ----------------

func doList(store *task.Store, opt Options) int {
	tasks := store.Tasks()
	c := store.Counts()

	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.TitleStyle.Render("Tasks"),
		ui.SuccessStyle.Render("✔"), c.Completed,
		ui.PendingStyle.Render("•"), c.Pending,
		ui.AccentStyle.Render("Total"), c.Total,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.MutedStyle.Render(ui.ProgressBar(c.Completed, c.Total, 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(tasks)...)
	} else {
		lines = append(lines, flatLines(tasks)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.MutedStyle.Render(`Tip: add with `+"`taskline add \"Buy milk\"`"))
	ui.Panel(lines)
	return 0
}

func doAdd(store *task.Store, text string) int {
	if _, ok := store.Add(text); !ok {
		ui.Fail("add: empty text")
		return 2
	}
	ui.OK("added")
	return 0
}

func doToggle(store *task.Store, userIndex int) int {
	id, code := resolveIndex(store, userIndex)
	if code != 0 {
		return code
	}
	if _, ok := store.Toggle(id); !ok {
		ui.Fail("done: task vanished")
		return 1
	}
	ui.OK("toggled")
	return 0
}

func doRemove(store *task.Store, userIndex int) int {
	id, code := resolveIndex(store, userIndex)
	if code != 0 {
		return code
	}
	if !store.Delete(id) {
		ui.Fail("rm: task vanished")
		return 1
	}
	ui.OK("removed")
	return 0
}

func doClear(store *task.Store) int {
	n := store.ClearCompleted()
	if n == 0 {
		fmt.Println(ui.MutedStyle.Render("nothing to clear"))
		return 0
	}
	ui.OK(fmt.Sprintf("cleared %d", n))
	return 0
}

// resolveIndex maps a 1-based list position to a task id.
func resolveIndex(store *task.Store, userIndex int) (string, int) {
	tasks := store.Tasks()
	if userIndex < 1 || userIndex > len(tasks) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(tasks), userIndex))
		fmt.Fprintln(os.Stderr, ui.MutedStyle.Render("Hint: run `taskline ls` to see valid indexes"))
		return "", 2
	}
	return tasks[userIndex-1].ID, 0
}

// -------------- rendering helpers --------------

func flatLines(tasks []model.Task) []string {
	if len(tasks) == 0 {
		return []string{ui.MutedStyle.Render("no tasks")}
	}
	out := make([]string, 0, len(tasks))
	for i, t := range tasks {
		idx := fmt.Sprintf("%2d.", i+1)
		box := ui.BoxUnchecked
		style := ui.MutedStyle
		if t.Completed {
			box, style = ui.BoxChecked, ui.SuccessStyle
		}
		text := t.Text
		if len(text) > 80 {
			text = text[:77] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.MutedStyle.Render(idx), style.Render(box), text))
	}
	return out
}

func groupLines(tasks []model.Task) []string {
	var pend, done []model.Task
	for _, t := range tasks {
		if t.Completed {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	var lines []string
	lines = append(lines, ui.AccentStyle.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, ui.MutedStyle.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.AccentStyle.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, ui.MutedStyle.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
