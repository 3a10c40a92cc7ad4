package cli

import (
	"testing"

	"taskline/internal/kv"
	"taskline/internal/task"
)

func newRunnerStore(t *testing.T) *task.Store {
	t.Helper()
	return task.New(kv.NewMemStore(), task.WithKey("cli.test"))
}

func TestRun_NoArgsIsUsageError(t *testing.T) {
	s := newRunnerStore(t)
	if code := Run(s, nil, Options{}); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}

func TestRun_UnknownSubcommand(t *testing.T) {
	s := newRunnerStore(t)
	if code := Run(s, []string{"frobnicate"}, Options{}); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}

func TestRun_AddAndList(t *testing.T) {
	s := newRunnerStore(t)
	if code := Run(s, []string{"add", "Buy", "milk"}, Options{}); code != 0 {
		t.Fatalf("add exit = %d", code)
	}
	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "Buy milk" {
		t.Fatalf("tasks = %+v", tasks)
	}
	if code := Run(s, []string{"ls"}, Options{}); code != 0 {
		t.Fatalf("ls exit = %d", code)
	}
	if code := Run(s, []string{"ls"}, Options{Group: true}); code != 0 {
		t.Fatalf("grouped ls exit = %d", code)
	}
}

func TestRun_AddRejectsBlank(t *testing.T) {
	s := newRunnerStore(t)
	if code := Run(s, []string{"add", "   "}, Options{}); code != 2 {
		t.Fatalf("blank add exit = %d, want 2", code)
	}
	if len(s.Tasks()) != 0 {
		t.Fatalf("blank add mutated the store")
	}
}

func TestRun_DoneByIndex(t *testing.T) {
	s := newRunnerStore(t)
	Run(s, []string{"add", "first"}, Options{})
	Run(s, []string{"add", "second"}, Options{})

	if code := Run(s, []string{"done", "2"}, Options{}); code != 0 {
		t.Fatalf("done exit = %d", code)
	}
	tasks := s.Tasks()
	if tasks[0].Completed || !tasks[1].Completed {
		t.Fatalf("wrong task toggled: %+v", tasks)
	}

	if code := Run(s, []string{"done", "9"}, Options{}); code != 2 {
		t.Fatalf("out-of-range done exit = %d, want 2", code)
	}
	if code := Run(s, []string{"done", "two"}, Options{}); code != 2 {
		t.Fatalf("non-numeric done exit = %d, want 2", code)
	}
}

func TestRun_RemoveByIndex(t *testing.T) {
	s := newRunnerStore(t)
	Run(s, []string{"add", "first"}, Options{})
	Run(s, []string{"add", "second"}, Options{})

	if code := Run(s, []string{"rm", "1"}, Options{}); code != 0 {
		t.Fatalf("rm exit = %d", code)
	}
	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "second" {
		t.Fatalf("tasks after rm = %+v", tasks)
	}

	if code := Run(s, []string{"rm", "0"}, Options{}); code != 2 {
		t.Fatalf("out-of-range rm exit = %d, want 2", code)
	}
}

func TestRun_Clear(t *testing.T) {
	s := newRunnerStore(t)
	Run(s, []string{"add", "a"}, Options{})
	Run(s, []string{"add", "b"}, Options{})
	Run(s, []string{"done", "1"}, Options{})

	if code := Run(s, []string{"clear"}, Options{}); code != 0 {
		t.Fatalf("clear exit = %d", code)
	}
	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "b" {
		t.Fatalf("tasks after clear = %+v", tasks)
	}

	// Clearing again is a no-op, still success.
	if code := Run(s, []string{"clear"}, Options{}); code != 0 {
		t.Fatalf("second clear exit = %d", code)
	}
}
