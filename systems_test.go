package forgecs_test

import (
	"testing"

	"github.com/kaelstrom/forgecs"
)

type recordingSystem struct {
	name   string
	trace  *[]string
	stage  forgecs.Stage
	initFn func(*forgecs.App) error
}

func (s *recordingSystem) Name() string { return s.name }

func (s *recordingSystem) Init(app *forgecs.App) error {
	if s.initFn != nil {
		return s.initFn(app)
	}
	return nil
}

func (s *recordingSystem) Update(app *forgecs.App, dt float64) error {
	*s.trace = append(*s.trace, s.name)
	return nil
}

func newApp(t *testing.T) *forgecs.App {
	t.Helper()
	return forgecs.NewApp(forgecs.AppConfig{})
}

func TestSystemStageOrdering(t *testing.T) {
	app := newApp(t)
	var trace []string

	mustAddSystem(t, app, forgecs.Render, &recordingSystem{name: "render", trace: &trace})
	mustAddSystem(t, app, forgecs.PreUpdate, &recordingSystem{name: "pre", trace: &trace})
	mustAddSystem(t, app, forgecs.Update, &recordingSystem{name: "update", trace: &trace})
	mustAddSystem(t, app, forgecs.PostUpdate, &recordingSystem{name: "post", trace: &trace})

	if err := app.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := app.Update(0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	want := []string{"pre", "update", "post", "render"}
	if len(trace) != len(want) {
		t.Fatalf("expected trace %v, got %v", want, trace)
	}
	for i, name := range want {
		if trace[i] != name {
			t.Fatalf("expected stage order %v, got %v", want, trace)
		}
	}
}

func TestSystemInitStageOrdering(t *testing.T) {
	app := newApp(t)
	var trace []string
	record := func(name string) func(*forgecs.App) error {
		return func(*forgecs.App) error {
			trace = append(trace, name)
			return nil
		}
	}

	mustAddSystem(t, app, forgecs.Render, &recordingSystem{name: "render", trace: &[]string{}, initFn: record("render")})
	mustAddSystem(t, app, forgecs.PreUpdate, &recordingSystem{name: "pre", trace: &[]string{}, initFn: record("pre")})
	mustAddSystem(t, app, forgecs.Update, &recordingSystem{name: "update", trace: &[]string{}, initFn: record("update")})
	mustAddSystem(t, app, forgecs.PostUpdate, &recordingSystem{name: "post", trace: &[]string{}, initFn: record("post")})

	if err := app.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []string{"pre", "update", "post", "render"}
	if len(trace) != len(want) {
		t.Fatalf("expected init trace %v, got %v", want, trace)
	}
	for i, name := range want {
		if trace[i] != name {
			t.Fatalf("expected Init to run in stage order %v, got %v", want, trace)
		}
	}
}

func TestSystemDuplicateNameRejected(t *testing.T) {
	app := newApp(t)
	var trace []string
	mustAddSystem(t, app, forgecs.Update, &recordingSystem{name: "dup", trace: &trace})

	if err := app.AddSystem(forgecs.Update, &recordingSystem{name: "dup", trace: &trace}); err == nil {
		t.Fatal("expected duplicate system name to be rejected")
	}
}

func TestSystemSetEnabledSkipsUpdate(t *testing.T) {
	app := newApp(t)
	var trace []string
	mustAddSystem(t, app, forgecs.Update, &recordingSystem{name: "toggle", trace: &trace})

	if err := app.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !app.Systems.SetEnabled("toggle", false) {
		t.Fatal("expected SetEnabled to find the registered system")
	}
	if err := app.Update(0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(trace) != 0 {
		t.Fatalf("expected disabled system to be skipped, got trace %v", trace)
	}
}

func mustAddSystem(t *testing.T, app *forgecs.App, stage forgecs.Stage, s forgecs.System) {
	t.Helper()
	if err := app.AddSystem(stage, s); err != nil {
		t.Fatalf("AddSystem(%s) failed: %v", s.Name(), err)
	}
}
