package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/streakd/internal/reset"
	"github.com/sandeepkv93/streakd/internal/scheduler"
	"github.com/sandeepkv93/streakd/internal/storage"
	"github.com/sandeepkv93/streakd/internal/store"
	"github.com/sandeepkv93/streakd/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "streakd failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	kv, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer kv.Close()

	snap, err := storage.LoadSnapshot(context.Background(), kv)
	if err != nil {
		return err
	}

	notices := update.NewNoticeBuffer()
	st := store.New(kv, snap, notices, time.Now)

	engine := scheduler.NewEngine(cfg.SchedulerBuffer, time.Now)
	engine.Start()
	defer engine.Stop()
	_ = engine.Replan(scheduler.Plan(st.Tasks(), st.Stats(), st.LastReminderDate(), time.Now()))

	poller := reset.NewPoller(time.Duration(cfg.ResetPollSeconds)*time.Second, time.Now)
	poller.Start()
	defer poller.Stop()

	m := update.NewModel(st, notices, engine, poller.C(), cfg)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}
	return nil
}
