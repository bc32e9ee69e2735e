// Command recipebox shows a filterable, sortable recipe card list.
//
// Usage:
//
//	recipebox [-mode web|tui|print] [-addr :8080] [-filter v] [-sort v] [-export out.xlsx] [-verbose] [-quiet]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hammamikhairi/recipebox/internal/config"
	"github.com/hammamikhairi/recipebox/internal/controller"
	"github.com/hammamikhairi/recipebox/internal/conversation"
	"github.com/hammamikhairi/recipebox/internal/display"
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/export"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/page"
	"github.com/hammamikhairi/recipebox/internal/recipe"
	"github.com/hammamikhairi/recipebox/internal/render"
	"github.com/hammamikhairi/recipebox/internal/web"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Parse(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" && cfg.LogFile != "stderr" {
		if dir := filepath.Dir(cfg.LogFile); dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.LogFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(cfg.Level, logOut)
	for _, w := range cfg.Warnings() {
		log.Warn("%s", w)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	recipes := recipe.NewMemorySource(log.Named("recipes"))

	switch cfg.Mode {
	case config.ModeWeb:
		err = runWeb(ctx, cfg, recipes, log)
	case config.ModeTUI:
		err = runTUI(ctx, recipes, log)
	case config.ModePrint:
		err = runPrint(ctx, cfg, recipes, log)
	}
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func runWeb(ctx context.Context, cfg config.Config, recipes domain.RecipeSource, log *logger.Logger) error {
	doc, err := page.Default()
	if err != nil {
		return err
	}
	srv, err := web.New(ctx, recipes, doc, log.Named("web"))
	if err != nil {
		return fmt.Errorf("starting web view: %w", err)
	}
	return srv.ListenAndServe(ctx, cfg.Addr)
}

func runTUI(ctx context.Context, recipes domain.RecipeSource, log *logger.Logger) error {
	term := display.NewTerminal()
	ctrl := controller.New(recipes, term, log.Named("controller"))
	if err := ctrl.Start(ctx); err != nil {
		return err
	}

	fmt.Println(display.RenderBanner())
	ui := display.NewUI(ctrl, term, conversation.NewKeywordParser(log.Named("parser")), log)
	return ui.Run(ctx)
}

// runPrint applies the -filter/-sort selection once and prints the cards.
func runPrint(ctx context.Context, cfg config.Config, recipes domain.RecipeSource, log *logger.Logger) error {
	term := display.NewTerminal()
	ctrl := controller.New(recipes, term, log.Named("controller"))
	if err := ctrl.Start(ctx); err != nil {
		return err
	}

	if f, ok := domain.ParseFilter(cfg.Filter); ok {
		if err := ctrl.Activate(ctx, domain.GroupFilter, f.String()); err != nil {
			return err
		}
	}
	if s, ok := domain.ParseSort(cfg.Sort); ok {
		if err := ctrl.Activate(ctx, domain.GroupSort, s.String()); err != nil {
			return err
		}
	}

	cards := term.Cards()
	fmt.Print(display.RenderCards(cards, 0))

	if cfg.Export != "" {
		if err := export.SaveXLSX(cfg.Export, render.Cards(ctrl.Visible())); err != nil {
			return err
		}
		log.Info("exported %d recipes to %s", len(cards), cfg.Export)
	}
	return nil
}
