package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"copydesk/internal/config"
	"copydesk/internal/logging"
	"copydesk/internal/notifications"
	"copydesk/internal/services/cms"
	"copydesk/internal/store"
	"copydesk/internal/users"
	"copydesk/internal/workflow"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

// app bundles the collaborators a command needs for one invocation. The
// store's session lock is held for the lifetime of the app.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	store     *store.Store
	directory users.Directory
	center    *notifications.Center
	engine    *workflow.Engine
}

func (c *commandContext) withApp(fn func(*app) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	directory := users.NewStoreDirectory(st)
	center := notifications.NewCenter(notifications.NewService(cfg), logger)

	var publisher workflow.Publisher
	if len(cfg.CMS.Sites) > 0 {
		publisher = cms.NewClient(cfg.CMS)
	}

	return fn(&app{
		cfg:       cfg,
		logger:    logger,
		store:     st,
		directory: directory,
		center:    center,
		engine:    workflow.New(st, center, publisher, directory, logger),
	})
}

// requireActor resolves the signed-in user or fails with a login hint.
func (a *app) requireActor(ctx context.Context) (store.User, error) {
	user, err := a.store.CurrentUser(ctx)
	if err != nil {
		return store.User{}, err
	}
	if user == nil {
		return store.User{}, fmt.Errorf("not signed in; run `copydesk login <email>` first")
	}
	return *user, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
