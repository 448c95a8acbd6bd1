// Package dependency wires core firegate services using go.uber.org/dig.
package dependency

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/dig"

	"github.com/firegate-ai/firegate/internal/config"
	"github.com/firegate-ai/firegate/internal/cron"
	"github.com/firegate-ai/firegate/internal/firecrawl"
	"github.com/firegate-ai/firegate/internal/gateway"
	"github.com/firegate-ai/firegate/internal/host"
	"github.com/firegate-ai/firegate/internal/preset"
	"github.com/firegate-ai/firegate/internal/recorder"
	"github.com/firegate-ai/firegate/internal/schema"
)

// Container holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	log     *recorder.Log
	tools   schema.ToolList
	cronSvc *cron.Service
	gateway *gateway.Server
}

func (c *Container) Log() *recorder.Log         { return c.log }
func (c *Container) Tools() schema.ToolList     { return c.tools }
func (c *Container) CronService() *cron.Service { return c.cronSvc }
func (c *Container) Gateway() *gateway.Server   { return c.gateway }

// New builds and wires all core services from cfg.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(recorder.NewLog); err != nil {
		return nil, err
	}
	if err := d.Provide(newHost); err != nil {
		return nil, err
	}
	if err := d.Provide(newTools); err != nil {
		return nil, err
	}
	if err := d.Provide(gateway.NewServer); err != nil {
		return nil, err
	}
	if err := d.Provide(newCronService); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		cfg *config.Config,
		log *recorder.Log,
		tools schema.ToolList,
		cronSvc *cron.Service,
		gw *gateway.Server,
	) {
		if cfg.Sinks.Slack.Enabled {
			log.AddSink(recorder.NewSlackSink(&cfg.Sinks.Slack))
		}
		if cfg.Sinks.Telegram.Enabled {
			log.AddSink(recorder.NewTelegramSink(&cfg.Sinks.Telegram))
		}
		log.AddSink(gw)

		result = &Container{
			log:     log,
			tools:   tools,
			cronSvc: cronSvc,
			gateway: gw,
		}
	})
	return result, err
}

func newHost(cfg *config.Config, log *recorder.Log) *host.LocalHost {
	return host.NewLocalHost(cfg, log)
}

func newTools(cfg *config.Config, h *host.LocalHost) (schema.ToolList, error) {
	list := schema.NewToolList(nil)
	for _, tc := range cfg.Tools {
		t, err := firecrawl.New(h, firecrawl.Config{
			Type:        tc.Type,
			Description: tc.Description,
		})
		if err != nil {
			return schema.ToolList{}, fmt.Errorf("configure tool: %w", err)
		}
		list.Add(t)
	}
	return list, nil
}

func newCronService(cfg *config.Config, tools schema.ToolList) *cron.Service {
	run := func(ctx context.Context, name string) (string, error) {
		p, err := preset.Load(filepath.Join(config.PresetsDir(), name+".yaml"))
		if err != nil {
			return "", err
		}
		t := tools.Get(p.Tool)
		if t == nil {
			return "", fmt.Errorf("preset %q names unregistered tool %q", name, p.Tool)
		}
		return t.Execute(ctx, p.Params)
	}
	return cron.NewService(cfg.Schedules, run)
}
