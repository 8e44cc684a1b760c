// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-rest-demo/internal/adapter"
	"github.com/MKhiriev/go-rest-demo/internal/logger"
	"github.com/MKhiriev/go-rest-demo/models"
)

// demoStep is one request of the demo pass. call returns the rendered
// response body.
type demoStep struct {
	name   string
	method string
	path   string
	call   func(ctx context.Context) (string, error)
}

// demoService is the client-side DemoService. It walks every endpoint once
// through a ServerAdapter and records the outcome of each call.
type demoService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewDemoService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) DemoService {
	return &demoService{
		adapter: serverAdapter,
		logger:  logger,
	}
}

// Run executes every step in order. A failing step does not stop the pass;
// its error is stored in the returned CallResult. Steps are skipped once ctx
// is done.
func (d *demoService) Run(ctx context.Context) []models.CallResult {
	steps := d.steps()
	results := make([]models.CallResult, 0, len(steps))

	for _, step := range steps {
		result := models.CallResult{
			Name:   step.name,
			Method: step.method,
			Path:   step.path,
		}

		if err := ctx.Err(); err != nil {
			result.Err = err
			results = append(results, result)
			continue
		}

		start := time.Now()
		result.Output, result.Err = step.call(ctx)
		result.Duration = time.Since(start)

		if result.Err != nil {
			d.logger.Err(result.Err).Str("func", "demoService.Run").Str("step", step.name).Msg("demo call failed")
		} else {
			d.logger.Debug().Str("func", "demoService.Run").Str("step", step.name).Dur("duration", result.Duration).Msg("demo call succeeded")
		}
		results = append(results, result)
	}

	return results
}

func (d *demoService) steps() []demoStep {
	return []demoStep{
		{
			name: "hello", method: "GET", path: "/hello",
			call: d.adapter.Hello,
		},
		{
			name: "list rest", method: "GET", path: "/rest",
			call: func(ctx context.Context) (string, error) {
				records, err := d.adapter.ListRest(ctx)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%d records, first: %+v", len(records), firstOrZero(records)), nil
			},
		},
		{
			name: "get rest", method: "GET", path: "/rest/5",
			call: func(ctx context.Context) (string, error) {
				item, err := d.adapter.GetRest(ctx, 5)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("id=%d name=%q user_id=%d", item.ID, item.Name, item.UserID), nil
			},
		},
		{
			name: "create rest", method: "POST", path: "/rest",
			call: func(ctx context.Context) (string, error) {
				doc, err := d.adapter.CreateRest(ctx, models.RestDocument{"id": 10, "name": "demo"})
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("id=%v name=%v", doc["id"], doc["name"]), nil
			},
		},
		{
			name: "add", method: "GET", path: "/add/3/4",
			call: func(ctx context.Context) (string, error) {
				return d.adapter.Add(ctx, 3, 4)
			},
		},
		{
			name: "basic", method: "GET", path: "/basic/alice/30",
			call: func(ctx context.Context) (string, error) {
				return d.adapter.Basic(ctx, "alice", 30)
			},
		},
		{
			name: "items", method: "GET", path: "/items/shoes?color=red&size=9",
			call: func(ctx context.Context) (string, error) {
				return d.adapter.Items(ctx, "shoes", url.Values{"color": {"red"}, "size": {"9"}})
			},
		},
		{
			name: "version", method: "GET", path: "/api/version",
			call: d.adapter.Version,
		},
	}
}

func firstOrZero[T any](s []T) T {
	var zero T
	if len(s) == 0 {
		return zero
	}
	return s[0]
}
