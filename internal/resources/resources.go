// Package resources turns configured resource entries into lazily
// initialized registry bindings.
//
// Ownership boundary:
// - per-kind initializer construction
//
// - binding and eager warm-up of configured resources
package resources

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/danmuck/cellkit/internal/config"
	"github.com/danmuck/cellkit/internal/observability"
	"github.com/danmuck/cellkit/internal/registry"
	"github.com/danmuck/cellkit/internal/tools"
)

// Build returns the initializer for one configured resource. The
// initializer is instrumented under the resource id; it runs only when the
// bound cell first resolves.
func Build(res config.ResourceConfig, runner tools.CommandRunner) (func() (any, error), error) {
	if err := config.ValidateResourceEntry(res); err != nil {
		return nil, err
	}

	var init func() (any, error)
	switch strings.ToLower(strings.TrimSpace(res.Kind)) {
	case "httpclient":
		init = buildHTTPClient()
	case "file":
		init = buildFile(res.Source)
	case "command":
		init = buildCommand(res.Source, runner)
	case "template":
		init = buildTemplate(res.Source)
	default:
		return nil, fmt.Errorf("resource %s has unknown kind: %s", res.ID, res.Kind)
	}
	return observability.Instrument(res.ID, init), nil
}

// BindAll binds every configured resource into reg. Entries flagged eager
// are resolved immediately; the rest wait for first use.
func BindAll(reg *registry.Registry, cfgs []config.ResourceConfig, runner tools.CommandRunner) error {
	for _, res := range cfgs {
		init, err := Build(res, runner)
		if err != nil {
			return err
		}
		handle, err := reg.Bind(res.ID, res.Kind, init)
		if err != nil {
			return err
		}
		if res.Eager {
			if _, err := handle.Resolve(); err != nil {
				return fmt.Errorf("eager resource %s: %w", res.ID, err)
			}
		}
	}
	return nil
}

func buildHTTPClient() func() (any, error) {
	return func() (any, error) {
		transport := &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          32,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: time.Second,
		}
		return &http.Client{
			Transport: transport,
			Timeout:   15 * time.Second,
		}, nil
	}
}

func buildFile(path string) func() (any, error) {
	return func() (any, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("file resource load failed (%s): %w", path, err)
		}
		return string(data), nil
	}
}

func buildTemplate(kind string) func() (any, error) {
	return func() (any, error) {
		if strings.TrimSpace(kind) == "" {
			kind = "node"
		}
		tpl, err := config.Template(kind)
		if err != nil {
			return nil, err
		}
		return tpl, nil
	}
}

func buildCommand(source string, runner tools.CommandRunner) func() (any, error) {
	return func() (any, error) {
		fields := strings.Fields(source)
		if len(fields) == 0 {
			return nil, fmt.Errorf("command resource has empty source")
		}
		if runner == nil {
			runner = tools.ExecRunner{}
		}
		out, err := tools.Output(runner, fields[0], fields[1:]...)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// Status describes one bound resource for the admin surface.
type Status struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Initialized bool   `json:"initialized"`
}

// Statuses lists bound resources sorted by id.
func Statuses(reg *registry.Registry) []Status {
	handles := reg.All()
	out := make([]Status, 0, len(handles))
	for _, h := range handles {
		out = append(out, Status{
			ID:          h.ID(),
			Kind:        h.Kind(),
			Initialized: h.Initialized(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
