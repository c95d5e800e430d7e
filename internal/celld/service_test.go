package celld

import (
	"testing"

	"github.com/danmuck/cellkit/internal/config"
	"github.com/danmuck/cellkit/internal/testutil/testlog"
	"github.com/danmuck/cellkit/internal/tools"
)

func TestServiceBootstrapBindsConfiguredResources(t *testing.T) {
	testlog.Start(t)

	runner := tools.FuncRunner(func(name string, args ...string) ([]byte, []byte, int32, error) {
		return []byte("Linux host\n"), nil, 0, nil
	})
	cfg := config.NodeConfig{
		Name: "cellkit-test",
		Addr: ":0",
		Resources: []config.ResourceConfig{
			{ID: "host", Kind: "command", Source: "uname -a", Eager: true},
			{ID: "api", Kind: "httpclient"},
		},
	}

	s := NewServiceWithRunner(cfg, runner)
	if err := s.bootstrap(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	n := s.Node()
	if n == nil {
		t.Fatalf("expected node after bootstrap")
	}

	host, ok := n.Registry().Get("host")
	if !ok || !host.Initialized() {
		t.Fatalf("expected eager host resource initialized")
	}
	api, ok := n.Registry().Get("api")
	if !ok || api.Initialized() {
		t.Fatalf("expected lazy api resource untouched")
	}
}

func TestServiceBootstrapRejectsBadResources(t *testing.T) {
	testlog.Start(t)

	cfg := config.NodeConfig{
		Name: "cellkit-test",
		Addr: ":0",
		Resources: []config.ResourceConfig{
			{ID: "x", Kind: "redis"},
		},
	}
	if err := NewService(cfg).bootstrap(); err == nil {
		t.Fatalf("expected bootstrap failure for unknown resource kind")
	}
}
