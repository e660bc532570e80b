package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mq2thez/vantage/internal/preview"
	"github.com/mq2thez/vantage/pkg/adapter"
	"github.com/mq2thez/vantage/pkg/engine"
	"github.com/mq2thez/vantage/pkg/vdom"
)

func previewCmd() *cobra.Command {
	var (
		addr    string
		shallow bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve a demo scenario live over HTTP",
		Long: `Serve the built-in counter scenario on a local HTTP server.

The page shows the rendered markup and updates over WebSocket as
events are simulated. Drive it with:

  curl -X POST 'localhost:8833/simulate/click?tag=button'

Examples:
  vantage preview
  vantage preview --addr=:9000
  vantage preview --shallow`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(addr, shallow)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8833", "Address to listen on")
	cmd.Flags().BoolVar(&shallow, "shallow", false, "Render the scenario shallowly")

	return cmd
}

// demoCounter is the scenario served by the preview command.
type demoCounter struct {
	engine.Base
}

func (c *demoCounter) InitialState() engine.State { return engine.State{"count": 0} }

func (c *demoCounter) Render(props vdom.Props) *vdom.VNode {
	return vdom.El("div",
		vdom.El("h1", vdom.Text("Counter")),
		vdom.El("p", vdom.Textf("Count: %v", c.State()["count"])),
		vdom.El("button",
			vdom.OnClick(func() {
				c.SetState(engine.State{"count": c.State()["count"].(int) + 1})
			}),
			vdom.Text("Increment"),
		),
	)
}

var demoCounterType = engine.NewClass("DemoCounter", func() engine.Class { return &demoCounter{} })

func runPreview(addr string, shallow bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	node := vdom.Comp(demoCounterType)
	var (
		session *adapter.Session
		err     error
	)
	if shallow {
		session, err = adapter.Shallow(node)
	} else {
		session, err = adapter.Mount(node)
	}
	if err != nil {
		return fmt.Errorf("mounting scenario: %w", err)
	}

	srv := preview.New(session, preview.WithLogger(logger))
	return srv.ListenAndServe(addr)
}
