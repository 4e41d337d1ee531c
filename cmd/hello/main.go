package main

import (
	"flag"
	"log"

	"github.com/museun/mars/app"
	"github.com/museun/mars/geom"
	"github.com/museun/mars/surface"
	"github.com/museun/mars/terminal"
)

// hello paints a label at each of the nine anchor points.
type hello struct {
	app.Base
}

func (hello) Start(_ geom.Size, renderer *surface.Renderer) {
	renderer.SetDefaultBg(surface.Hex("#538").Color())
}

func (hello) HandleEvent(ev terminal.Event) app.Action {
	if ev.IsRune('q') || ev.IsCtrl('c') || ev.IsKey(terminal.KeyEscape) {
		return app.Quit
	}
	return app.Continue
}

func (hello) Render(renderer *surface.Renderer) {
	fg := surface.Hex("#fff").Color()
	bg := surface.Hex("#9988b3").Color()

	labels := []struct {
		anchor geom.Anchor2
		name   string
	}{
		{geom.LeftTop, "left top"},
		{geom.CenterTop, "center top"},
		{geom.RightTop, "right top"},
		{geom.LeftCenter, "left center"},
		{geom.CenterCenter, "center center"},
		{geom.RightCenter, "right center"},
		{geom.LeftBottom, "left bottom"},
		{geom.CenterBottom, "center bottom"},
		{geom.RightBottom, "right bottom"},
	}

	for _, label := range labels {
		text := surface.Text("hello world\nthis is at " + label.name)
		renderer.Draw(
			surface.WithAnchor(
				surface.WithBg(surface.WithFg(text, fg), bg),
				label.anchor,
			),
			surface.BlendReplace,
		)
	}
}

func main() {
	configPath := flag.String("config", "hello.toml", "path to the config file")
	debug := flag.Bool("debug", false, "print one traced frame instead of running")
	flag.Parse()

	if *debug {
		log.SetFlags(0)
		log.Print(app.Debug(hello{}))
		return
	}

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := app.Run(cfg, hello{}); err != nil {
		log.Fatal(err)
	}
}
