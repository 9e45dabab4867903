package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/newton-tutor/app"
	"github.com/lixenwraith/newton-tutor/audio"
	"github.com/lixenwraith/newton-tutor/render"
	"github.com/lixenwraith/newton-tutor/render/renderers"
	"github.com/lixenwraith/newton-tutor/slides"
)

var (
	soundFlag = flag.Bool("sound", true, "Enable audio feedback tones")
	fpsFlag   = flag.Int("fps", 30, "Target frames per second (1-120)")
)

func main() {
	flag.Parse()

	fps := *fpsFlag
	if fps < 1 {
		fps = 1
	}
	if fps > 120 {
		fps = 120
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the stack so the
	// trace is readable after raw mode ends
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nnewton-tutor crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Audio is best-effort: the lesson runs silently if the speaker fails
	sound := audio.NewSoundManager()
	if *soundFlag {
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without sound)", err)
		}
		defer sound.Cleanup()
	} else {
		sound.SetMuted(true)
	}

	ctx := app.NewContext(slides.Lesson(), slides.Questions(), sound)
	inputHandler := app.NewInputHandler(ctx)

	width, height := screen.Size()
	orchestrator := render.NewOrchestrator(screen, width, height)

	type rendererDef struct {
		renderer render.SlideRenderer
		priority render.Priority
	}
	for _, def := range []rendererDef{
		{renderers.NewBackgroundRenderer(ctx), render.PriorityBackground},
		{renderers.NewSlideRenderer(ctx), render.PriorityContent},
		{renderers.NewDiagramRenderer(ctx), render.PriorityDiagram},
		{renderers.NewControlsRenderer(ctx), render.PriorityControls},
		{renderers.NewQuizRenderer(ctx), render.PriorityControls},
		{renderers.NewStatusBarRenderer(ctx), render.PriorityUI},
	} {
		orchestrator.Register(def.renderer, def.priority)
	}

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(time.Second / time.Duration(fps))
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if resize, ok := ev.(*tcell.EventResize); ok {
				w, h := resize.Size()
				orchestrator.Resize(w, h)
				continue
			}
			if !inputHandler.HandleEvent(ev) {
				return
			}

		case <-frameTicker.C:
			orchestrator.RenderFrame()
		}
	}
}
