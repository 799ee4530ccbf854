package main

import (
	"log"
	"runtime"

	"ripple-tank/internal/game"
	standardInput "ripple-tank/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer closer.Close()
	closer.Bind(glfw.Terminate)

	window, err := game.SetupWindow()
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}

	im := standardInput.NewInputManager()
	app, err := game.NewApp(window, im)
	if err != nil {
		log.Fatalf("app setup: %v", err)
	}

	game.SetupInputHandlers(app)

	app.Run()
}
