// Package gui is the raylib frontend: a window with the screen, a raygui
// toolbar for load/start/stop/step/reset and a square-wave buzzer.
package gui

import (
	"fmt"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/retroenv/retrogolib/log"

	"github.com/aquinn/chirp8"
)

const (
	ToolbarGap       = 5
	ToolbarBtnWidth  = 80
	ToolbarBtnHeight = 40
	ToolbarHeight    = 50
	ToolbarBtnOffset = ToolbarBtnWidth + ToolbarGap

	ScreenPixelSize = 12
	ScreenPositionX = 0
	ScreenPositionY = ToolbarHeight + 1

	// emulated frames per drawn frame
	MinSpeed     = 0.25
	MaxSpeed     = 4
	DefaultSpeed = 1

	MessageBarGap    = 5
	MessageBarHeight = 30
)

var ScreenBgColor = rl.Black
var ScreenPixelColor = rl.Lime
var MessageBarBgColor = rl.DarkGray
var MessageBarInfoColor = rl.SkyBlue
var MessageBarErrorColor = rl.Red

// scanCodes maps raylib key codes onto the CHIP-8 keypad, the usual
// 1234/QWER/ASDF/ZXCV block.
var scanCodes = map[int32]byte{
	rl.KeyOne: 0x1, rl.KeyTwo: 0x2, rl.KeyThree: 0x3, rl.KeyFour: 0xC,
	rl.KeyQ: 0x4, rl.KeyW: 0x5, rl.KeyE: 0x6, rl.KeyR: 0xD,
	rl.KeyA: 0x7, rl.KeyS: 0x8, rl.KeyD: 0x9, rl.KeyF: 0xE,
	rl.KeyZ: 0xA, rl.KeyX: 0x0, rl.KeyC: 0xB, rl.KeyV: 0xF,
}

type App struct {
	machine *chirp8.Machine
	buzzer  *Buzzer
	logger  *log.Logger

	paused     bool
	loadedPath string

	speed   float32
	pending float32

	winW, winH int

	startBtn, stopBtn, stepBtn, resetBtn bool

	lastMessage      string
	lastMessageColor rl.Color
}

func NewApp(machine *chirp8.Machine, logger *log.Logger) *App {
	return &App{
		machine: machine,
		logger:  logger,
		paused:  true,
		speed:   DefaultSpeed,
		winW:    chirp8.ScreenWidth * ScreenPixelSize,
		winH:    chirp8.ScreenHeight*ScreenPixelSize + ToolbarHeight + MessageBarHeight,
	}
}

// Load reads a ROM from path into the machine and leaves it ready to start.
func (app *App) Load(path string) {
	program, err := os.ReadFile(path)
	if err != nil {
		app.logger.Error("loading program failed", log.String("path", path), log.Err(err))
		app.showMessage(err.Error(), MessageBarErrorColor)
		return
	}

	app.machine.Reset()
	if err := app.machine.LoadProgram(program); err != nil {
		app.logger.Error("loading program failed", log.String("path", path), log.Err(err))
		app.showMessage(err.Error(), MessageBarErrorColor)
		return
	}

	app.loadedPath = path
	app.paused = false
	app.logger.Info("program loaded", log.String("path", path))
	app.showMessage(fmt.Sprintf("Program '%s' loaded", path), MessageBarInfoColor)
}

// Run opens the window and drives the machine one frame per drawn frame at
// 60 FPS until the window closes.
func (app *App) Run() {
	rl.InitWindow(int32(app.winW), int32(app.winH), "chirp8")
	defer rl.CloseWindow()

	app.buzzer = NewBuzzer()
	defer app.buzzer.Close()

	rl.SetTargetFPS(chirp8.FramesPerSecond)
	for !rl.WindowShouldClose() {
		app.handleFileDrop()
		app.handleActions()

		if !app.paused && app.loadedPath != "" {
			// speed is emulated frames per drawn frame; fractions
			// accumulate so 0.5x runs every other draw
			for app.pending += app.speed; app.pending >= 1; app.pending-- {
				if err := app.machine.RunFrame(app.keypadMask()); err != nil {
					app.paused = true
					app.logger.Error("frame aborted", log.Err(err), log.Hex("pc", app.machine.Pc))
					app.showMessage(err.Error(), MessageBarErrorColor)
					break
				}
			}
		}
		_ = app.buzzer.SetTone(app.machine.Tone())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		app.drawMessageBar()
		app.drawScreen()
		app.drawToolbar()
		rl.EndDrawing()
	}
}

func (app *App) keypadMask() uint16 {
	var mask uint16
	for code, key := range scanCodes {
		if rl.IsKeyDown(code) {
			mask |= chirp8.KeyMask(key)
		}
	}

	return mask
}

func (app *App) handleFileDrop() {
	if rl.IsFileDropped() {
		files := rl.LoadDroppedFiles()
		defer rl.UnloadDroppedFiles()

		if len(files) > 0 {
			app.Load(files[0])
		}
	}
}

func (app *App) handleActions() {
	if app.startBtn {
		if app.loadedPath == "" {
			app.showMessage("There is no program loaded", MessageBarErrorColor)
		} else {
			app.paused = false
			app.logger.Info("starting the console")
		}
	}
	if app.stopBtn {
		app.paused = true
		app.logger.Info("stopping the console")
	}
	if app.resetBtn {
		app.machine.Reset()
		app.logger.Info("resetting the program to the beginning")
	}
	if app.stepBtn && app.paused && app.loadedPath != "" {
		if err := app.machine.RunFrame(app.keypadMask()); err != nil {
			app.logger.Error("frame aborted", log.Err(err), log.Hex("pc", app.machine.Pc))
			app.showMessage(err.Error(), MessageBarErrorColor)
		}
	}
}

func (app *App) drawScreen() {
	for y := 0; y < chirp8.ScreenHeight; y++ {
		for x := 0; x < chirp8.ScreenWidth; x++ {
			color := ScreenBgColor
			if app.machine.Pixel(x, y) {
				color = ScreenPixelColor
			}

			rl.DrawRectangle(
				ScreenPositionX+ScreenPixelSize*int32(x),
				ScreenPositionY+ScreenPixelSize*int32(y),
				ScreenPixelSize,
				ScreenPixelSize,
				color)
		}
	}
}

func (app *App) drawToolbar() {
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), ToolbarHeight, rl.Gray)

	app.startBtn = gui.Button(
		rl.NewRectangle(ToolbarGap+ToolbarBtnOffset*0, ToolbarGap, ToolbarBtnWidth, ToolbarBtnHeight),
		gui.IconText(gui.ICON_PLAYER_PLAY, "Start"),
	)
	app.stopBtn = gui.Button(
		rl.NewRectangle(ToolbarGap+ToolbarBtnOffset*1, ToolbarGap, ToolbarBtnWidth, ToolbarBtnHeight),
		gui.IconText(gui.ICON_PLAYER_STOP, "Stop"),
	)
	app.stepBtn = gui.Button(
		rl.NewRectangle(ToolbarGap+ToolbarBtnOffset*2, ToolbarGap, ToolbarBtnWidth, ToolbarBtnHeight),
		gui.IconText(gui.ICON_PLAYER_NEXT, "Step"),
	)
	app.resetBtn = gui.Button(
		rl.NewRectangle(ToolbarGap+ToolbarBtnOffset*3, ToolbarGap, ToolbarBtnWidth, ToolbarBtnHeight),
		gui.IconText(gui.ICON_ROTATE, "Reset"),
	)

	status := "Stopped"
	if !app.paused {
		status = "Running"
	}
	gui.Label(
		rl.NewRectangle(ToolbarGap+ToolbarBtnOffset*4, ToolbarGap, ToolbarBtnWidth, ToolbarBtnHeight),
		status,
	)

	gui.Label(
		rl.NewRectangle(float32(app.winW)-ToolbarGap-150, 26, 50, 20),
		fmt.Sprintf("%.2fx", app.speed),
	)
	if gui.Button(
		rl.NewRectangle(float32(app.winW)-ToolbarGap-150+50, 26, 50, 20),
		gui.IconText(gui.ICON_ROTATE, ""),
	) {
		app.speed = DefaultSpeed
	}
	app.speed = gui.Slider(
		rl.NewRectangle(float32(app.winW)-ToolbarGap-150, ToolbarGap, 100, 20),
		"0.25x", "4x",
		app.speed,
		MinSpeed,
		MaxSpeed,
	)
}

func (app *App) showMessage(msg string, color rl.Color) {
	app.lastMessage = msg
	app.lastMessageColor = color
}

func (app *App) drawMessageBar() {
	rl.DrawRectangle(
		0,
		int32(app.winH)-MessageBarHeight,
		int32(app.winW),
		MessageBarHeight,
		MessageBarBgColor,
	)

	rl.DrawText(
		app.lastMessage,
		MessageBarGap,
		int32(app.winH)-MessageBarHeight+MessageBarGap,
		16,
		app.lastMessageColor,
	)
}
