package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	gosie4d "github.com/smasonuk/gosie4d"
)

func main() {
	demo := flag.String("demo", "tesseract", "demo to run: tesseract, browser, stereo, sandbox")
	configPath := flag.String("config", "", "path to config file (default: platform config dir)")
	writeConfig := flag.Bool("write-config", false, "write the default config to the config path and exit")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = gosie4d.DefaultConfigPath()
	}

	if *writeConfig {
		if err := gosie4d.SaveConfig(gosie4d.DefaultConfig(), path); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", path)
		return
	}

	cfg := gosie4d.LoadConfig(path)

	var mode gosie4d.DemoMode
	switch *demo {
	case "tesseract":
		mode = gosie4d.DemoTesseract
	case "browser":
		mode = gosie4d.DemoBrowser
	case "stereo":
		mode = gosie4d.DemoStereo
	case "sandbox":
		mode = gosie4d.DemoSandbox
	default:
		log.Fatalf("unknown demo %q", *demo)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Window.Vsync)
	if cfg.Window.TargetFPS > 0 {
		ebiten.SetTPS(cfg.Window.TargetFPS)
	}

	if err := ebiten.RunGame(gosie4d.NewGame(cfg, mode)); err != nil {
		log.Fatal(err)
	}
}
