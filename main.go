package main

import (
	"log"

	"PaintPad/internal/state"
	"PaintPad/internal/ui"
)

func main() {
	s := state.NewSession()
	log.Printf("Starting painting session %s", s.ID)
	ui.RunApp(s)
}
