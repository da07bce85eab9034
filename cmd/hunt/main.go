package main

import "hunt/internal/game"

func main() {
	game.RunDesktop()
}
