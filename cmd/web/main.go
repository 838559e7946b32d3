package main

import "luvo_backend/internal/app"

func main() {
	app.Run()
}
