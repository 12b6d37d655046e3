package main

import "servora_backend/internal/app"

func main() {
	app.Run()
}
