package main

import "portfolio_backend/internal/app"

func main() {
	app.Run()
}
