package main

import "delivery-market-api/app"

func main() {
	app.Run()
}
