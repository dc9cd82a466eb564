package main

import (
	api "Pickem"
)

func main() {
	api.Run()
}
