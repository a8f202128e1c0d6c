package main

import "event-contact-system/cmd/server"

func main() {
	server.Init()
	server.Run()
}
