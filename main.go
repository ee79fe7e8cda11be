package main

import "hotelops/cmd"

func main() {
	cmd.Execute()
}
