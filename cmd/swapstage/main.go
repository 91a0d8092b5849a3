package main

import "pkg.jsn.cam/swapstage/internal/cmd"

func main() {
	cmd.Execute()
}
