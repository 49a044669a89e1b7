package main

import "github.com/rovillalobos-slalom/capabilities/internal/ctl"

func main() {
	ctl.Execute()
}
