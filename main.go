package main

import "github.com/HieuLe2021/AutomateFlow-Tracker/cmd"

func main() {
	cmd.Execute()
}
