package main

import (
	"github.com/valenieksvladislavs/ScandiWebTest2025/internal/cmd"
)

func main() {
	cmd.Execute()
}
