package main

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/nikogura/resume-page/cmd"
)

func main() {
	cmd.Execute()
}
