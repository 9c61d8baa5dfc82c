package main

import "github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/cli"

func main() {
	cli.Execute()
}
