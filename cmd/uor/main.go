package main

import (
	"go.brendoncarroll.net/star"

	"github.com/UOR-Foundation/UOR-Framework/uorcmd"
)

func main() {
	star.Main(uorcmd.Root())
}
